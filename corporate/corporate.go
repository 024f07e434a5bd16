// Package corporate 计算企业所得税、股息预提税以及税后净股息
package corporate

import "github.com/tsinghua-fib-lab/independnet/utils"

// Calculator 绑定一组税率参数的税额计算器
// 功能：提供企业所得税、股息预提税、税后利润和净股息的计算
// 说明：计算器创建后不可变，所有方法均为纯函数，可并发调用
type Calculator struct {
	rates Rates
}

// NewCalculator 创建税额计算器
// 功能：校验税率参数并创建计算器
// 参数：rates-税率参数
// 返回：计算器指针，税率越界时返回ErrInvalidArgument
func NewCalculator(rates Rates) (*Calculator, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{rates: rates}, nil
}

var defaultCalculator = &Calculator{rates: DefaultRates}

// Default 返回使用默认税率的计算器
func Default() *Calculator {
	return defaultCalculator
}

// Rates 返回计算器使用的税率参数
func (c *Calculator) Rates() Rates {
	return c.rates
}

// EligibleReducedCorporateRate 判断是否适用企业所得税优惠税率
// 说明：仅当公司为小型企业且最高董事薪酬高于净利润时适用
func EligibleReducedCorporateRate(netProfit float64, smallCompany bool, highestRemuneration float64) bool {
	return smallCompany && highestRemuneration > netProfit
}

// IncomeTax 计算企业所得税
// 参数：netProfit-扣除董事薪酬后的净利润，smallCompany-是否为小型企业，
// highestRemuneration-支付给单个董事的最高薪酬
// 返回：应缴企业所得税，恒为非负
func (c *Calculator) IncomeTax(netProfit float64, smallCompany bool, highestRemuneration float64) float64 {
	rate := c.rates.corporateRate(EligibleReducedCorporateRate(netProfit, smallCompany, highestRemuneration))
	return utils.MakeNonNegative(rate * netProfit)
}

// WithholdingTax 计算股息预提税
// 参数：netProfit-用于分配的税后利润，eligibleReducedWHT-是否适用优惠预提税率
// 返回：应缴预提税，恒为非负
func (c *Calculator) WithholdingTax(netProfit float64, eligibleReducedWHT bool) float64 {
	return utils.MakeNonNegative(c.rates.whtRate(eligibleReducedWHT) * netProfit)
}

// ProfitAfterTax 计算扣除企业所得税后的利润，结果不做截断
func (c *Calculator) ProfitAfterTax(netProfit float64, smallCompany bool, highestRemuneration float64) float64 {
	return netProfit - c.IncomeTax(netProfit, smallCompany, highestRemuneration)
}

// NetDividend 计算扣除企业所得税和股息预提税后的净股息
// 算法说明：
// 1. 计算税后利润
// 2. 以未截断的税后利润计算预提税
// 3. 将税后利润截断为非负后减去预提税
func (c *Calculator) NetDividend(netProfit float64, smallCompany bool, highestRemuneration float64, eligibleReducedWHT bool) float64 {
	beforeWHT := c.ProfitAfterTax(netProfit, smallCompany, highestRemuneration)
	wht := c.WithholdingTax(beforeWHT, eligibleReducedWHT)
	beforeWHT = utils.MakeNonNegative(beforeWHT)
	return beforeWHT - wht
}

// Breakdown 一次计算中所有中间结果
type Breakdown struct {
	NetProfit              float64 // 净利润
	ReducedCorporateRate   bool    // 是否适用企业所得税优惠税率
	IncomeTax              float64 // 企业所得税
	ProfitAfterTax         float64 // 税后利润
	ReducedWHTRate         bool    // 是否适用预提税优惠税率
	WithholdingTax         float64 // 股息预提税
	NetDividend            float64 // 净股息
	EffectiveTaxOnDividend float64 // 净利润到净股息的综合税负比例，净利润不为正时为0
}

// Breakdown 计算一家公司从净利润到净股息的完整链条
// 说明：各字段与IncomeTax、ProfitAfterTax、WithholdingTax、NetDividend的结果一致
func (c *Calculator) Breakdown(netProfit float64, smallCompany bool, highestRemuneration float64, eligibleReducedWHT bool) Breakdown {
	incomeTax := c.IncomeTax(netProfit, smallCompany, highestRemuneration)
	profitAfterTax := netProfit - incomeTax
	wht := c.WithholdingTax(profitAfterTax, eligibleReducedWHT)
	netDividend := utils.MakeNonNegative(profitAfterTax) - wht
	b := Breakdown{
		NetProfit:            netProfit,
		ReducedCorporateRate: EligibleReducedCorporateRate(netProfit, smallCompany, highestRemuneration),
		IncomeTax:            incomeTax,
		ProfitAfterTax:       profitAfterTax,
		ReducedWHTRate:       eligibleReducedWHT,
		WithholdingTax:       wht,
		NetDividend:          netDividend,
	}
	if netProfit > 0 {
		b.EffectiveTaxOnDividend = 1 - netDividend/netProfit
	}
	return b
}

// IncomeTax 使用默认税率计算企业所得税
func IncomeTax(netProfit float64, smallCompany bool, highestRemuneration float64) float64 {
	return defaultCalculator.IncomeTax(netProfit, smallCompany, highestRemuneration)
}

// WithholdingTax 使用默认税率计算股息预提税
func WithholdingTax(netProfit float64, eligibleReducedWHT bool) float64 {
	return defaultCalculator.WithholdingTax(netProfit, eligibleReducedWHT)
}

// ProfitAfterTax 使用默认税率计算税后利润
func ProfitAfterTax(netProfit float64, smallCompany bool, highestRemuneration float64) float64 {
	return defaultCalculator.ProfitAfterTax(netProfit, smallCompany, highestRemuneration)
}

// NetDividend 使用默认税率计算净股息
func NetDividend(netProfit float64, smallCompany bool, highestRemuneration float64, eligibleReducedWHT bool) float64 {
	return defaultCalculator.NetDividend(netProfit, smallCompany, highestRemuneration, eligibleReducedWHT)
}
