package corporate

import "fmt"

// 默认税率参数
const (
	// CorporateTaxRate 企业所得税标准税率
	CorporateTaxRate = 0.25
	// ReducedCorporateTaxRate 小型企业适用的优惠税率
	ReducedCorporateTaxRate = 0.20
	// WHTDividend 股息预提税标准税率
	WHTDividend = 0.30
	// ReducedWHTDividend 股息预提税优惠税率
	ReducedWHTDividend = 0.15
)

// DefaultRates 默认税率参数集合
var DefaultRates = Rates{
	CorporateTaxRate:        CorporateTaxRate,
	ReducedCorporateTaxRate: ReducedCorporateTaxRate,
	WHTDividend:             WHTDividend,
	ReducedWHTDividend:      ReducedWHTDividend,
}

// Rates 一组税率参数，进程生命周期内只读
type Rates struct {
	CorporateTaxRate        float64 // 企业所得税标准税率
	ReducedCorporateTaxRate float64 // 企业所得税优惠税率
	WHTDividend             float64 // 股息预提税标准税率
	ReducedWHTDividend      float64 // 股息预提税优惠税率
}

// Validate 检查所有税率是否位于[0,1)区间
func (r Rates) Validate() error {
	for _, item := range []struct {
		name string
		v    float64
	}{
		{"corporate_tax_rate", r.CorporateTaxRate},
		{"reduced_corporate_tax_rate", r.ReducedCorporateTaxRate},
		{"wht_dividend", r.WHTDividend},
		{"reduced_wht_dividend", r.ReducedWHTDividend},
	} {
		// NaN同样不满足该条件
		if !(item.v >= 0 && item.v < 1) {
			return invalidArgument(fmt.Sprintf("%s must be in [0, 1), got %v", item.name, item.v))
		}
	}
	return nil
}

func (r Rates) corporateRate(eligibleReduced bool) float64 {
	if eligibleReduced {
		return r.ReducedCorporateTaxRate
	}
	return r.CorporateTaxRate
}

func (r Rates) whtRate(eligibleReduced bool) float64 {
	if eligibleReduced {
		return r.ReducedWHTDividend
	}
	return r.WHTDividend
}
