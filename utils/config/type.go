package config

// Rates 税率参数配置
// 功能：定义企业所得税与股息预提税的四个税率
// 说明：字段缺省时使用corporate包中的默认税率
type Rates struct {
	CorporateTaxRate        *float64 `yaml:"corporate_tax_rate,omitempty"`         // 企业所得税标准税率
	ReducedCorporateTaxRate *float64 `yaml:"reduced_corporate_tax_rate,omitempty"` // 企业所得税优惠税率
	WHTDividend             *float64 `yaml:"wht_dividend,omitempty"`               // 股息预提税标准税率
	ReducedWHTDividend      *float64 `yaml:"reduced_wht_dividend,omitempty"`       // 股息预提税优惠税率
}

// Scenario 单个计算情景
// 功能：描述一家公司在某一年度的利润与资格条件
type Scenario struct {
	Name                string  `yaml:"name"`                           // 情景名
	NetProfit           float64 `yaml:"net_profit"`                     // 扣除董事薪酬后的净利润
	SmallCompany        bool    `yaml:"small_company,omitempty"`        // 是否为小型企业
	HighestRemuneration float64 `yaml:"highest_remuneration,omitempty"` // 最高董事薪酬
	EligibleReducedWHT  bool    `yaml:"eligible_reduced_wht,omitempty"` // 是否适用优惠预提税率
}

// Config YAML配置文件的根结构
type Config struct {
	Rates     Rates      `yaml:"rates"`     // 税率
	Scenarios []Scenario `yaml:"scenarios"` // 计算情景
}
