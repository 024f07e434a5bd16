// Package scenario 批量计算配置文件中给出的情景
package scenario

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/independnet/corporate"
	"github.com/tsinghua-fib-lab/independnet/utils/config"
)

// Result 单个情景的计算结果
type Result struct {
	Name      string
	Breakdown corporate.Breakdown
}

// Runner 情景计算器
// 功能：将配置中的全部情景打包为一次批量计算
type Runner struct {
	calc      *corporate.Calculator
	scenarios []config.Scenario
}

// NewRunner 根据运行时配置创建情景计算器
func NewRunner(rc *config.RuntimeConfig) (*Runner, error) {
	calc, err := corporate.NewCalculator(rc.Rates)
	if err != nil {
		return nil, err
	}
	return &Runner{
		calc:      calc,
		scenarios: rc.All.Scenarios,
	}, nil
}

// Evaluate 计算所有情景，结果顺序与配置一致
func (r *Runner) Evaluate() ([]Result, error) {
	batch := corporate.Batch{
		NetProfit: lo.Map(r.scenarios, func(s config.Scenario, _ int) float64 {
			return s.NetProfit
		}),
		SmallCompany: lo.Map(r.scenarios, func(s config.Scenario, _ int) bool {
			return s.SmallCompany
		}),
		HighestRemuneration: lo.Map(r.scenarios, func(s config.Scenario, _ int) float64 {
			return s.HighestRemuneration
		}),
		EligibleReducedWHT: lo.Map(r.scenarios, func(s config.Scenario, _ int) bool {
			return s.EligibleReducedWHT
		}),
	}
	breakdowns, err := r.calc.BreakdownBatch(batch)
	if err != nil {
		return nil, fmt.Errorf("evaluate scenarios err: %w", err)
	}
	return lo.Map(breakdowns, func(b corporate.Breakdown, i int) Result {
		name := r.scenarios[i].Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		return Result{Name: name, Breakdown: b}
	}), nil
}

// Run 计算所有情景并输出日志
func (r *Runner) Run() ([]Result, error) {
	rates := r.calc.Rates()
	log.Infof("rates: corporate=%v reduced_corporate=%v wht=%v reduced_wht=%v",
		rates.CorporateTaxRate, rates.ReducedCorporateTaxRate, rates.WHTDividend, rates.ReducedWHTDividend)
	if len(r.scenarios) == 0 {
		log.Warn("no scenario configured")
		return nil, nil
	}
	results, err := r.Evaluate()
	if err != nil {
		return nil, err
	}
	for _, res := range results {
		b := res.Breakdown
		log.Infof("[%s] net_profit=%.2f income_tax=%.2f (reduced=%v) profit_after_tax=%.2f wht=%.2f (reduced=%v) net_dividend=%.2f effective=%.2f%%",
			res.Name, b.NetProfit, b.IncomeTax, b.ReducedCorporateRate, b.ProfitAfterTax,
			b.WithholdingTax, b.ReducedWHTRate, b.NetDividend, b.EffectiveTaxOnDividend*100)
	}
	log.Infof("total net dividend %.2f over %d scenarios",
		lo.SumBy(results, func(res Result) float64 { return res.Breakdown.NetDividend }), len(results))
	return results, nil
}
