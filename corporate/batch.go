package corporate

import (
	"fmt"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
)

// parallelThreshold 批量计算切换为并行执行的元素数量
const parallelThreshold = 1 << 12

// Batch 批量计算的输入
// 功能：以切片形式给出多家公司（或多个情景）的参数，逐元素计算
// 说明：广播规则与标量参数一致——长度为0的字段对所有元素取默认值（false/0），
// 长度为1的字段广播到所有元素，其余字段长度必须等于最长字段的长度
type Batch struct {
	NetProfit           []float64 // 净利润
	SmallCompany        []bool    // 是否为小型企业
	HighestRemuneration []float64 // 最高董事薪酬
	EligibleReducedWHT  []bool    // 是否适用优惠预提税率
}

// Len 返回广播后的元素数量
// 算法说明：
// 1. 净利润为空时结果为空
// 2. 取所有字段中的最大长度n
// 3. 检查每个字段长度为0、1或n
func (b Batch) Len() (int, error) {
	if len(b.NetProfit) == 0 {
		return 0, nil
	}
	lens := []lo.Tuple2[string, int]{
		lo.T2("net_profit", len(b.NetProfit)),
		lo.T2("small_company", len(b.SmallCompany)),
		lo.T2("highest_remuneration", len(b.HighestRemuneration)),
		lo.T2("eligible_reduced_wht", len(b.EligibleReducedWHT)),
	}
	n := lo.MaxBy(lens, func(x, y lo.Tuple2[string, int]) bool { return x.B > y.B }).B
	for _, l := range lens {
		if l.B != 0 && l.B != 1 && l.B != n {
			return 0, invalidArgument(fmt.Sprintf("%s has length %d, cannot broadcast to %d", l.A, l.B, n))
		}
	}
	return n, nil
}

// at 取第i个元素的广播值
func at[T any](xs []T, i int) T {
	switch len(xs) {
	case 0:
		var zero T
		return zero
	case 1:
		return xs[0]
	default:
		return xs[i]
	}
}

// mapIndices 对[0,n)的每个下标计算f，元素较多时并行执行
func mapIndices[U any](n int, f func(i int) U) []U {
	idx := lo.Range(n)
	if n >= parallelThreshold {
		return parallel.GoMap(idx, f)
	}
	return lo.Map(idx, func(i int, _ int) U {
		return f(i)
	})
}

func (c *Calculator) evaluate(b Batch, f func(i int) float64) ([]float64, error) {
	n, err := b.Len()
	if err != nil {
		return nil, err
	}
	return mapIndices(n, f), nil
}

// IncomeTaxBatch 逐元素计算企业所得税，忽略EligibleReducedWHT字段
func (c *Calculator) IncomeTaxBatch(b Batch) ([]float64, error) {
	return c.evaluate(b, func(i int) float64 {
		return c.IncomeTax(at(b.NetProfit, i), at(b.SmallCompany, i), at(b.HighestRemuneration, i))
	})
}

// WithholdingTaxBatch 逐元素计算股息预提税，NetProfit应为税后可分配利润
func (c *Calculator) WithholdingTaxBatch(b Batch) ([]float64, error) {
	return c.evaluate(b, func(i int) float64 {
		return c.WithholdingTax(at(b.NetProfit, i), at(b.EligibleReducedWHT, i))
	})
}

// ProfitAfterTaxBatch 逐元素计算税后利润
func (c *Calculator) ProfitAfterTaxBatch(b Batch) ([]float64, error) {
	return c.evaluate(b, func(i int) float64 {
		return c.ProfitAfterTax(at(b.NetProfit, i), at(b.SmallCompany, i), at(b.HighestRemuneration, i))
	})
}

// NetDividendBatch 逐元素计算净股息
func (c *Calculator) NetDividendBatch(b Batch) ([]float64, error) {
	return c.evaluate(b, func(i int) float64 {
		return c.NetDividend(at(b.NetProfit, i), at(b.SmallCompany, i), at(b.HighestRemuneration, i), at(b.EligibleReducedWHT, i))
	})
}

// BreakdownBatch 逐元素计算完整的税额明细
func (c *Calculator) BreakdownBatch(b Batch) ([]Breakdown, error) {
	n, err := b.Len()
	if err != nil {
		return nil, err
	}
	return mapIndices(n, func(i int) Breakdown {
		return c.Breakdown(at(b.NetProfit, i), at(b.SmallCompany, i), at(b.HighestRemuneration, i), at(b.EligibleReducedWHT, i))
	}), nil
}

// IncomeTaxBatch 使用默认税率批量计算企业所得税
func IncomeTaxBatch(b Batch) ([]float64, error) {
	return defaultCalculator.IncomeTaxBatch(b)
}

// WithholdingTaxBatch 使用默认税率批量计算股息预提税
func WithholdingTaxBatch(b Batch) ([]float64, error) {
	return defaultCalculator.WithholdingTaxBatch(b)
}

// ProfitAfterTaxBatch 使用默认税率批量计算税后利润
func ProfitAfterTaxBatch(b Batch) ([]float64, error) {
	return defaultCalculator.ProfitAfterTaxBatch(b)
}

// NetDividendBatch 使用默认税率批量计算净股息
func NetDividendBatch(b Batch) ([]float64, error) {
	return defaultCalculator.NetDividendBatch(b)
}
