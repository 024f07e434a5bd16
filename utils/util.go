package utils

import "golang.org/x/exp/constraints"

// Number 可被截断为非负值的数值类型
type Number interface {
	constraints.Signed | constraints.Float
}

// MakeNonNegative 将负数截断为0，非负数原样返回
func MakeNonNegative[T Number](x T) T {
	if x < 0 {
		return 0
	}
	return x
}

// MakeNonNegativeSlice 逐元素截断负数
// 功能：返回与输入等长的新切片，所有负元素被替换为0
// 说明：不修改输入切片；输入为nil时返回nil
func MakeNonNegativeSlice[T Number](xs []T) []T {
	if xs == nil {
		return nil
	}
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = MakeNonNegative(x)
	}
	return out
}
