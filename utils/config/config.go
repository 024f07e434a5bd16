package config

import (
	"fmt"

	"github.com/tsinghua-fib-lab/independnet/corporate"
	"gopkg.in/yaml.v2"
)

// RuntimeConfig 运行时配置
// 功能：存储解析并校验后的配置
// 说明：进程启动时创建一次，之后只读
type RuntimeConfig struct {
	All   Config          // 全部配置
	Rates corporate.Rates // 补全默认值后的税率
}

// Parse 严格解析YAML配置，未知字段视为错误
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("config parse err: %w", err)
	}
	return c, nil
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：以默认税率补全缺省字段并校验税率范围
// 参数：config-原始配置对象
// 返回：运行时配置指针，税率越界时返回corporate.ErrInvalidArgument
func NewRuntimeConfig(config Config) (*RuntimeConfig, error) {
	rates := corporate.DefaultRates
	override(&rates.CorporateTaxRate, config.Rates.CorporateTaxRate)
	override(&rates.ReducedCorporateTaxRate, config.Rates.ReducedCorporateTaxRate)
	override(&rates.WHTDividend, config.Rates.WHTDividend)
	override(&rates.ReducedWHTDividend, config.Rates.ReducedWHTDividend)
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &RuntimeConfig{
		All:   config,
		Rates: rates,
	}, nil
}

func override(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
