package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Distance 统一里程类型（公里，保留 2 位小数）
type Distance struct {
	decimal.Decimal
}

// NewDistanceFromDecimal 从 decimal 创建里程
func NewDistanceFromDecimal(km decimal.Decimal) Distance {
	return Distance{Decimal: km.Round(2)}
}

// MarshalJSON 统一输出 2 位小数的字符串
func (d Distance) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON 解析里程（字符串或数字）
func (d *Distance) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		d.Decimal = v.Round(2)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	d.Decimal = decimal.NewFromFloat(f).Round(2)
	return nil
}

// Value 用于数据库写入
func (d Distance) Value() (driver.Value, error) {
	return d.Decimal.Round(2).Value()
}

// Scan 用于数据库读取
func (d *Distance) Scan(value interface{}) error {
	if err := d.Decimal.Scan(value); err != nil {
		return err
	}
	d.Decimal = d.Decimal.Round(2)
	return nil
}

// String 返回 2 位小数格式
func (d Distance) String() string {
	return d.Decimal.Round(2).StringFixed(2)
}
