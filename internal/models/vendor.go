package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RateConfig is the sparse per-vendor rate parameter map, stored as JSON.
// Missing keys fall back to per-model defaults at evaluation time.
type RateConfig map[string]float64

// Value implements driver.Valuer for JSON column storage
func (c RateConfig) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSON column storage
func (c *RateConfig) Scan(value interface{}) error {
	if value == nil {
		*c = RateConfig{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for RateConfig: %T", value)
	}
	return json.Unmarshal(data, c)
}

// Vendor represents the vendors table
type Vendor struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	TenantID      uint       `json:"tenant_id" gorm:"column:tenant_id;index;not null"`
	Name          string     `json:"name" gorm:"column:name;not null"`
	BillingModel  string     `json:"billing_model" gorm:"column:billing_model;not null"`
	BillingConfig RateConfig `json:"billing_config" gorm:"column:billing_config;type:jsonb;default:'{}'"`
}

// TableName sets the insert table name for Vendor
func (Vendor) TableName() string {
	return "vendors"
}
