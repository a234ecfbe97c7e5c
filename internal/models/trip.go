package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONMap is a free-form JSON payload column
type JSONMap map[string]interface{}

// Value implements driver.Valuer for JSON column storage
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSON column storage
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONMap: %T", value)
	}
	return json.Unmarshal(data, m)
}

// Trip represents the trips table. Trips are immutable once created;
// the billing service reads them exactly once per billing event.
type Trip struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	TenantID        uint      `json:"tenant_id" gorm:"column:tenant_id;index;not null"`
	VendorID        uint      `json:"vendor_id" gorm:"column:vendor_id;index;not null"`
	EmployeeID      uint      `json:"employee_id" gorm:"column:employee_id;index;not null"`
	DistanceKM      float64   `json:"distance_km" gorm:"column:distance_km;not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"column:duration_minutes;not null"`
	Date            time.Time `json:"date" gorm:"column:date;not null"`
	ExtraKM         float64   `json:"extra_km" gorm:"column:extra_km;default:0"`
	ExtraHours      float64   `json:"extra_hours" gorm:"column:extra_hours;default:0"`
	Payload         JSONMap   `json:"payload" gorm:"column:payload;type:jsonb;default:'{}'"`
}

// TableName sets the insert table name for Trip
func (Trip) TableName() string {
	return "trips"
}
