package models

import (
	"time"
)

// InvoiceRow represents the invoice_rows table. Rows are written once by
// the billing service and never mutated. There is deliberately no
// uniqueness constraint on trip_id: re-billing a trip inserts a second row.
type InvoiceRow struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	TenantID  uint      `json:"tenant_id" gorm:"column:tenant_id;index;not null"`
	VendorID  uint      `json:"vendor_id" gorm:"column:vendor_id;index;not null"`
	TripID    uint      `json:"trip_id" gorm:"column:trip_id;index;not null"`
	Amount    float64   `json:"amount" gorm:"column:amount;not null"`
	Note      string    `json:"note" gorm:"column:note;default:auto"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the insert table name for InvoiceRow
func (InvoiceRow) TableName() string {
	return "invoice_rows"
}
