package models

// Tenant represents the tenants table
type Tenant struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"column:name;uniqueIndex;not null"`
}

// TableName sets the insert table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
