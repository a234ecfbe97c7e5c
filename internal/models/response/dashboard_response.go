package response

// DashboardSummaryResponse represents the tenant dashboard summary
type DashboardSummaryResponse struct {
	MonthlyTotal float64 `json:"monthly_total" example:"1520.50"`
	Vendors      int64   `json:"vendors" example:"3"`
	Pending      int64   `json:"pending" example:"42"`
}
