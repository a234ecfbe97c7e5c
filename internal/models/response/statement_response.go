package response

// MonthlyStatementResponse is the cached statement payload for one vendor
// and one calendar month: the aggregate total plus a CSV row ledger
type MonthlyStatementResponse struct {
	Total float64 `json:"total" example:"35.75"`
	CSV   string  `json:"csv" example:"invoice_row_id,trip_id,amount,note\n"`
}
