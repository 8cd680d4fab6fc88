package dto

// Overview is the admin dashboard aggregate.
type Overview struct {
	TotalShops  int     `json:"totalShops"`
	TotalCarts  int     `json:"totalCarts"`
	Revenue     float64 `json:"revenue"`
	ActiveUsers int     `json:"activeUsers"`
	Alerts      []Alert `json:"alerts"`
}

type Alert struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}
