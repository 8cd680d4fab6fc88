package dto

type SalesPoint struct {
	Period    string  `json:"period"`
	Sales     float64 `json:"sales"`
	Orders    int     `json:"orders"`
	Customers int     `json:"customers"`
	Date      string  `json:"date"`
}

type TopProduct struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitsSold int     `json:"unitsSold"`
	Revenue   float64 `json:"revenue"`
	Growth    int     `json:"growth"`
}

type CategorySales struct {
	Category string  `json:"category"`
	Sales    float64 `json:"sales"`
}
