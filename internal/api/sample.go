package api

import "github.com/priyakanmani/smartcart-client-go/internal/api/dto"

// Deterministic demonstration data substituted when an analytics query
// fails. Fixed dates on purpose: degraded output should be recognizable and
// reproducible, not pseudo-live.

func sampleSales(rng TimeRange) []dto.SalesPoint {
	switch rng {
	case RangeWeek:
		return []dto.SalesPoint{
			{Period: "Week 1", Sales: 8500, Orders: 85, Customers: 70, Date: "2024-01-01"},
			{Period: "Week 2", Sales: 9200, Orders: 92, Customers: 75, Date: "2024-01-08"},
			{Period: "Week 3", Sales: 7800, Orders: 78, Customers: 65, Date: "2024-01-15"},
			{Period: "Week 4", Sales: 10500, Orders: 105, Customers: 85, Date: "2024-01-22"},
		}
	case RangeMonth:
		return []dto.SalesPoint{
			{Period: "Jan", Sales: 36000, Orders: 360, Customers: 295, Date: "2024-01-01"},
			{Period: "Feb", Sales: 42000, Orders: 420, Customers: 340, Date: "2024-02-01"},
			{Period: "Mar", Sales: 38000, Orders: 380, Customers: 310, Date: "2024-03-01"},
			{Period: "Apr", Sales: 45000, Orders: 450, Customers: 370, Date: "2024-04-01"},
		}
	default:
		return []dto.SalesPoint{
			{Period: "Mon", Sales: 1200, Orders: 15, Customers: 12, Date: "2024-01-01"},
			{Period: "Tue", Sales: 1800, Orders: 18, Customers: 15, Date: "2024-01-02"},
			{Period: "Wed", Sales: 1500, Orders: 16, Customers: 14, Date: "2024-01-03"},
			{Period: "Thu", Sales: 2200, Orders: 22, Customers: 18, Date: "2024-01-04"},
			{Period: "Fri", Sales: 1900, Orders: 20, Customers: 16, Date: "2024-01-05"},
			{Period: "Sat", Sales: 2500, Orders: 25, Customers: 20, Date: "2024-01-06"},
			{Period: "Sun", Sales: 2100, Orders: 21, Customers: 17, Date: "2024-01-07"},
		}
	}
}

func sampleTopProducts() []dto.TopProduct {
	return []dto.TopProduct{
		{Name: "Wireless Headphones", Category: "Electronics", UnitsSold: 45, Revenue: 67500, Growth: 15},
		{Name: "Organic Coffee", Category: "Groceries", UnitsSold: 120, Revenue: 24000, Growth: 22},
		{Name: "Yoga Mat", Category: "Fitness", UnitsSold: 38, Revenue: 19000, Growth: 18},
		{Name: "Smart Watch", Category: "Electronics", UnitsSold: 28, Revenue: 84000, Growth: 12},
		{Name: "Face Moisturizer", Category: "Beauty", UnitsSold: 65, Revenue: 19500, Growth: 25},
	}
}

func sampleCategorySales() []dto.CategorySales {
	return []dto.CategorySales{
		{Category: "Electronics", Sales: 35},
		{Category: "Clothing", Sales: 25},
		{Category: "Groceries", Sales: 20},
		{Category: "Home & Garden", Sales: 15},
		{Category: "Others", Sales: 5},
	}
}
