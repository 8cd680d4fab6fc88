package dto

// Cart status values accepted by the fleet endpoints.
const (
	CartAvailable   = "Available"
	CartInUse       = "In Use"
	CartMaintenance = "Maintenance"
)

type Complaint struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	ReportedBy  string `json:"reported_by"`
	Resolved    bool   `json:"resolved"`
}

type Review struct {
	CustomerID string `json:"customer_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// Cart is one physical smart cart in the fleet, not a shopping basket.
type Cart struct {
	CartID     string      `json:"cart_id"`
	Status     string      `json:"status"`
	Location   string      `json:"location"`
	Complaints []Complaint `json:"complaints"`
	Reviews    []Review    `json:"reviews"`
}

type CreateCartRequest struct {
	CartID string `json:"cart_id"`
}

type UpdateCartRequest struct {
	Status   string `json:"status"`
	Location string `json:"location"`
}

type UpdateCartStatusRequest struct {
	Status string `json:"status"`
}
