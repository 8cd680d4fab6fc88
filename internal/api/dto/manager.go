package dto

type ShopDescriptor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type Manager struct {
	ID            string         `json:"_id"`
	ManagerName   string         `json:"managerName"`
	Email         string         `json:"email"`
	Shop          ShopDescriptor `json:"shop"`
	AssignedCarts []string       `json:"assignedCarts"`
}

// ManagerDraft is the create/update payload. The shop id inside the
// descriptor is generated client-side before submission.
type ManagerDraft struct {
	ManagerName   string         `json:"managerName"`
	Email         string         `json:"email"`
	Password      string         `json:"password,omitempty"`
	Shop          ShopDescriptor `json:"shop"`
	AssignedCarts []string       `json:"assignedCarts"`
}

// SaveManagerResponse wraps the entity the admin endpoints return.
type SaveManagerResponse struct {
	Manager Manager `json:"manager"`
}
