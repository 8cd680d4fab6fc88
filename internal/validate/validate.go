// Package validate holds the advisory pre-submission checks for form drafts.
// A failing draft never reaches the network; the server stays authoritative
// for anything that passes.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// Errors maps a form field to a human-readable message. An empty map means
// the draft may be submitted.
type Errors map[string]string

func (e Errors) OK() bool { return len(e) == 0 }

// ManagerDraft is the manager form as typed, before it becomes a request.
type ManagerDraft struct {
	ManagerName string
	Email       string
	Password    string
	ShopName    string
	ShopAddress string
	Phone       string
}

// Manager checks a manager draft. On edit the password is optional but is
// still length-checked when present.
func Manager(d ManagerDraft, isEdit bool) Errors {
	errs := Errors{}
	if strings.TrimSpace(d.ManagerName) == "" {
		errs["managerName"] = "Name is required"
	}
	if strings.TrimSpace(d.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(d.Email) {
		errs["email"] = "Invalid email"
	}
	if !isEdit && d.Password == "" {
		errs["password"] = "Password is required"
	} else if d.Password != "" && len(d.Password) < 6 {
		errs["password"] = "Minimum 6 characters"
	}
	if strings.TrimSpace(d.ShopName) == "" {
		errs["shopName"] = "Shop name is required"
	}
	if strings.TrimSpace(d.ShopAddress) == "" {
		errs["shopAddress"] = "Shop address is required"
	}
	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Phone is required"
	} else if !phoneRe.MatchString(d.Phone) {
		errs["phone"] = "Invalid phone"
	}
	return errs
}

// ProductDraft is the product form as typed.
type ProductDraft struct {
	Name     string
	Category string
	Price    float64
	Stock    int
}

func Product(d ProductDraft) Errors {
	errs := Errors{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(d.Category) == "" {
		errs["category"] = "Category is required"
	}
	if d.Price <= 0 {
		errs["price"] = "Price must be greater than zero"
	}
	if d.Stock < 0 {
		errs["stock"] = "Stock cannot be negative"
	}
	return errs
}

// Credentials checks a login form for either role.
func Credentials(email, password string) Errors {
	errs := Errors{}
	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(email) {
		errs["email"] = "Invalid email"
	}
	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < 6 {
		errs["password"] = "Minimum 6 characters"
	}
	return errs
}
