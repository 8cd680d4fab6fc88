package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validManager() ManagerDraft {
	return ManagerDraft{
		ManagerName: "Sarah Manager",
		Email:       "sarah@example.com",
		Password:    "secret1",
		ShopName:    "Sarasu",
		ShopAddress: "12 Main St",
		Phone:       "+911234567890",
	}
}

func TestManagerValidDraft(t *testing.T) {
	errs := Manager(validManager(), false)
	assert.True(t, errs.OK(), "unexpected errors: %v", errs)
}

func TestManagerFieldErrors(t *testing.T) {
	tests := map[string]struct {
		mutate    func(*ManagerDraft)
		isEdit    bool
		wantField string
	}{
		"missing name": {
			mutate:    func(d *ManagerDraft) { d.ManagerName = "  " },
			wantField: "managerName",
		},
		"missing email": {
			mutate:    func(d *ManagerDraft) { d.Email = "" },
			wantField: "email",
		},
		"malformed email": {
			mutate:    func(d *ManagerDraft) { d.Email = "not-an-email" },
			wantField: "email",
		},
		"missing password on create": {
			mutate:    func(d *ManagerDraft) { d.Password = "" },
			wantField: "password",
		},
		"short password": {
			mutate:    func(d *ManagerDraft) { d.Password = "abc" },
			wantField: "password",
		},
		"short password on edit": {
			mutate:    func(d *ManagerDraft) { d.Password = "abc" },
			isEdit:    true,
			wantField: "password",
		},
		"missing shop name": {
			mutate:    func(d *ManagerDraft) { d.ShopName = "" },
			wantField: "shopName",
		},
		"missing shop address": {
			mutate:    func(d *ManagerDraft) { d.ShopAddress = "" },
			wantField: "shopAddress",
		},
		"missing phone": {
			mutate:    func(d *ManagerDraft) { d.Phone = "" },
			wantField: "phone",
		},
		"malformed phone": {
			mutate:    func(d *ManagerDraft) { d.Phone = "12-34" },
			wantField: "phone",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d := validManager()
			tc.mutate(&d)

			errs := Manager(d, tc.isEdit)
			assert.Contains(t, errs, tc.wantField)
			assert.Len(t, errs, 1)
		})
	}
}

func TestManagerEditAllowsEmptyPassword(t *testing.T) {
	d := validManager()
	d.Password = ""
	assert.True(t, Manager(d, true).OK())
}

func TestProduct(t *testing.T) {
	ok := ProductDraft{Name: "Organic Coffee", Category: "Groceries", Price: 49.99, Stock: 10}
	assert.True(t, Product(ok).OK())

	bad := Product(ProductDraft{Price: -1, Stock: -1})
	assert.Contains(t, bad, "name")
	assert.Contains(t, bad, "category")
	assert.Contains(t, bad, "price")
	assert.Contains(t, bad, "stock")
}

func TestCredentials(t *testing.T) {
	assert.True(t, Credentials("admin@example.com", "secret1").OK())
	assert.Contains(t, Credentials("", "secret1"), "email")
	assert.Contains(t, Credentials("admin@example.com", "abc"), "password")
}
