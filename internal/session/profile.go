package session

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Profile is the one canonical shape for a logged-in user. The backend
// returns loosely-typed objects with several aliases for the same concept;
// every alias is resolved here, once, at the cache boundary, and downstream
// code only ever sees this struct.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Shop  Shop   `json:"shop"`
}

// Shop describes a manager's shop.
type Shop struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// NormalizeProfile parses a raw profile object into the canonical shape.
// The shop id in particular hides in several places depending on which
// endpoint produced the object; the lookup order is shop.id, then a flat
// shopId field, then a shop field that is a bare string, then the profile's
// own id as a last resort.
func NormalizeProfile(raw []byte) (Profile, error) {
	var loose struct {
		ID          string          `json:"id"`
		MongoID     string          `json:"_id"`
		Name        string          `json:"name"`
		ManagerName string          `json:"managerName"`
		Email       string          `json:"email"`
		ShopID      string          `json:"shopId"`
		Shop        json.RawMessage `json:"shop"`
	}
	if err := json.Unmarshal(raw, &loose); err != nil {
		return Profile{}, fmt.Errorf("parsing profile: %w", err)
	}

	p := Profile{
		ID:    firstNonEmpty(loose.ID, loose.MongoID),
		Name:  firstNonEmpty(loose.Name, loose.ManagerName),
		Email: loose.Email,
	}

	var shopAsString string
	if len(loose.Shop) > 0 {
		if bytes.HasPrefix(bytes.TrimSpace(loose.Shop), []byte(`"`)) {
			if err := json.Unmarshal(loose.Shop, &shopAsString); err != nil {
				return Profile{}, fmt.Errorf("parsing profile shop: %w", err)
			}
		} else if err := json.Unmarshal(loose.Shop, &p.Shop); err != nil {
			return Profile{}, fmt.Errorf("parsing profile shop: %w", err)
		}
	}

	p.Shop.ID = firstNonEmpty(p.Shop.ID, loose.ShopID, shopAsString, p.ID)
	return p, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
