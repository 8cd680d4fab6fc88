package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// ShopIDFromToken reads the shopId claim out of a JWT payload. The token is
// decoded, not verified: issuance and verification belong to the backend,
// the client only mirrors a claim into its cache.
func ShopIDFromToken(token string) (string, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		// Some issuers pad their segments.
		payload, err = base64.URLEncoding.DecodeString(parts[1])
		if err != nil {
			return "", false
		}
	}

	var claims struct {
		ShopID string `json:"shopId"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", false
	}
	return claims.ShopID, claims.ShopID != ""
}
