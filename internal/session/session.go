package session

import (
	"encoding/json"
	"fmt"
)

// Key suffixes. Every role-scoped value lives under "<role><suffix>"
// ("adminToken", "managerUser", ...); the shop id keeps its historical
// unprefixed key.
const (
	suffixToken = "Token"
	suffixEmail = "Email"
	suffixUser  = "User"
	keyShopID   = "shopId"
)

// Session funnels every read and write of one role's cached credentials
// through a single owner of serialization and key naming.
type Session struct {
	store Store
	role  string
}

func New(store Store, role string) *Session {
	return &Session{store: store, role: role}
}

func (s *Session) key(suffix string) string { return s.role + suffix }

// SaveLogin caches the credentials returned by a successful login. The raw
// profile JSON is normalized once here. The shop id is taken from the token
// claim when present, from the profile otherwise, and only stored for
// managers; admins have no shop.
func (s *Session) SaveLogin(token, email string, rawProfile []byte) (Profile, error) {
	if err := s.store.Set(s.key(suffixToken), token); err != nil {
		return Profile{}, err
	}

	var profile Profile
	if len(rawProfile) > 0 {
		p, err := NormalizeProfile(rawProfile)
		if err != nil {
			return Profile{}, err
		}
		profile = p

		canonical, err := json.Marshal(p)
		if err != nil {
			return Profile{}, err
		}
		if err := s.store.Set(s.key(suffixUser), string(canonical)); err != nil {
			return Profile{}, err
		}
	}

	if email == "" {
		email = profile.Email
	}
	if err := s.store.Set(s.key(suffixEmail), email); err != nil {
		return Profile{}, err
	}

	if s.role == "manager" {
		shopID, ok := ShopIDFromToken(token)
		if !ok {
			shopID = profile.Shop.ID
		}
		if shopID != "" {
			if err := s.store.Set(keyShopID, shopID); err != nil {
				return Profile{}, err
			}
		}
	}

	return profile, nil
}

// Token returns the cached token, empty when logged out.
func (s *Session) Token() string {
	v, _ := s.store.Get(s.key(suffixToken))
	return v
}

func (s *Session) Email() string {
	v, _ := s.store.Get(s.key(suffixEmail))
	return v
}

// Profile returns the canonical cached profile, if one was stored.
func (s *Session) Profile() (Profile, bool) {
	raw, ok := s.store.Get(s.key(suffixUser))
	if !ok || raw == "" {
		return Profile{}, false
	}
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Profile{}, false
	}
	return p, true
}

// ShopID returns the cached shop id, falling back to the profile.
func (s *Session) ShopID() string {
	if v, ok := s.store.Get(keyShopID); ok && v != "" {
		return v
	}
	if p, ok := s.Profile(); ok {
		return p.Shop.ID
	}
	return ""
}

// Clear drops everything this role wrote: logout semantics. Implements the
// token invalidation side of 401 handling as well.
func (s *Session) Clear() error {
	for _, k := range []string{
		s.key(suffixToken),
		s.key(suffixEmail),
		s.key(suffixUser),
		keyShopID,
	} {
		if err := s.store.Delete(k); err != nil {
			return fmt.Errorf("clearing session key %s: %w", k, err)
		}
	}
	return nil
}
