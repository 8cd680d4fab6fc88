package dto

import "encoding/json"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login responses carry the profile as raw JSON on purpose: the object is
// loosely typed and is normalized by the session layer, not here.
type AdminLoginResponse struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

type ManagerLoginResponse struct {
	Token   string          `json:"token"`
	Manager json.RawMessage `json:"manager"`
}
