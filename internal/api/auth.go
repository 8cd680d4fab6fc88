package api

import (
	"context"
	"net/http"

	"github.com/priyakanmani/smartcart-client-go/internal/api/dto"
)

// AuthClient exchanges credentials for a token. Login requests themselves
// are unauthenticated; storing the returned token in the session cache is
// the caller's job.
type AuthClient struct{ c *Client }

func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

func (a *AuthClient) AdminLogin(ctx context.Context, email, password string) (dto.AdminLoginResponse, error) {
	var resp dto.AdminLoginResponse
	err := a.c.do(ctx, http.MethodPost, "/api/admin/login", "", dto.LoginRequest{Email: email, Password: password}, &resp)
	return resp, err
}

func (a *AuthClient) ManagerLogin(ctx context.Context, email, password string) (dto.ManagerLoginResponse, error) {
	var resp dto.ManagerLoginResponse
	err := a.c.do(ctx, http.MethodPost, "/api/manager/login", "", dto.LoginRequest{Email: email, Password: password}, &resp)
	return resp, err
}
