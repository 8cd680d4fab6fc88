package api

import (
	"context"
	"net/http"

	"github.com/priyakanmani/smartcart-client-go/internal/api/dto"
)

// AdminClient covers the admin dashboard aggregates.
type AdminClient struct{ c *Client }

func NewAdminClient(c *Client) *AdminClient { return &AdminClient{c: c} }

func (ac *AdminClient) Overview(ctx context.Context) (dto.Overview, error) {
	var ov dto.Overview
	err := ac.c.do(ctx, http.MethodGet, "/api/admin/overview", "", nil, &ov)
	return ov, err
}
