package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/priyakanmani/smartcart-client-go/internal/api/dto"
)

// ManagersClient covers the admin-side manager accounts, including the
// shop descriptor nested in each one.
type ManagersClient struct {
	c     *Client
	carts *CartsClient
}

func NewManagersClient(c *Client, carts *CartsClient) *ManagersClient {
	return &ManagersClient{c: c, carts: carts}
}

func (mc *ManagersClient) List(ctx context.Context) ([]dto.Manager, error) {
	var managers []dto.Manager
	err := mc.c.do(ctx, http.MethodGet, "/api/admin/managers", "", nil, &managers)
	return managers, err
}

func (mc *ManagersClient) Create(ctx context.Context, draft dto.ManagerDraft) (dto.Manager, error) {
	var resp dto.SaveManagerResponse
	err := mc.c.do(ctx, http.MethodPost, "/api/admin/add-manager", "", draft, &resp)
	return resp.Manager, err
}

func (mc *ManagersClient) Update(ctx context.Context, id string, draft dto.ManagerDraft) (dto.Manager, error) {
	var resp dto.SaveManagerResponse
	err := mc.c.do(ctx, http.MethodPut, "/api/admin/manager/"+id, "", draft, &resp)
	return resp.Manager, err
}

func (mc *ManagersClient) Delete(ctx context.Context, id string) error {
	return mc.c.do(ctx, http.MethodDelete, "/api/admin/manager/"+id, "", nil, nil)
}

// SyncAssignedCarts flips every cart just assigned to a manager to In Use.
// Failures are collected rather than aborting: the manager record is already
// saved by the time this runs, so a partial sync must not roll it back.
func (mc *ManagersClient) SyncAssignedCarts(ctx context.Context, cartIDs []string) error {
	var firstErr error
	for _, id := range cartIDs {
		if _, err := mc.carts.UpdateStatus(ctx, id, dto.CartInUse); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("updating cart %s: %w", id, err)
		}
	}
	return firstErr
}
