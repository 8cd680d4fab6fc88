package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/priyakanmani/smartcart-client-go/internal/api/dto"
)

// CartsClient manages the physical cart fleet. Every sub-resource mutation
// (complaints, reviews) returns the full updated parent cart; the server is
// the source of truth for the merged shape.
type CartsClient struct{ c *Client }

func NewCartsClient(c *Client) *CartsClient { return &CartsClient{c: c} }

// List fetches the fleet, optionally filtered by status.
func (cc *CartsClient) List(ctx context.Context, status string) ([]dto.Cart, error) {
	var q string
	if status != "" {
		q = url.Values{"status": {status}}.Encode()
	}
	var carts []dto.Cart
	err := cc.c.do(ctx, http.MethodGet, "/api/carts", q, nil, &carts)
	return carts, err
}

func (cc *CartsClient) Create(ctx context.Context, cartID string) (dto.Cart, error) {
	var cart dto.Cart
	err := cc.c.do(ctx, http.MethodPost, "/api/carts", "", dto.CreateCartRequest{CartID: cartID}, &cart)
	return cart, err
}

func (cc *CartsClient) Update(ctx context.Context, id string, req dto.UpdateCartRequest) (dto.Cart, error) {
	var cart dto.Cart
	err := cc.c.do(ctx, http.MethodPut, "/api/carts/"+id, "", req, &cart)
	return cart, err
}

func (cc *CartsClient) Delete(ctx context.Context, id string) error {
	return cc.c.do(ctx, http.MethodDelete, "/api/carts/"+id, "", nil, nil)
}

func (cc *CartsClient) UpdateStatus(ctx context.Context, id, status string) (dto.Cart, error) {
	var cart dto.Cart
	err := cc.c.do(ctx, http.MethodPut, "/api/carts/"+id+"/status", "", dto.UpdateCartStatusRequest{Status: status}, &cart)
	return cart, err
}

func (cc *CartsClient) AddComplaint(ctx context.Context, id string, complaint dto.Complaint) (dto.Cart, error) {
	var cart dto.Cart
	err := cc.c.do(ctx, http.MethodPost, "/api/carts/"+id+"/complaints", "", complaint, &cart)
	return cart, err
}

// ResolveComplaint marks the complaint at the given position resolved.
// Complaints are addressed by index within the parent cart, not by id.
func (cc *CartsClient) ResolveComplaint(ctx context.Context, id string, index int) (dto.Cart, error) {
	var cart dto.Cart
	path := "/api/carts/" + id + "/complaints/" + strconv.Itoa(index) + "/resolve"
	err := cc.c.do(ctx, http.MethodPut, path, "", nil, &cart)
	return cart, err
}

func (cc *CartsClient) AddReview(ctx context.Context, id string, review dto.Review) (dto.Cart, error) {
	var cart dto.Cart
	err := cc.c.do(ctx, http.MethodPost, "/api/carts/"+id+"/reviews", "", review, &cart)
	return cart, err
}
