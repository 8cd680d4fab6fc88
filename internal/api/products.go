package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/priyakanmani/smartcart-client-go/internal/api/dto"
)

// ProductsClient covers a manager's product catalog, always scoped to one
// shop via the shop query parameter.
type ProductsClient struct{ c *Client }

func NewProductsClient(c *Client) *ProductsClient { return &ProductsClient{c: c} }

func (pc *ProductsClient) List(ctx context.Context, shopID string) ([]dto.Product, error) {
	q := url.Values{"shop": {shopID}}.Encode()
	var products []dto.Product
	err := pc.c.do(ctx, http.MethodGet, "/api/products", q, nil, &products)
	return products, err
}

func (pc *ProductsClient) Create(ctx context.Context, draft dto.ProductDraft) (dto.Product, error) {
	var p dto.Product
	err := pc.c.do(ctx, http.MethodPost, "/api/products", "", draft, &p)
	return p, err
}

func (pc *ProductsClient) Update(ctx context.Context, id string, draft dto.ProductDraft) (dto.Product, error) {
	var p dto.Product
	err := pc.c.do(ctx, http.MethodPut, "/api/products/"+id, "", draft, &p)
	return p, err
}

func (pc *ProductsClient) Delete(ctx context.Context, id string) error {
	return pc.c.do(ctx, http.MethodDelete, "/api/products/"+id, "", nil, nil)
}
