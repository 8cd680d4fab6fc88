// Package panel holds the local list state behind one resource view. A
// panel is a thin shell over a REST collection: it fetches, renders from its
// local copy, and reconciles that copy after each confirmed mutation.
package panel

import (
	"context"
	"errors"

	"github.com/priyakanmani/smartcart-client-go/internal/api"
)

// Resource is one REST collection as a panel consumes it.
type Resource[E any] interface {
	List(ctx context.Context) ([]E, error)
	Create(ctx context.Context, draft E) (E, error)
	Update(ctx context.Context, id string, patch E) (E, error)
	Delete(ctx context.Context, id string) error
}

// Placement controls where a created entity lands in the local list.
type Placement int

const (
	Append Placement = iota
	Prepend
)

// GenericErrorMessage is shown when the failure carries no server wording.
const GenericErrorMessage = "Network error. Please try again."

// Panel mirrors one collection. Mutations touch the local list only after
// the backend confirms them; a failed call leaves the previous state exactly
// as it was and records a visible error message. Panels are single-threaded
// like the event loop that drives them; concurrent edits are
// last-response-wins with no conflict detection.
type Panel[E any] struct {
	res   Resource[E]
	id    func(E) string
	place Placement

	items      []E
	selectedID string
	loading    bool
	errMsg     string
}

// New builds a panel over res. id extracts an entity's identifier; place
// decides where created entities go.
func New[E any](res Resource[E], id func(E) string, place Placement) *Panel[E] {
	return &Panel[E]{res: res, id: id, place: place}
}

func (p *Panel[E]) Items() []E     { return p.items }
func (p *Panel[E]) Loading() bool  { return p.loading }
func (p *Panel[E]) Err() string    { return p.errMsg }
func (p *Panel[E]) ClearError()    { p.errMsg = "" }
func (p *Panel[E]) Select(id string) { p.selectedID = id }

// Selected returns the currently selected entity, if any.
func (p *Panel[E]) Selected() (E, bool) {
	for _, e := range p.items {
		if p.id(e) == p.selectedID && p.selectedID != "" {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// Load refreshes the list. On failure the previously displayed collection is
// kept untouched; only the error message changes.
func (p *Panel[E]) Load(ctx context.Context) error {
	p.loading = true
	p.errMsg = ""
	items, err := p.res.List(ctx)
	p.loading = false
	if err != nil {
		p.errMsg = userMessage(err)
		return err
	}
	p.items = items
	return nil
}

// Create submits a draft and, once confirmed, places the server's entity in
// the local list without a refetch.
func (p *Panel[E]) Create(ctx context.Context, draft E) (E, error) {
	p.loading = true
	p.errMsg = ""
	created, err := p.res.Create(ctx, draft)
	p.loading = false
	if err != nil {
		p.errMsg = userMessage(err)
		return created, err
	}
	if p.place == Prepend {
		p.items = append([]E{created}, p.items...)
	} else {
		p.items = append(p.items, created)
	}
	return created, nil
}

// Update submits a patch and replaces the matching local entity with the
// server's representation.
func (p *Panel[E]) Update(ctx context.Context, id string, patch E) (E, error) {
	p.loading = true
	p.errMsg = ""
	updated, err := p.res.Update(ctx, id, patch)
	p.loading = false
	if err != nil {
		p.errMsg = userMessage(err)
		return updated, err
	}
	p.ReplaceOne(updated)
	return updated, nil
}

// Delete removes the entity remotely, then locally. Deleting the selected
// entity clears the selection.
func (p *Panel[E]) Delete(ctx context.Context, id string) error {
	p.loading = true
	p.errMsg = ""
	err := p.res.Delete(ctx, id)
	p.loading = false
	if err != nil {
		p.errMsg = userMessage(err)
		return err
	}
	kept := p.items[:0:0]
	for _, e := range p.items {
		if p.id(e) != id {
			kept = append(kept, e)
		}
	}
	p.items = kept
	if p.selectedID == id {
		p.selectedID = ""
	}
	return nil
}

// ReplaceOne swaps in an entity returned by the server, matched by id. Used
// directly after sub-resource mutations, where the endpoint hands back the
// full updated parent.
func (p *Panel[E]) ReplaceOne(e E) {
	id := p.id(e)
	for i := range p.items {
		if p.id(p.items[i]) == id {
			p.items[i] = e
			return
		}
	}
}

// userMessage maps an error to what the view shows: the server's wording
// when there is any, a generic line otherwise.
func userMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return "Authentication failed. Please log in again."
	}
	return GenericErrorMessage
}
