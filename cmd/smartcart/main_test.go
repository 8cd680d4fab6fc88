package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyakanmani/smartcart-client-go/internal/api"
	"github.com/priyakanmani/smartcart-client-go/internal/api/dto"
	"github.com/priyakanmani/smartcart-client-go/internal/panel"
)

func TestManagerPanelCreatePrependsSavedEntity(t *testing.T) {
	var createBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			createBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"manager":{"_id":"m-2","managerName":"Sarah","shop":{"id":"SARASU001"}}}`))
			return
		}
		_, _ = w.Write([]byte(`[{"_id":"m-1","managerName":"Ravi","shop":{"id":"RAVIST001"}}]`))
	}))
	t.Cleanup(srv.Close)

	c, err := api.NewClient(srv.URL, nil, nil)
	require.NoError(t, err)
	mc := api.NewManagersClient(c, api.NewCartsClient(c))
	p := panel.New[dto.Manager](managersResource{mc: mc, password: "secret1"},
		func(e dto.Manager) string { return e.ID }, panel.Prepend)

	require.NoError(t, p.Load(context.Background()))
	require.Len(t, p.Items(), 1)

	created, err := p.Create(context.Background(), dto.Manager{
		ManagerName: "Sarah",
		Email:       "sarah@example.com",
		Shop:        dto.ShopDescriptor{ID: "SARASU001", Name: "Sarasu Stores"},
	})
	require.NoError(t, err)
	assert.Equal(t, "m-2", created.ID)

	// The password travels in the wire draft even though the entity type
	// never carries one.
	var draft map[string]any
	require.NoError(t, json.Unmarshal(createBody, &draft))
	assert.Equal(t, "secret1", draft["password"])

	require.Len(t, p.Items(), 2)
	assert.Equal(t, "m-2", p.Items()[0].ID)
	assert.Equal(t, "m-1", p.Items()[1].ID)
}
