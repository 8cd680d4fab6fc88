package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProfile(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want Profile
	}{
		"shop object": {
			raw: `{"_id":"m-1","managerName":"Sarah","email":"sarah@example.com",
				"shop":{"id":"SARASU001","name":"Sarasu","address":"12 Main St","phone":"+911234567890"}}`,
			want: Profile{
				ID:    "m-1",
				Name:  "Sarah",
				Email: "sarah@example.com",
				Shop:  Shop{ID: "SARASU001", Name: "Sarasu", Address: "12 Main St", Phone: "+911234567890"},
			},
		},
		"flat shopId alias": {
			raw:  `{"id":"m-2","name":"Ravi","shopId":"SARASU002"}`,
			want: Profile{ID: "m-2", Name: "Ravi", Shop: Shop{ID: "SARASU002"}},
		},
		"shop as bare string": {
			raw:  `{"id":"m-3","name":"Priya","shop":"SARASU003"}`,
			want: Profile{ID: "m-3", Name: "Priya", Shop: Shop{ID: "SARASU003"}},
		},
		"profile id as last resort": {
			raw:  `{"id":"m-4","name":"Anil"}`,
			want: Profile{ID: "m-4", Name: "Anil", Shop: Shop{ID: "m-4"}},
		},
		"shop object wins over flat alias": {
			raw:  `{"id":"m-5","shop":{"id":"SHOPA001"},"shopId":"SHOPB001"}`,
			want: Profile{ID: "m-5", Shop: Shop{ID: "SHOPA001"}},
		},
		"name aliases": {
			raw:  `{"_id":"m-6","managerName":"Mira"}`,
			want: Profile{ID: "m-6", Name: "Mira", Shop: Shop{ID: "m-6"}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NormalizeProfile([]byte(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeProfileRejectsMalformedJSON(t *testing.T) {
	_, err := NormalizeProfile([]byte(`{not json`))
	require.Error(t, err)
}
