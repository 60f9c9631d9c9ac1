package firestore

import (
	"context"
	"testing"

	"townhub/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a client against an unreachable emulator address.
// Query construction is purely local, so no connection is ever made.
func newTestClient(t *testing.T) *firestore.Client {
	t.Setenv("FIRESTORE_EMULATOR_HOST", "localhost:1")

	client, err := firestore.NewClient(context.Background(), "query-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestBusinessRepository_ListQuery(t *testing.T) {
	client := newTestClient(t)
	repo := &businessRepository{client: client}
	businesses := client.Collection(collectionBusinesses)

	tests := []struct {
		name     string
		filter   repository.ListFilter
		expected firestore.Query
	}{
		{
			name:     "no filter orders newest first",
			filter:   repository.ListFilter{},
			expected: businesses.Query.OrderBy("createdAt", firestore.Desc),
		},
		{
			name:   "category equality",
			filter: repository.ListFilter{Category: "restaurant"},
			expected: businesses.Query.
				Where("category", "==", "restaurant").
				OrderBy("createdAt", firestore.Desc),
		},
		{
			name:     "category all is no filter",
			filter:   repository.ListFilter{Category: "all"},
			expected: businesses.Query.OrderBy("createdAt", firestore.Desc),
		},
		{
			name:   "search prefix range leads the ordering",
			filter: repository.ListFilter{Search: "cafe"},
			expected: businesses.Query.
				Where("nameLower", ">=", "cafe").
				Where("nameLower", "<=", "cafe"+prefixLast).
				OrderBy("nameLower", firestore.Asc),
		},
		{
			name:   "category and search compose",
			filter: repository.ListFilter{Category: "restaurant", Search: "小"},
			expected: businesses.Query.
				Where("category", "==", "restaurant").
				Where("nameLower", ">=", "小").
				Where("nameLower", "<=", "小"+prefixLast).
				OrderBy("nameLower", firestore.Asc),
		},
		{
			name:   "limit and offset",
			filter: repository.ListFilter{Limit: 20, Offset: 40},
			expected: businesses.Query.
				OrderBy("createdAt", firestore.Desc).
				Offset(40).
				Limit(20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repo.listQuery(tt.filter))
		})
	}
}
