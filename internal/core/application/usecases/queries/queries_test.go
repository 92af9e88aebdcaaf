package queries_test

import (
	"testing"

	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveOrdersQuery_Valid(t *testing.T) {
	userID := kernel.NewUUID()

	query, err := queries.NewGetActiveOrdersQuery(userID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.UserID().IsEqual(userID))
}

func TestNewGetActiveOrdersQuery_RequiresUser(t *testing.T) {
	_, err := queries.NewGetActiveOrdersQuery(kernel.UUID{})

	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetActiveOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetActiveOrdersQuery{}.Validate()

	assert.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestNewGetOrderHistoryQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderHistoryQuery(kernel.NewUUID())

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestGetOrderHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetOrderHistoryQuery{}.Validate()

	assert.ErrorIs(t, err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
}
