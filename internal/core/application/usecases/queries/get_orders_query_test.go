package queries_test

import (
	"testing"

	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	for _, actor := range []ports.Actor{staffActor(), customerActor(), tailorActor()} {
		query, err := queries.NewGetOrdersQuery(actor)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, actor, query.Actor())
	}
}

func TestNewGetOrdersQuery_RequiresActor(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(ports.Actor{})
	require.Error(t, err)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
