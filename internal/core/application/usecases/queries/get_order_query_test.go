package queries_test

import (
	"testing"

	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staffActor() ports.Actor {
	return ports.Actor{ID: kernel.NewUUID(), Role: kernel.RoleStaff}
}

func customerActor() ports.Actor {
	return ports.Actor{ID: kernel.NewUUID(), Role: kernel.RoleCustomer}
}

func tailorActor() ports.Actor {
	return ports.Actor{ID: kernel.NewUUID(), Role: kernel.RoleTailor}
}

func TestNewGetOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), staffActor())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_RequiresOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, staffActor())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
