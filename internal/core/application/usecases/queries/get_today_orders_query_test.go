package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTodayOrdersQuery(t *testing.T) {
	query := queries.NewGetTodayOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetTodayOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetTodayOrdersQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetTodayOrdersQueryIsNotConstructed)
}
