package db

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS suppliers").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, Migrate(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaInvariants(t *testing.T) {
	// The dedup and single-active-campaign invariants live in the schema.
	assert.Contains(t, schema, "lower(company_name), country")
	assert.Contains(t, schema, "idx_suppliers_identity")
	assert.Contains(t, schema, "idx_campaigns_one_active")
	assert.Contains(t, schema, "WHERE status = 'active'")
}
