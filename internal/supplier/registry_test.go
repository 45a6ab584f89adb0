package supplier

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/model"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func i64p(v int64) *int64 { return &v }
func ip(v int) *int       { return &v }

func testCandidate() Candidate {
	return Candidate{
		CompanyName:     "Hunan Nutramax Inc.",
		Email:           "sales@nutramax.com.cn",
		Country:         "China",
		ProductCategory: "Health Supplements",
		AnnualRevenue:   i64p(45_000_000),
		EmployeeCount:   ip(320),
		DataSource:      "automated_discovery",
	}
}

func supplierRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "company_name", "email", "country", "product_category",
		"annual_revenue", "employee_count", "size_class", "potential_value",
		"success_probability", "verification_status", "data_source", "created_at",
	})
}

func TestUpsertIfAbsent_CreatesNewSupplier(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Now()
	mock.ExpectQuery("INSERT INTO suppliers").
		WithArgs(pgxmock.AnyArg(), "Hunan Nutramax Inc.", "sales@nutramax.com.cn",
			"china", "Health Supplements", i64p(45_000_000), ip(320),
			"medium", int64(4_500_000), 65, "unverified", "automated_discovery").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))

	reg := NewPostgresRegistry(mock)
	s, wasCreated, err := reg.UpsertIfAbsent(context.Background(), testCandidate())
	require.NoError(t, err)
	assert.True(t, wasCreated)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "china", s.Country, "country is normalized to lowercase")
	assert.Equal(t, model.SizeMedium, s.SizeClass)
	assert.Equal(t, int64(4_500_000), s.PotentialValue)
	assert.Equal(t, 65, s.SuccessProbability)
	assert.Equal(t, model.VerificationUnverified, s.VerificationStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertIfAbsent_ReturnsExistingOnConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// ON CONFLICT DO NOTHING returns no row on a duplicate identity.
	mock.ExpectQuery("INSERT INTO suppliers").
		WithArgs(pgxmock.AnyArg(), "Hunan Nutramax Inc.", "sales@nutramax.com.cn",
			"china", "Health Supplements", i64p(45_000_000), ip(320),
			"medium", int64(4_500_000), 65, "unverified", "automated_discovery").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}))

	mock.ExpectQuery(`WHERE lower\(company_name\) = lower\(\$1\)`).
		WithArgs("Hunan Nutramax Inc.", "china").
		WillReturnRows(supplierRows().AddRow(
			"existing-id", "Hunan Nutramax Inc.", "sales@nutramax.com.cn", "china",
			"Health Supplements", i64p(45_000_000), ip(320), "medium",
			int64(4_500_000), 65, "unverified", "automated_discovery", time.Now(),
		))

	reg := NewPostgresRegistry(mock)
	s, wasCreated, err := reg.UpsertIfAbsent(context.Background(), testCandidate())
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, "existing-id", s.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertIfAbsent_IdentityIgnoresNameCasing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// An upper-cased re-sighting hits the lower(company_name) conflict and
	// resolves to the stored row instead of inserting a second one.
	mock.ExpectQuery("INSERT INTO suppliers").
		WithArgs(pgxmock.AnyArg(), "HUNAN NUTRAMAX INC.", "sales@nutramax.com.cn",
			"china", "Health Supplements", i64p(45_000_000), ip(320),
			"medium", int64(4_500_000), 65, "unverified", "automated_discovery").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}))

	mock.ExpectQuery(`WHERE lower\(company_name\) = lower\(\$1\)`).
		WithArgs("HUNAN NUTRAMAX INC.", "china").
		WillReturnRows(supplierRows().AddRow(
			"existing-id", "Hunan Nutramax Inc.", "sales@nutramax.com.cn", "china",
			"Health Supplements", i64p(45_000_000), ip(320), "medium",
			int64(4_500_000), 65, "unverified", "automated_discovery", time.Now(),
		))

	cand := testCandidate()
	cand.CompanyName = "HUNAN NUTRAMAX INC."

	reg := NewPostgresRegistry(mock)
	s, wasCreated, err := reg.UpsertIfAbsent(context.Background(), cand)
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, "existing-id", s.ID)
	assert.Equal(t, "Hunan Nutramax Inc.", s.CompanyName, "stored casing wins")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertIfAbsent_RejectsEmptyIdentity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	reg := NewPostgresRegistry(mock)

	cand := testCandidate()
	cand.CompanyName = "   "
	_, _, err = reg.UpsertIfAbsent(context.Background(), cand)
	assert.Error(t, err)

	cand = testCandidate()
	cand.Country = ""
	_, _, err = reg.UpsertIfAbsent(context.Background(), cand)
	assert.Error(t, err)

	// No queries should have been issued.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM suppliers WHERE id").
		WithArgs("missing").
		WillReturnRows(supplierRows())

	reg := NewPostgresRegistry(mock)
	_, err = reg.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByCountry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT country, COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"country", "count"}).
			AddRow("china", 4).
			AddRow("india", 2))

	reg := NewPostgresRegistry(mock)
	counts, err := reg.CountByCountry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"china": 4, "india": 2}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
