// Package supplier implements the canonical registry of candidate business
// contacts, with case-insensitive identity dedup on (company_name, country).
package supplier

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"

	"github.com/sells-group/outreach-cli/internal/db"
	"github.com/sells-group/outreach-cli/internal/model"
)

// Candidate is an unpersisted supplier sighting from a discovery source.
type Candidate struct {
	CompanyName     string `yaml:"company_name" json:"company_name"`
	Email           string `yaml:"email" json:"email"`
	Country         string `yaml:"country" json:"country"`
	ProductCategory string `yaml:"product_category" json:"product_category"`
	AnnualRevenue   *int64 `yaml:"annual_revenue" json:"annual_revenue,omitempty"`
	EmployeeCount   *int   `yaml:"employee_count" json:"employee_count,omitempty"`
	DataSource      string `yaml:"data_source" json:"data_source"`
}

// Registry defines persistence operations for suppliers.
type Registry interface {
	UpsertIfAbsent(ctx context.Context, cand Candidate) (*model.Supplier, bool, error)
	FindByID(ctx context.Context, id string) (*model.Supplier, error)
	Count(ctx context.Context) (int, error)
	CountByCountry(ctx context.Context) (map[string]int, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
}

// PostgresRegistry implements Registry using pgx.
type PostgresRegistry struct {
	pool db.Pool
}

// NewPostgresRegistry creates a new PostgresRegistry.
func NewPostgresRegistry(pool db.Pool) *PostgresRegistry {
	return &PostgresRegistry{pool: pool}
}

const supplierColumns = `id, company_name, email, country, product_category,
	annual_revenue, employee_count, size_class, potential_value,
	success_probability, verification_status, data_source, created_at`

// UpsertIfAbsent inserts the candidate if no supplier exists for its
// (company_name, country) identity, or returns the existing record
// unchanged. Re-discovery is the common case, not an error. The insert is a
// single statement, so a failed call leaves no partial row behind.
func (r *PostgresRegistry) UpsertIfAbsent(ctx context.Context, cand Candidate) (*model.Supplier, bool, error) {
	name := strings.TrimSpace(cand.CompanyName)
	country := strings.ToLower(strings.TrimSpace(cand.Country))
	if name == "" {
		return nil, false, eris.New("supplier: candidate company name is empty")
	}
	if country == "" {
		return nil, false, eris.New("supplier: candidate country is empty")
	}

	revenue := int64(0)
	if cand.AnnualRevenue != nil {
		revenue = *cand.AnnualRevenue
	}
	employees := 0
	if cand.EmployeeCount != nil {
		employees = *cand.EmployeeCount
	}
	dataSource := cand.DataSource
	if dataSource == "" {
		dataSource = "automated_discovery"
	}

	s := &model.Supplier{
		ID:                 uuid.New().String(),
		CompanyName:        name,
		Email:              cand.Email,
		Country:            country,
		ProductCategory:    cand.ProductCategory,
		AnnualRevenue:      cand.AnnualRevenue,
		EmployeeCount:      cand.EmployeeCount,
		SizeClass:          SizeClassFor(revenue),
		PotentialValue:     PotentialValueFor(revenue),
		SuccessProbability: SuccessProbabilityFor(revenue, employees, false),
		VerificationStatus: model.VerificationUnverified,
		DataSource:         dataSource,
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO suppliers (id, company_name, email, country, product_category,
			annual_revenue, employee_count, size_class, potential_value,
			success_probability, verification_status, data_source)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (lower(company_name), country) DO NOTHING
		 RETURNING created_at`,
		s.ID, s.CompanyName, s.Email, s.Country, s.ProductCategory,
		s.AnnualRevenue, s.EmployeeCount, string(s.SizeClass), s.PotentialValue,
		s.SuccessProbability, string(s.VerificationStatus), s.DataSource,
	).Scan(&s.CreatedAt)
	if err == nil {
		return s, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, eris.Wrapf(err, "supplier: insert %s/%s", name, country)
	}

	// Conflict: the identity already exists, return the stored record.
	existing, err := r.findByIdentity(ctx, name, country)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// FindByID returns the supplier with the given id, or model.ErrNotFound.
func (r *PostgresRegistry) FindByID(ctx context.Context, id string) (*model.Supplier, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
	s, err := scanSupplier(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Wrapf(model.ErrNotFound, "supplier %s", id)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "supplier: find %s", id)
	}
	return s, nil
}

func (r *PostgresRegistry) findByIdentity(ctx context.Context, name, country string) (*model.Supplier, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM suppliers
		 WHERE lower(company_name) = lower($1) AND country = $2`,
		name, country)
	s, err := scanSupplier(row)
	if err != nil {
		return nil, eris.Wrapf(err, "supplier: find %s/%s", name, country)
	}
	return s, nil
}

// Count returns the total number of suppliers.
func (r *PostgresRegistry) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&n)
	if err != nil {
		return 0, eris.Wrap(err, "supplier: count")
	}
	return n, nil
}

// CountByCountry returns supplier counts grouped by country.
func (r *PostgresRegistry) CountByCountry(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, "country")
}

// CountByCategory returns supplier counts grouped by product category.
func (r *PostgresRegistry) CountByCategory(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, "product_category")
}

func (r *PostgresRegistry) countBy(ctx context.Context, column string) (map[string]int, error) {
	// column is one of two fixed identifiers, never user input.
	rows, err := r.pool.Query(ctx,
		`SELECT `+column+`, COUNT(*) FROM suppliers GROUP BY `+column)
	if err != nil {
		return nil, eris.Wrapf(err, "supplier: count by %s", column)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, eris.Wrapf(err, "supplier: scan count by %s", column)
		}
		counts[key] = n
	}
	return counts, rows.Err()
}

func scanSupplier(row pgx.Row) (*model.Supplier, error) {
	var s model.Supplier
	var sizeClass, verification string
	var createdAt time.Time
	err := row.Scan(
		&s.ID, &s.CompanyName, &s.Email, &s.Country, &s.ProductCategory,
		&s.AnnualRevenue, &s.EmployeeCount, &sizeClass, &s.PotentialValue,
		&s.SuccessProbability, &verification, &s.DataSource, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	s.SizeClass = model.SizeClass(sizeClass)
	s.VerificationStatus = model.VerificationStatus(verification)
	s.CreatedAt = createdAt
	return &s, nil
}
