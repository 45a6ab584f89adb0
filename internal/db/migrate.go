package db

import (
	"context"

	"github.com/rotisserie/eris"
)

const schema = `
CREATE TABLE IF NOT EXISTS suppliers (
	id                  TEXT PRIMARY KEY,
	company_name        TEXT NOT NULL,
	email               TEXT NOT NULL DEFAULT '',
	country             TEXT NOT NULL,
	product_category    TEXT NOT NULL DEFAULT '',
	annual_revenue      BIGINT,
	employee_count      INTEGER,
	size_class          TEXT NOT NULL,
	potential_value     BIGINT NOT NULL DEFAULT 0,
	success_probability INTEGER NOT NULL DEFAULT 0,
	verification_status TEXT NOT NULL DEFAULT 'unverified',
	data_source         TEXT NOT NULL DEFAULT 'automated_discovery',
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_suppliers_identity
	ON suppliers(lower(company_name), country);
CREATE INDEX IF NOT EXISTS idx_suppliers_country ON suppliers(country);
CREATE INDEX IF NOT EXISTS idx_suppliers_category ON suppliers(product_category);

CREATE TABLE IF NOT EXISTS campaigns (
	id                  TEXT PRIMARY KEY,
	supplier_id         TEXT NOT NULL REFERENCES suppliers(id),
	status              TEXT NOT NULL DEFAULT 'active',
	current_stage       INTEGER NOT NULL DEFAULT 1,
	stages              JSONB NOT NULL,
	next_trigger_at     TIMESTAMPTZ,
	total_sent          INTEGER NOT NULL DEFAULT 0,
	cultural_strategy   JSONB NOT NULL,
	deal_value_estimate BIGINT NOT NULL DEFAULT 0,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_campaigns_supplier ON campaigns(supplier_id);
CREATE INDEX IF NOT EXISTS idx_campaigns_due ON campaigns(next_trigger_at) WHERE status = 'active';
CREATE UNIQUE INDEX IF NOT EXISTS idx_campaigns_one_active
	ON campaigns(supplier_id) WHERE status = 'active';

CREATE TABLE IF NOT EXISTS outreach_runs (
	id           BIGSERIAL PRIMARY KEY,
	kind         TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'running',
	started_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	completed_at TIMESTAMPTZ,
	counters     JSONB,
	error        TEXT
);

CREATE INDEX IF NOT EXISTS idx_outreach_runs_started ON outreach_runs(started_at DESC);
`

// Migrate creates the outreach tables if they do not exist.
func Migrate(ctx context.Context, pool Pool) error {
	_, err := pool.Exec(ctx, schema)
	return eris.Wrap(err, "db: migrate")
}
