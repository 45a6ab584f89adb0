// Package model holds the shared domain types for the outreach engine.
package model

import "time"

// VerificationStatus tracks whether a supplier contact has been verified.
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationVerified   VerificationStatus = "verified"
)

// SizeClass buckets suppliers by annual revenue.
type SizeClass string

const (
	SizeStartup       SizeClass = "startup"
	SizeMedium        SizeClass = "medium"
	SizeEnterprise    SizeClass = "enterprise"
	SizeMultinational SizeClass = "multinational"
)

// Supplier is a discovered candidate business contact. Identity is the
// (CompanyName, Country) pair; re-discovery of the same pair returns the
// existing record instead of inserting a duplicate.
type Supplier struct {
	ID                 string             `json:"id"`
	CompanyName        string             `json:"company_name"`
	Email              string             `json:"email"`
	Country            string             `json:"country"`
	ProductCategory    string             `json:"product_category"`
	AnnualRevenue      *int64             `json:"annual_revenue,omitempty"`
	EmployeeCount      *int               `json:"employee_count,omitempty"`
	SizeClass          SizeClass          `json:"size_class"`
	PotentialValue     int64              `json:"potential_value"`
	SuccessProbability int                `json:"success_probability"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	DataSource         string             `json:"data_source"`
	CreatedAt          time.Time          `json:"created_at"`
}

// RevenueOrZero returns the annual revenue, treating unknown as zero.
func (s *Supplier) RevenueOrZero() int64 {
	if s.AnnualRevenue == nil {
		return 0
	}
	return *s.AnnualRevenue
}
