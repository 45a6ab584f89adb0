package supplier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/outreach-cli/internal/model"
)

func TestSizeClassFor(t *testing.T) {
	tests := []struct {
		name    string
		revenue int64
		want    model.SizeClass
	}{
		{"zero revenue", 0, model.SizeStartup},
		{"below medium", 9_999_999, model.SizeStartup},
		{"medium boundary", 10_000_000, model.SizeMedium},
		{"enterprise boundary", 100_000_000, model.SizeEnterprise},
		{"below multinational", 999_999_999, model.SizeEnterprise},
		{"multinational boundary", 1_000_000_000, model.SizeMultinational},
		{"negative", -5, model.SizeStartup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeClassFor(tt.revenue))
		})
	}
}

func TestPotentialValueFor(t *testing.T) {
	assert.Equal(t, int64(4_500_000), PotentialValueFor(45_000_000))
	assert.Equal(t, int64(0), PotentialValueFor(0))
	assert.Equal(t, int64(0), PotentialValueFor(-100))
	assert.Equal(t, int64(1), PotentialValueFor(19)) // floored
}

func TestSuccessProbabilityFor(t *testing.T) {
	tests := []struct {
		name      string
		revenue   int64
		employees int
		verified  bool
		want      int
	}{
		{"base", 0, 0, false, 65},
		{"revenue bonus", 200_000_000, 0, false, 80},
		{"revenue exactly at threshold gets no bonus", 100_000_000, 0, false, 65},
		{"employee bonus", 0, 1500, false, 75},
		{"verified bonus", 0, 0, true, 75},
		{"all bonuses capped at 95", 200_000_000, 1500, true, 95},
		{"revenue and employees", 200_000_000, 1500, false, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuccessProbabilityFor(tt.revenue, tt.employees, tt.verified))
		})
	}
}

func TestSuccessProbabilityFor_Deterministic(t *testing.T) {
	first := SuccessProbabilityFor(45_000_000, 320, false)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SuccessProbabilityFor(45_000_000, 320, false))
	}
}
