package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Slug   string           `json:"slug" validate:"required,slug"`
	Amount decimal.Decimal  `json:"amount" validate:"dgt=0"`
	Price  *decimal.Decimal `json:"price,omitempty" validate:"omitempty,dgte=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	neg := decimal.RequireFromString("-0.01")
	zero := decimal.Zero

	tests := []struct {
		name       string
		input      sample
		wantFields []string
	}{
		{name: "valid", input: sample{Slug: "home-decor", Amount: decimal.RequireFromString("0.01"), Price: &zero}},
		{name: "nil price is skipped", input: sample{Slug: "a1", Amount: decimal.RequireFromString("5")}},
		{name: "zero amount", input: sample{Slug: "a", Amount: decimal.Zero}, wantFields: []string{"amount"}},
		{name: "negative price", input: sample{Slug: "a", Amount: decimal.NewFromInt(1), Price: &neg}, wantFields: []string{"price"}},
		{name: "bad slug", input: sample{Slug: "-Home_", Amount: decimal.NewFromInt(1)}, wantFields: []string{"slug"}},
		{name: "everything wrong", input: sample{Amount: decimal.NewFromInt(-3), Price: &neg}, wantFields: []string{"slug", "amount", "price"}},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)

			if len(tt.wantFields) == 0 {
				require.NoError(t, err)

				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			fields := make([]string, len(verr.Fields))
			for i, f := range verr.Fields {
				fields[i] = f.Field
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}
