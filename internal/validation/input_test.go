package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    decimal.Decimal
		wantErr error
	}{
		{name: "integer", input: "500", want: decimal.NewFromInt(500)},
		{name: "one decimal", input: "12.5", want: decimal.RequireFromString("12.5")},
		{name: "one cent", input: "0.01", want: decimal.RequireFromString("0.01")},
		{name: "surrounding spaces", input: "  20 ", want: decimal.NewFromInt(20)},
		{name: "trailing zeros", input: "1.5000", want: decimal.RequireFromString("1.5")},
		{name: "letters", input: "abc", wantErr: ErrAmountNotNumber},
		{name: "empty", input: "", wantErr: ErrAmountNotNumber},
		{name: "zero", input: "0", wantErr: ErrAmountNotPositive},
		{name: "negative", input: "-5", wantErr: ErrAmountNotPositive},
		{name: "sub-cent", input: "1.234", wantErr: ErrAmountPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			assert.GreaterOrEqual(t, got.Exponent(), int32(-2))
		})
	}
}

func TestParsePIN(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "four digits", input: "4321", want: "4321"},
		{name: "leading zeros", input: "0042", want: "0042"},
		{name: "spaces trimmed", input: " 1234\n", want: "1234"},
		{name: "letters", input: "12ab", wantErr: ErrPINNotNumeric},
		{name: "sign", input: "-123", wantErr: ErrPINNotNumeric},
		{name: "empty", input: "", wantErr: ErrPINNotNumeric},
		{name: "too short", input: "123", wantErr: ErrPINLength},
		{name: "too long", input: "12345", wantErr: ErrPINLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePIN(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("usd"))
	assert.NoError(t, ValidateCurrency(""))
	assert.Error(t, ValidateCurrency("US"))
	assert.Error(t, ValidateCurrency("U5D"))
}
