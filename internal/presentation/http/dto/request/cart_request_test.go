package request

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  decimal.Decimal
	}{
		{"number", `3.5`, decimal.RequireFromString("3.5")},
		{"integer", `42`, decimal.NewFromInt(42)},
		{"negative", `-7`, decimal.NewFromInt(-7)},
		{"numeric string", `"12.25"`, decimal.RequireFromString("12.25")},
		{"empty string becomes zero", `""`, decimal.Zero},
		{"letters become zero", `"abc"`, decimal.Zero},
		{"null becomes zero", `null`, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a FlexAmount
			require.NoError(t, json.Unmarshal([]byte(tt.input), &a))
			assert.True(t, a.Value().Equal(tt.want), "got %s, want %s", a.Value(), tt.want)
		})
	}
}

func TestUpdateCartItemRequest_AbsentFieldsStayNil(t *testing.T) {
	var req UpdateCartItemRequest
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":"3"}`), &req))

	require.NotNil(t, req.Quantity)
	assert.True(t, req.Quantity.Value().Equal(decimal.NewFromInt(3)))
	assert.Nil(t, req.UnitPrice)
	assert.Nil(t, req.DiscountPercent)
	assert.Nil(t, req.DiscountPerUnit)
}

func TestUpdateCartItemRequest_MalformedValueCoercedNotRejected(t *testing.T) {
	var req UpdateCartItemRequest
	require.NoError(t, json.Unmarshal([]byte(`{"unit_price":"not a number"}`), &req))

	require.NotNil(t, req.UnitPrice)
	assert.True(t, req.UnitPrice.Value().IsZero())
}
