package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/splitcalc/settlement-calculator/pkg/money"
)

func TestExpenseTotalCents(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		quantity int
		want     money.Cents
	}{
		{"single unit", "12.50", 1, 1250},
		{"quantity multiplies", "3.335", 3, 1001},
		{"half cent rounds up", "0.125", 1, 13},
		{"zero quantity counts as one", "4.00", 0, 400},
		{"negative quantity counts as one", "4.00", -2, 400},
		{"negative amount is zero", "-10", 2, 0},
		{"zero amount", "0", 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Expense{Amount: decimal.RequireFromString(tt.amount), Quantity: tt.quantity}
			assert.Equal(t, tt.want, e.TotalCents())
		})
	}
}

func TestNewPayerAllocation(t *testing.T) {
	t.Run("no entries", func(t *testing.T) {
		assert.Nil(t, NewPayerAllocation(nil))
	})

	t.Run("blank amounts split evenly", func(t *testing.T) {
		got := NewPayerAllocation([]PayerEntry{{Person: "b"}, {Person: "a"}, {Person: "b"}})
		assert.Equal(t, EvenlyAmong{People: []PersonID{"b", "a"}}, got)
	})

	t.Run("typed amounts are explicit", func(t *testing.T) {
		got := NewPayerAllocation([]PayerEntry{
			{Person: "a", Amount: decimal.RequireFromString("60.004")},
			{Person: "b"},
		})
		explicit, ok := got.(Explicit)
		assert.True(t, ok)
		assert.Equal(t, money.Cents(6000), explicit.Amounts["a"])
		assert.Equal(t, money.Cents(0), explicit.Amounts["b"])
		assert.Equal(t, money.Cents(6000), explicit.Total())
		assert.Equal(t, []PersonID{"a", "b"}, explicit.Payers())
	})

	t.Run("negative amounts clamp to zero", func(t *testing.T) {
		got := NewPayerAllocation([]PayerEntry{{Person: "a", Amount: decimal.NewFromInt(-5)}})
		assert.Equal(t, EvenlyAmong{People: []PersonID{"a"}}, got)
	})
}

func TestPersonLabel(t *testing.T) {
	assert.Equal(t, "Ann", Person{ID: "1", Name: "Ann"}.Label())
	assert.Equal(t, "1", Person{ID: "1"}.Label())
}
