package energy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voltly/voltly/internal/energy"
	"github.com/voltly/voltly/pkg/entity"
)

func TestComputeSavings(t *testing.T) {
	t.Run("earliest vs latest bill", func(t *testing.T) {
		got := energy.ComputeSavings([]entity.Bill{
			{Month: "2025-01", TotalValue: 145.50, ConsumptionKwh: 180},
			{Month: "2025-03", TotalValue: 120.00, ConsumptionKwh: 150},
		})
		assert.InDelta(t, 25.50, got.Money, 1e-9)
		assert.InDelta(t, 30.0, got.Energy, 1e-9)
	})
	t.Run("unsorted input", func(t *testing.T) {
		got := energy.ComputeSavings([]entity.Bill{
			{Month: "2025-03", TotalValue: 120, ConsumptionKwh: 150},
			{Month: "2024-11", TotalValue: 200, ConsumptionKwh: 210},
			{Month: "2025-01", TotalValue: 145.50, ConsumptionKwh: 180},
		})
		assert.InDelta(t, 80.0, got.Money, 1e-9)
		assert.InDelta(t, 60.0, got.Energy, 1e-9)
	})
	t.Run("consumption went up: clamps to zero", func(t *testing.T) {
		got := energy.ComputeSavings([]entity.Bill{
			{Month: "2025-01", TotalValue: 100, ConsumptionKwh: 120},
			{Month: "2025-02", TotalValue: 130, ConsumptionKwh: 100},
		})
		assert.Zero(t, got.Money)
		assert.InDelta(t, 20.0, got.Energy, 1e-9)
	})
	t.Run("fewer than two bills", func(t *testing.T) {
		assert.Equal(t, entity.Savings{}, energy.ComputeSavings(nil))
		assert.Equal(t, entity.Savings{}, energy.ComputeSavings([]entity.Bill{
			{Month: "2025-01", TotalValue: 100, ConsumptionKwh: 90},
		}))
	})
	t.Run("does not mutate caller's slice order", func(t *testing.T) {
		bills := []entity.Bill{
			{Month: "2025-02", TotalValue: 90, ConsumptionKwh: 80},
			{Month: "2025-01", TotalValue: 100, ConsumptionKwh: 90},
		}
		energy.ComputeSavings(bills)
		assert.Equal(t, "2025-02", bills[0].Month)
	})
}
