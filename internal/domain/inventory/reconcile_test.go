package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polyplus/inventory-api/internal/domain/inventory"
)

func TestReconcile_DefaultSplit(t *testing.T) {
	// Fresh product: 75% goes to the back, remainder to the floor.
	s := inventory.Reconcile(10, 0, 0)
	assert.Equal(t, inventory.Split{Floor: 3, Back: 7}, s)

	s = inventory.Reconcile(4, 0, 0)
	assert.Equal(t, inventory.Split{Floor: 1, Back: 3}, s)

	s = inventory.Reconcile(1, 0, 0)
	assert.Equal(t, inventory.Split{Floor: 1, Back: 0}, s)
}

func TestReconcile_ZeroTotalZeroesBoth(t *testing.T) {
	assert.Equal(t, inventory.Split{}, inventory.Reconcile(0, 5, 5))
	assert.Equal(t, inventory.Split{}, inventory.Reconcile(-3, 2, 8))
}

func TestReconcile_PreservesRatio(t *testing.T) {
	// 5:15 under a new total of 40 keeps the 1:3 ratio.
	s := inventory.Reconcile(40, 5, 15)
	assert.Equal(t, inventory.Split{Floor: 10, Back: 30}, s)

	// Rounds back to the nearest unit; floor absorbs the remainder.
	s = inventory.Reconcile(10, 1, 2)
	assert.Equal(t, inventory.Split{Floor: 3, Back: 7}, s)
	assert.Equal(t, 10, s.Floor+s.Back)
}

func TestReconcile_StaleCountsStayConsistent(t *testing.T) {
	for _, tc := range []struct{ total, floor, back int }{
		{7, 3, 9},
		{100, 1, 0},
		{1, 50, 50},
		{12, -4, 6},
	} {
		s := inventory.Reconcile(tc.total, tc.floor, tc.back)
		assert.Equal(t, tc.total, s.Floor+s.Back, "floor+back must equal total for %+v", tc)
		assert.GreaterOrEqual(t, s.Floor, 0)
		assert.GreaterOrEqual(t, s.Back, 0)
	}
}

func TestReconcileBack_ClampsToTotal(t *testing.T) {
	// Editing back above the total clamps and empties the floor.
	s := inventory.ReconcileBack(20, 25)
	assert.Equal(t, inventory.Split{Floor: 0, Back: 20}, s)

	s = inventory.ReconcileBack(20, -2)
	assert.Equal(t, inventory.Split{Floor: 20, Back: 0}, s)

	s = inventory.ReconcileBack(20, 8)
	assert.Equal(t, inventory.Split{Floor: 12, Back: 8}, s)
}

func TestReconcileFloor_ClampsToTotal(t *testing.T) {
	s := inventory.ReconcileFloor(10, 99)
	assert.Equal(t, inventory.Split{Floor: 10, Back: 0}, s)

	s = inventory.ReconcileFloor(10, 4)
	assert.Equal(t, inventory.Split{Floor: 4, Back: 6}, s)

	assert.Equal(t, inventory.Split{}, inventory.ReconcileFloor(0, 4))
}

func TestReconcile_Idempotent(t *testing.T) {
	first := inventory.Reconcile(33, 10, 20)
	second := inventory.Reconcile(33, first.Floor, first.Back)
	assert.Equal(t, first, second)
}
