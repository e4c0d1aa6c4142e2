// Package inventory holds pure domain calculations with no persistence or
// transport dependencies.
package inventory

import "math"

// Split is a consistent floor/back allocation: Floor + Back always equals the
// total it was computed for (both zero when the total is zero).
type Split struct {
	Floor int
	Back  int
}

// Reconcile recomputes the floor/back split after the total changed. The
// current floor/back may be stale or inconsistent with the new total.
//
//   - total <= 0 zeroes both.
//   - both currently zero: default allocation of 75% back-stock, 25% floor
//     (back = ⌊total·3/4⌋, floor takes the remainder).
//   - otherwise the existing floor:back ratio is preserved under the new
//     total, rounding back to the nearest unit.
//
// Deterministic and idempotent for the same inputs.
func Reconcile(total, floor, back int) Split {
	if total <= 0 {
		return Split{}
	}
	floor = clampNonNegative(floor)
	back = clampNonNegative(back)

	sum := floor + back
	if sum == 0 {
		b := total * 3 / 4
		return Split{Floor: total - b, Back: b}
	}
	b := int(math.Round(float64(back) / float64(sum) * float64(total)))
	return Split{Floor: total - b, Back: b}
}

// ReconcileBack applies a direct edit of the back-stock count: back is clamped
// to [0, total] and floor takes the complement.
func ReconcileBack(total, back int) Split {
	if total <= 0 {
		return Split{}
	}
	back = clamp(back, 0, total)
	return Split{Floor: total - back, Back: back}
}

// ReconcileFloor applies a direct edit of the floor count: floor is clamped to
// [0, total] and back takes the complement.
func ReconcileFloor(total, floor int) Split {
	if total <= 0 {
		return Split{}
	}
	floor = clamp(floor, 0, total)
	return Split{Floor: floor, Back: total - floor}
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
