// SPDX-License-Identifier: GPL-2.0-or-later

package math

type Float interface {
	float64 | float32
}

// Lerp moves start towards end by the fraction amount.
// amount 1 returns end, amount 0 returns start.
func Lerp[K Float](start, end, amount K) K {
	return start + (end-start)*amount
}
