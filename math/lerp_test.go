// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

func TestLerpEnds(t *testing.T) {
	if v := Lerp[float32](2, 6, 0); v != 2 {
		t.Errorf("Lerp(2,6,0) = %v want 2", v)
	}
	if v := Lerp[float32](2, 6, 1); v != 6 {
		t.Errorf("Lerp(2,6,1) = %v want 6", v)
	}
}

func TestLerpHalf(t *testing.T) {
	if v := Lerp(2.0, 6.0, 0.5); v != 4 {
		t.Errorf("Lerp(2,6,0.5) = %v want 4", v)
	}
	if v := Lerp(6.0, 2.0, 0.25); v != 5 {
		t.Errorf("Lerp(6,2,0.25) = %v want 5", v)
	}
}
