// SPDX-License-Identifier: GPL-2.0-or-later

package tags

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		comments string
		want     Emittance
		ok       bool
	}{
		{"<s_emittance: bgs/Drips>", Emittance{"bgs/Drips", 5, 90, 100}, true},
		{"<S_EMITTANCE:bgs/Wind  >\n<s_e_radius: 8.5>\n<s_e_volume: 75>\n<s_e_pitch: 95>",
			Emittance{"bgs/Wind", 8.5, 75, 95}, true},
		{"a door\n<s_e_radius: 3><s_emittance: se/Creak>", Emittance{"se/Creak", 3, 90, 100}, true},
		// malformed values keep the default
		{"<s_emittance: bgs/Drips>\n<s_e_volume: loud>\n<s_e_radius: -2>", Emittance{"bgs/Drips", 5, 90, 100}, true},
		{"<s_e_radius: 3>", Emittance{}, false},
		{"<s_emittance:   >", Emittance{}, false},
		{"", Emittance{}, false},
	}
	for _, tc := range tests {
		got, ok := Parse(tc.comments)
		if ok != tc.ok {
			t.Errorf("Parse(%q) ok = %v want %v", tc.comments, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("Parse(%q) = %+v want %+v", tc.comments, got, tc.want)
		}
	}
}

func TestJoin(t *testing.T) {
	got := Join([]string{"<s_emittance: bgs/Drips>", "<s_e_pitch: 120>"})
	if got != "<s_emittance: bgs/Drips>\n<s_e_pitch: 120>\n" {
		t.Errorf("Join = %q", got)
	}
	e, ok := Parse(got)
	if !ok || e.Pitch != 120 {
		t.Errorf("Parse(Join) = %+v,%v", e, ok)
	}
}
