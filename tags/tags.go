// SPDX-License-Identifier: GPL-2.0-or-later

// Package tags reads sound emittance settings from event comments like
//
//	<s_emittance: bgs/Drips>
//	<s_e_radius: 8.5>
//	<s_e_volume: 75>
//	<s_e_pitch: 95>
//
// Tag names are case insensitive. Malformed values fall back to the
// defaults.
package tags

import (
	"regexp"
	"strconv"
	"strings"

	"emittance/snd"
)

var (
	fileTag   = regexp.MustCompile(`(?i)<s_emittance:\s*([^>]+)>`)
	radiusTag = regexp.MustCompile(`(?i)<s_e_radius:\s*(\d+(?:\.\d+)?)>`)
	volumeTag = regexp.MustCompile(`(?i)<s_e_volume:\s*(\d+)>`)
	pitchTag  = regexp.MustCompile(`(?i)<s_e_pitch:\s*(\d+)>`)
)

type Emittance struct {
	File   string
	Radius float32
	Volume int
	Pitch  int
}

func match(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Parse returns the emittance configured by the comments. ok is false if
// there is no <s_emittance:> tag, the other tags are ignored then.
func Parse(comments string) (e Emittance, ok bool) {
	f, ok := match(fileTag, comments)
	if !ok {
		return e, false
	}
	e = Emittance{
		File:   strings.TrimSpace(f),
		Radius: snd.DefaultRadius,
		Volume: snd.DefaultVolume,
		Pitch:  snd.DefaultPitch,
	}
	if e.File == "" {
		return e, false
	}
	if s, ok := match(radiusTag, comments); ok {
		if r, err := strconv.ParseFloat(s, 32); err == nil {
			e.Radius = float32(r)
		}
	}
	if s, ok := match(volumeTag, comments); ok {
		if v, err := strconv.Atoi(s); err == nil {
			e.Volume = v
		}
	}
	if s, ok := match(pitchTag, comments); ok {
		if p, err := strconv.Atoi(s); err == nil {
			e.Pitch = p
		}
	}
	return e, true
}

// Join concatenates comment lines the way Parse expects them, tags may
// not span lines.
func Join(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
