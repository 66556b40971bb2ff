// SPDX-License-Identifier: GPL-2.0-or-later

package world

// Player is the character controlled by the keyboard and the listener of
// all sounds.
type Player struct {
	Character
}
