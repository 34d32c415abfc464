// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"strings"
)

// Party identifies one of the three contestants. Declaration order is the
// fixed precedence order used for every tie-break in the package.
type Party int

const (
	Coalition Party = iota
	Labor
	Greens
)

// Parties lists all parties in precedence order.
var Parties = [3]Party{Coalition, Labor, Greens}

// String returns the party's display name.
func (p Party) String() string {
	switch p {
	case Coalition:
		return "Coalition"
	case Labor:
		return "Labor"
	case Greens:
		return "Greens"
	}
	return fmt.Sprintf("Party(%d)", int(p))
}

// Class returns the party's single-letter graph class, used to colour dots.
func (p Party) Class() string {
	switch p {
	case Coalition:
		return "b"
	case Labor:
		return "r"
	case Greens:
		return "g"
	}
	return "t"
}

// Mode selects the preferential-voting system being simulated.
type Mode int

const (
	// Compulsory preferential: every ballot reaches one of the two
	// survivors, so each party's outgoing flow ratios sum to 1.
	Compulsory Mode = iota
	// Optional preferential: ballots may exhaust, so outgoing flow ratios
	// may sum to less than 1.
	Optional
)

// String returns the mode's lowercase name.
func (m Mode) String() string {
	if m == Optional {
		return "optional"
	}
	return "compulsory"
}

// ParseMode reads a voting mode from request text. Accepted values are
// "compulsory"/"cpv" and "optional"/"opv", case-insensitive; the empty
// string selects compulsory.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compulsory", "cpv":
		return Compulsory, nil
	case "optional", "opv":
		return Optional, nil
	}
	return Compulsory, fmt.Errorf("unknown voting mode %q", s)
}
