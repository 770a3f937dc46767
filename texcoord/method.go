// SPDX-License-Identifier: MIT

package texcoord

import (
	"fmt"
	"strings"
)

// Method selects how coordinates are produced.
type Method uint8

const (
	// None copies two position components; no solve.
	None Method = iota
	// LeastSquaresConformal pins the reference pair and solves LSCM.
	LeastSquaresConformal
	// SpectralConformal solves SCM and normalises on the reference pair.
	SpectralConformal
)

// Methods lists every method in declaration order.
var Methods = []Method{None, LeastSquaresConformal, SpectralConformal}

func (m Method) String() string {
	switch m {
	case None:
		return "None"
	case LeastSquaresConformal:
		return "LeastSquaresConformal"
	case SpectralConformal:
		return "SpectralConformal"
	default:
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
}

// ParseMethod accepts a method name or its short form (none, lscm, scm),
// case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None, nil
	case "lscm", "leastsquaresconformal":
		return LeastSquaresConformal, nil
	case "scm", "spectralconformal":
		return SpectralConformal, nil
	}

	return None, fmt.Errorf("%s: %q: %w", opParse, s, ErrUnknownMethod)
}

// Status is the outcome reported with every Result.
type Status uint8

const (
	// StatusOK: Coords holds a complete layout.
	StatusOK Status = iota
	// StatusSolveFailed: no coordinates were produced.
	StatusSolveFailed
)

func (s Status) String() string {
	if s == StatusOK {
		return "Ok"
	}

	return "SolveFailed"
}
