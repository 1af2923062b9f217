// SPDX-License-Identifier: MIT

package smoother

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownKind is returned by ParseKind and New for unrecognised variants.
var ErrUnknownKind = errors.New("smoother: unknown kind")

// Kind selects a smoother variant at construction time.
//
//   - NaturalOrder:     GaussSeidel{}
//   - RedBlackOrder:    RedBlack{}
//   - ParallelRedBlack: RedBlack{Parallel: true}
type Kind int

const (
	// NaturalOrder is lexicographic Gauss-Seidel.
	NaturalOrder Kind = iota

	// RedBlackOrder is two-colour Gauss-Seidel, sequential passes.
	RedBlackOrder

	// ParallelRedBlack is two-colour Gauss-Seidel with each pass split across
	// row ranges.
	ParallelRedBlack
)

var kindNames = map[Kind]string{
	NaturalOrder:     "gauss-seidel",
	RedBlackOrder:    "red-black",
	ParallelRedBlack: "red-black-parallel",
}

// String returns the flag spelling of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "unknown"
}

// ParseKind maps a flag spelling (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == want {
			return k, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownKind, "ParseKind(%q)", s)
}

// New returns the smoother for kind.
func New(kind Kind) (Smoother, error) {
	switch kind {
	case NaturalOrder:
		return GaussSeidel{}, nil
	case RedBlackOrder:
		return RedBlack{}, nil
	case ParallelRedBlack:
		return RedBlack{Parallel: true}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "New(%d)", int(kind))
	}
}
