// SPDX-License-Identifier: MIT

// Package polarization catalogues the correlation and Stokes products the
// converter understands and classifies them by basis.
//
// Numeric codes follow the casacore Stokes::StokesTypes enumeration so that
// integer lists coming from a measurement set can be used as-is:
//
//	I=1 Q=2 U=3 V=4 | RR=5 RL=6 LR=7 LL=8 | XX=9 XY=10 YX=11 YY=12
//
// A List is ordered: position k of the list is slot k of every visibility
// vector built from it.
package polarization

import (
	"errors"
	"fmt"
	"strings"
)

// Type is one polarization product.
type Type int

// casacore Stokes::StokesTypes codes.
const (
	Undefined Type = 0
	I         Type = 1
	Q         Type = 2
	U         Type = 3
	V         Type = 4
	RR        Type = 5
	RL        Type = 6
	LR        Type = 7
	LL        Type = 8
	XX        Type = 9
	XY        Type = 10
	YX        Type = 11
	YY        Type = 12
)

// MaxListLen is the largest list any physical basis needs.
const MaxListLen = 4

// Basis groups types that are related by a fixed 4×4 linear map.
type Basis int

const (
	// Invalid is returned for codes outside the catalogue.
	Invalid Basis = iota
	// Stokes is (I, Q, U, V).
	Stokes
	// Circular is (RR, RL, LR, LL).
	Circular
	// Linear is (XX, XY, YX, YY).
	Linear
)

var (
	// ErrUnknownType is returned for codes or names outside the catalogue.
	ErrUnknownType = errors.New("polarization: unknown type")

	// ErrEmptyList is returned for a list with no entries.
	ErrEmptyList = errors.New("polarization: empty type list")

	// ErrTooManyTypes is returned for lists longer than MaxListLen.
	ErrTooManyTypes = errors.New("polarization: too many types")

	// ErrDuplicateType is returned when a list names the same product twice.
	ErrDuplicateType = errors.New("polarization: duplicate type")
)

var names = [...]string{
	Undefined: "Undefined",
	I:         "I",
	Q:         "Q",
	U:         "U",
	V:         "V",
	RR:        "RR",
	RL:        "RL",
	LR:        "LR",
	LL:        "LL",
	XX:        "XX",
	XY:        "XY",
	YX:        "YX",
	YY:        "YY",
}

// Valid reports whether t is one of the twelve catalogued products.
func (t Type) Valid() bool { return t >= I && t <= YY }

// Basis classifies t.
func (t Type) Basis() Basis {
	switch {
	case t >= I && t <= V:
		return Stokes
	case t >= RR && t <= LL:
		return Circular
	case t >= XX && t <= YY:
		return Linear
	default:
		return Invalid
	}
}

// Index is the position of t inside its own basis (0..3), or -1 when invalid.
func (t Type) Index() int {
	switch t.Basis() {
	case Stokes:
		return int(t - I)
	case Circular:
		return int(t - RR)
	case Linear:
		return int(t - XX)
	default:
		return -1
	}
}

// Code returns the casacore integer code.
func (t Type) Code() int { return int(t) }

func (t Type) String() string {
	if t.Valid() {
		return names[t]
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

func (b Basis) String() string {
	switch b {
	case Stokes:
		return "stokes"
	case Circular:
		return "circular"
	case Linear:
		return "linear"
	default:
		return "invalid"
	}
}

// Types returns the four members of b in canonical order, or nil for Invalid.
func (b Basis) Types() List {
	switch b {
	case Stokes:
		return List{I, Q, U, V}
	case Circular:
		return List{RR, RL, LR, LL}
	case Linear:
		return List{XX, XY, YX, YY}
	default:
		return nil
	}
}

// FromCode converts a casacore code.
func FromCode(code int) (Type, error) {
	t := Type(code)
	if !t.Valid() {
		return Undefined, fmt.Errorf("code %d: %w", code, ErrUnknownType)
	}

	return t, nil
}

// Parse reads a case-insensitive product name such as "rl" or "I".
func Parse(s string) (Type, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for t := I; t <= YY; t++ {
		if names[t] == name {
			return t, nil
		}
	}

	return Undefined, fmt.Errorf("%q: %w", s, ErrUnknownType)
}
