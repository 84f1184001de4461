// SPDX-License-Identifier: MIT

package polarization

import (
	"fmt"
	"strings"
)

// List is an ordered sequence of products; order is slot order.
type List []Type

// Validate checks that l is non-empty, at most MaxListLen long, and holds
// distinct catalogued types. Errors wrap the package sentinels.
func (l List) Validate() error {
	if len(l) == 0 {
		return ErrEmptyList
	}
	if len(l) > MaxListLen {
		return fmt.Errorf("%d entries: %w", len(l), ErrTooManyTypes)
	}
	for k, t := range l {
		if !t.Valid() {
			return fmt.Errorf("slot %d: %s: %w", k, t, ErrUnknownType)
		}
		for _, prev := range l[:k] {
			if prev == t {
				return fmt.Errorf("slot %d: %s: %w", k, t, ErrDuplicateType)
			}
		}
	}

	return nil
}

// Slot returns the position of t in l, or -1.
func (l List) Slot(t Type) int {
	for k, x := range l {
		if x == t {
			return k
		}
	}

	return -1
}

// Codes returns the casacore codes in slot order.
func (l List) Codes() []int {
	out := make([]int, len(l))
	for k, t := range l {
		out[k] = t.Code()
	}

	return out
}

// String joins names with commas, the format ParseList accepts.
func (l List) String() string {
	parts := make([]string, len(l))
	for k, t := range l {
		parts[k] = t.String()
	}

	return strings.Join(parts, ",")
}

// FromCodes converts casacore codes and validates the resulting list.
func FromCodes(codes []int) (List, error) {
	l := make(List, len(codes))
	for k, c := range codes {
		l[k] = Type(c)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}

// ParseList reads a comma separated list such as "RR,RL,LR,LL" and validates it.
func ParseList(s string) (List, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyList
	}
	fields := strings.Split(s, ",")
	l := make(List, 0, len(fields))
	for _, f := range fields {
		t, err := Parse(f)
		if err != nil {
			return nil, err
		}
		l = append(l, t)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}
