package domain

import (
	"fmt"
	"math/bits"
	"strings"
)

// Candidates is the set of digits still possible for a cell, one bit per
// digit (bit 1 = digit 1 ... bit 9 = digit 9). The zero value is the empty
// set, which marks a contradiction.
type Candidates uint16

// AllCandidates has every digit 1-9 set.
const AllCandidates Candidates = 0x3fe

// CandidateOf returns the singleton set {d}.
func CandidateOf(d uint8) Candidates { return 1 << d }

func (c Candidates) Has(d uint8) bool { return c&(1<<d) != 0 }

// Without returns c with digit d removed.
func (c Candidates) Without(d uint8) Candidates { return c &^ (1 << d) }

func (c Candidates) Count() int { return bits.OnesCount16(uint16(c)) }

// Single reports the digit if c holds exactly one.
func (c Candidates) Single() (uint8, bool) {
	if c != 0 && c&(c-1) == 0 {
		return uint8(bits.TrailingZeros16(uint16(c))), true
	}
	return 0, false
}

// Digits lists the member digits in increasing order.
func (c Candidates) Digits() []uint8 {
	out := make([]uint8, 0, c.Count())
	for d := uint8(1); d <= 9; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String renders the set as a digit string, e.g. "47" for {4,7}.
func (c Candidates) String() string {
	var sb strings.Builder
	for d := uint8(1); d <= 9; d++ {
		if c.Has(d) {
			sb.WriteByte('0' + d)
		}
	}
	return sb.String()
}

// ParseCandidates is the inverse of String.
func ParseCandidates(s string) (Candidates, error) {
	var c Candidates
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '1' || ch > '9' {
			return 0, fmt.Errorf("invalid candidate digit %q", ch)
		}
		c |= CandidateOf(ch - '0')
	}
	return c, nil
}
