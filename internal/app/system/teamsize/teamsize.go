// Package teamsize derives a numeric member ceiling from a team's
// preferred-size descriptor.
//
// Descriptors are free text entered at team creation: a plain number
// ("3"), a range ("4-5"), or an open-ended size ("6+"). The ceiling is
// whatever follows the last "-" with any "+" removed. Anything that does
// not parse as a number falls back to Fallback. These rules are load
// bearing for the join/listing capacity checks; do not "fix" them.
package teamsize

import "strings"

// Fallback is the capacity used when a descriptor does not parse.
const Fallback = 5

// Capacity returns the member ceiling for a preferred-size descriptor.
//
//	"4-5"  -> 5
//	"6+"   -> 6
//	"3"    -> 3
//	"2-10+" -> 10
//	"abc"  -> 5
//	""     -> 5
func Capacity(descriptor string) int {
	s := descriptor
	if i := strings.LastIndex(s, "-"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.ReplaceAll(s, "+", "")

	if s == "" {
		return Fallback
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return Fallback
		}
		n = n*10 + int(r-'0')
	}
	return n
}
