package models

import "strings"

// BroadSemester is one of the four coarse term designations.
type BroadSemester string

const (
	SemesterFall   BroadSemester = "Fall"
	SemesterSummer BroadSemester = "Summer"
	SemesterSpring BroadSemester = "Spring"
	SemesterWinter BroadSemester = "Winter"
)

// BroadSemesters is the fixed display order of the broad semesters. The
// occupancy matrix always emits cells in this order.
var BroadSemesters = []BroadSemester{SemesterFall, SemesterSummer, SemesterSpring, SemesterWinter}

// SemesterKey classifies a specific semester under its broad semester and
// gives it a deterministic ordinal within the year.
type SemesterKey struct {
	Broad   BroadSemester
	Ordinal int
}

// SemesterOrder maps a specific semester string (e.g. an 8-week session name)
// to its classification and ordering. Specific semesters without an entry
// sort after mapped ones, alphabetically among themselves.
type SemesterOrder map[string]SemesterKey

// Lookup returns the key for a specific semester and whether it is mapped.
func (m SemesterOrder) Lookup(specific string) (SemesterKey, bool) {
	key, ok := m[specific]
	return key, ok
}

// Compare orders two specific semester strings: mapped before unmapped,
// mapped by ordinal ascending, unmapped alphabetically. Returns a negative
// number, zero, or a positive number as a sorts before, equal to, or after b.
func (m SemesterOrder) Compare(a, b string) int {
	ka, okA := m[a]
	kb, okB := m[b]
	switch {
	case okA && okB:
		return ka.Ordinal - kb.Ordinal
	case okA:
		return -1
	case okB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
