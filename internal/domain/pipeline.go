package domain

import "slices"

// ApplyFilters returns the sessions satisfying every active filter, ordered by
// start (date then time). The input slice is left untouched and sessions with
// the same start keep their relative input order.
func ApplyFilters(sessions []*Session, f Filters) []*Session {
	out := make([]*Session, 0, len(sessions))
	for _, s := range sessions {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	SortByStart(out)
	return out
}

// SortByStart stably sorts sessions by their naive start instant. Sessions with
// an unparsable date or time go last.
func SortByStart(sessions []*Session) {
	slices.SortStableFunc(sessions, compareStart)
}

func compareStart(a, b *Session) int {
	ta, errA := a.StartsAt()
	tb, errB := b.StartsAt()
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	return ta.Compare(tb)
}
