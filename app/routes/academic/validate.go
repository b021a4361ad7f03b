package academic

import "time"

// datesOrdered reports whether start strictly precedes end.
func datesOrdered(start, end time.Time) bool {
	return start.Before(end)
}

// termWithinSession reports whether a term's date range falls entirely inside
// its parent session's range (boundaries inclusive).
func termWithinSession(termStart, termEnd, sessionStart, sessionEnd time.Time) bool {
	if termStart.Before(sessionStart) || termEnd.After(sessionEnd) {
		return false
	}
	return true
}
