package queue

// Status values are stored verbatim, matching what the board displays.
const (
	StatusWaiting    = "Waiting"
	StatusNowServing = "Now Serving"
	StatusServed     = "Served"
	StatusCanceled   = "Canceled"
)

// transitionMap lists the statuses reachable from each status.
// Served and Canceled are terminal and have no entry.
var transitionMap = map[string][]string{
	StatusWaiting:    {StatusNowServing, StatusServed, StatusCanceled},
	StatusNowServing: {StatusServed},
}

func CanTransition(from, to string) bool {
	if IsTerminal(from) {
		return false
	}
	for _, status := range transitionMap[from] {
		if status == to {
			return true
		}
	}
	return false
}

func IsTerminal(status string) bool {
	return status == StatusServed || status == StatusCanceled
}

// IsActive reports whether a check-in with this status belongs on the board.
func IsActive(status string) bool {
	return status == StatusWaiting || status == StatusNowServing
}
