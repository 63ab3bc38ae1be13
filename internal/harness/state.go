package harness

// State is the position of a run in its lifecycle:
// Idle → Running → {AllPassed | FirstFailureDetected} → Terminal.
type State int

const (
	Idle State = iota
	Running
	AllPassed
	FirstFailureDetected
	Terminal
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case AllPassed:
		return "all-passed"
	case FirstFailureDetected:
		return "first-failure-detected"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Status is the result recorded for one slot.
type Status int

const (
	// Skipped means the candidate table leaves the slot empty. It is
	// neither a pass nor a failure and produces no output line.
	Skipped Status = iota
	Passed
	Failed
)

func (s Status) String() string {
	switch s {
	case Skipped:
		return "skipped"
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
