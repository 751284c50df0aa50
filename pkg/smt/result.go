package smt

// Status classifies a Check result.
type Status uint8

const (
	// StatusSat means a satisfying model was found.
	StatusSat Status = iota
	// StatusUnsat means no satisfying assignment exists.
	StatusUnsat
	// StatusUnknown means satisfiability was not determined: the
	// decision procedure answered unknown, or the call was cancelled.
	// A failure to run the solver is an error, not this status.
	StatusUnknown
)

// Result is the tagged outcome of Check: SAT{model} | UNSAT{core_size}
// | Unknown{reason}.
type Result struct {
	Status Status
	// Model holds the satisfying assignment when Status == StatusSat.
	Model map[string]int64
	// OutOfRange lists variables whose model value lies outside the
	// declared type's range.
	OutOfRange []string
	// CoreSize is the (opaque-content) size of the unsat core when
	// Status == StatusUnsat.
	CoreSize int
	// Reason explains an Unknown result ("cancelled" or "solver
	// returned unknown").
	Reason string
}

// IsSat reports whether this result is SAT.
func (r Result) IsSat() bool { return r.Status == StatusSat }

// IsUnsat reports whether this result is UNSAT.
func (r Result) IsUnsat() bool { return r.Status == StatusUnsat }
