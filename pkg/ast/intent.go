package ast

import "github.com/google/uuid"

// IntentAst is the top-level typed constraint representation: an
// ordered list of requirements plus a recomputed correctness score.
//
// correctness_score = 100 * |{r | r.verified}| / |requirements| when
// non-empty, and exactly 0 when empty. The score is recomputed on
// every mutating method here; callers outside this package cannot set
// it directly (there is no exported setter).
type IntentAst struct {
	ID               uuid.UUID
	Requirements     []Requirement
	correctnessScore float64
}

// NewAst constructs an empty AST with a fresh id.
func NewAst() *IntentAst {
	return &IntentAst{ID: uuid.New()}
}

// AddRequirement appends a requirement and recomputes the score. ASTs
// accumulate requirements monotonically — there is no remove.
func (a *IntentAst) AddRequirement(r Requirement) {
	a.Requirements = append(a.Requirements, r)
	a.recompute()
}

// MarkRequirementVerified marks the requirement at index i verified and
// recomputes the score. It panics on an out-of-range index, which is a
// programmer error (i is a position in Requirements, which
// AddRequirement appends to in call order).
func (a *IntentAst) MarkRequirementVerified(i int) {
	a.Requirements[i] = a.Requirements[i].MarkVerified()
	a.recompute()
}

// CorrectnessScore returns the rational-in-[0,100] score, recomputed on
// every mutation so that two successive reads without an intervening
// mutation are guaranteed equal (testable property 6).
func (a *IntentAst) CorrectnessScore() float64 {
	return a.correctnessScore
}

func (a *IntentAst) recompute() {
	if len(a.Requirements) == 0 {
		a.correctnessScore = 0
		return
	}

	verified := 0

	for _, r := range a.Requirements {
		if r.Verified {
			verified++
		}
	}

	a.correctnessScore = 100 * float64(verified) / float64(len(a.Requirements))
}
