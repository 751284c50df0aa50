package ast

import "github.com/google/uuid"

// Requirement is one natural-language requirement and the constraints
// derived from it. Verified is set only by a successful verification
// pass over every constraint; partial success leaves it false.
type Requirement struct {
	ID          uuid.UUID
	Content     string
	Verified    bool
	Constraints []Constraint
}

// NewRequirement constructs an unverified requirement with a fresh id.
func NewRequirement(content string, constraints ...Constraint) Requirement {
	return Requirement{
		ID:          uuid.New(),
		Content:     content,
		Constraints: constraints,
	}
}

// MarkVerified returns a copy of r with Verified set to true. Requirement
// is treated as an immutable value once placed in an IntentAst (see
// IntentAst.MarkRequirementVerified): no destructive mutation once an
// emission begins.
func (r Requirement) MarkVerified() Requirement {
	r.Verified = true
	return r
}
