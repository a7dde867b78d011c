package halo2base

import (
	"sync"

	"github.com/consensys/gnark/constraint"
)

// ConstantEquality constrains an advice cell to equal a known constant,
// anchoring it against the fixed column during circuit creation.
type ConstantEquality struct {
	Constant constraint.Element
	Cell     ContextCell
}

// CopyConstraintManager aggregates every copy (equality) constraint of one
// circuit build. A single instance is created per build and shared by pointer
// among all contexts; appends from concurrently running contexts are
// serialized by an internal mutex. Entry order carries no meaning, only set
// membership.
//
// The manager is consumed exactly once, after every context of a phase has
// finished contributing, by the proving-system integration layer.
type CopyConstraintManager struct {
	mu sync.Mutex

	adviceEqualities   [][2]ContextCell
	constantEqualities []ConstantEquality

	// nextContextID makes context ids unique across every manager of the
	// build, so cell addresses never collide between phases.
	nextContextID int
}

// NewCopyConstraintManager creates an empty manager for one circuit build.
func NewCopyConstraintManager() *CopyConstraintManager {
	return &CopyConstraintManager{}
}

// NextContextID reserves the next build-unique context id.
func (cm *CopyConstraintManager) NextContextID() int {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	id := cm.nextContextID
	cm.nextContextID++
	return id
}

// AddAdviceEquality records that two advice cells must hold equal values.
func (cm *CopyConstraintManager) AddAdviceEquality(a, b ContextCell) {
	cm.mu.Lock()
	cm.adviceEqualities = append(cm.adviceEqualities, [2]ContextCell{a, b})
	cm.mu.Unlock()
}

// AddConstantEquality records that an advice cell must equal a constant.
func (cm *CopyConstraintManager) AddConstantEquality(c constraint.Element, cell ContextCell) {
	cm.mu.Lock()
	cm.constantEqualities = append(cm.constantEqualities, ConstantEquality{Constant: c, Cell: cell})
	cm.mu.Unlock()
}

// AdviceEqualities returns a copy of the recorded advice-advice equalities.
func (cm *CopyConstraintManager) AdviceEqualities() [][2]ContextCell {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	out := make([][2]ContextCell, len(cm.adviceEqualities))
	copy(out, cm.adviceEqualities)
	return out
}

// ConstantEqualities returns a copy of the recorded constant-advice
// equalities.
func (cm *CopyConstraintManager) ConstantEqualities() []ConstantEquality {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	out := make([]ConstantEquality, len(cm.constantEqualities))
	copy(out, cm.constantEqualities)
	return out
}

// NumAdviceEqualities returns the number of recorded advice-advice
// equalities.
func (cm *CopyConstraintManager) NumAdviceEqualities() int {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return len(cm.adviceEqualities)
}

// NumConstantEqualities returns the number of recorded constant-advice
// equalities.
func (cm *CopyConstraintManager) NumConstantEqualities() int {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return len(cm.constantEqualities)
}
