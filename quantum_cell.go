package halo2base

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/halo2base/field"
)

type quantumCellKind uint8

const (
	cellExisting quantumCellKind = iota
	cellWitness
	cellWitnessFraction
	cellConstant
)

// QuantumCell abstracts the scenarios under which a value is added to an
// advice column.
type QuantumCell struct {
	kind     quantumCellKind
	existing AssignedValue
	witness  field.Assigned
	constant constraint.Element
}

// Existing describes a value already assigned in some advice column. Assigning
// it pushes a copy of the value and, during keygen, imposes an equality
// constraint between the new cell and the existing one.
func Existing(a AssignedValue) QuantumCell {
	return QuantumCell{kind: cellExisting, existing: a}
}

// Witness describes a fresh witness value (e.g. a private input).
func Witness(v constraint.Element) QuantumCell {
	return QuantumCell{kind: cellWitness, witness: field.Trivial(v)}
}

// WitnessFraction describes a fresh witness left as a pending fraction so it
// can be resolved later by one batch inversion.
func WitnessFraction(v field.Assigned) QuantumCell {
	return QuantumCell{kind: cellWitnessFraction, witness: v}
}

// Constant describes a known constant. Assigning it pushes the value and,
// during keygen, anchors the new cell against the fixed column via a constant
// equality.
func Constant(c constraint.Element) QuantumCell {
	return QuantumCell{kind: cellConstant, constant: c}
}

// Element returns the underlying evaluated element of the descriptor.
//
// Panics for a WitnessFraction that has not been resolved yet.
func (q QuantumCell) Element() constraint.Element {
	switch q.kind {
	case cellExisting:
		return q.existing.Element()
	case cellWitness, cellWitnessFraction:
		return q.witness.Evaluated()
	default:
		return q.constant
	}
}
