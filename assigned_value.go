package halo2base

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/halo2base/field"
)

// AssignedValue couples a column value with the cell it was assigned to.
//
// Cell is nil on the witness-generation-only fast path, where addresses are
// never needed. The value is a copy, not a reference into the owning context's
// column, so the context remains free to append further rows.
type AssignedValue struct {
	Value field.Assigned
	Cell  *ContextCell
}

// Element returns the evaluated element of the cell.
//
// Panics if the value is still a pending fraction.
func (a AssignedValue) Element() constraint.Element {
	return a.Value.Evaluated()
}

// DebugPrank overwrites the raw witness value at this cell's offset in ctx,
// bypassing normal assignment. It exists solely to inject deliberately wrong
// witnesses for negative tests of the downstream constraint checker; ctx must
// have test hooks enabled and must be the context this value lies in.
func (a AssignedValue) DebugPrank(ctx *Context, v constraint.Element) {
	ctx.requireTestHooks("DebugPrank")
	if a.Cell == nil {
		panic("DebugPrank requires a cell address")
	}
	ctx.Advice[a.Cell.Offset] = field.Trivial(v)
}
