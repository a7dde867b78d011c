package halo2base

import (
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/halo2base/field"
)

// Context represents a single thread of an execution trace: one virtual
// advice column plus its selector column, belonging to one region kind and
// one challenge phase.
//
// A Context is owned by exactly one goroutine. The only shared state it
// touches is the copy manager, whose appends are internally serialized.
type Context struct {
	// witnessGenOnly skips all constraint bookkeeping when set; the
	// constraints were already fixed during a prior keygen pass.
	witnessGenOnly bool
	phase          int
	typeID         string
	contextID      int

	// Advice is the single advice column of this context, append-only.
	Advice []field.Assigned

	// Selector accompanies Advice and marks rows where the custom gate is
	// enabled. Grown to len(Advice) by every row-emitting call during keygen;
	// left empty when witnessGenOnly.
	Selector []bool

	// zero is so commonly assigned that the first zero cell is cached.
	zeroCell *AssignedValue

	copyManager *CopyConstraintManager

	testHooks bool
}

// NewContext creates an empty Context.
//   - witnessGenOnly: true when only witness generation is performed, false
//     during proving/verification key generation.
//   - phase: the challenge phase this context maps to.
//   - typeID: identifier of the virtual region kind.
//   - contextID: identifier to reference cells of this context later.
//   - copyManager: the build-wide shared copy constraint manager.
func NewContext(witnessGenOnly bool, phase int, typeID string, contextID int, copyManager *CopyConstraintManager) *Context {
	return &Context{
		witnessGenOnly: witnessGenOnly,
		phase:          phase,
		typeID:         typeID,
		contextID:      contextID,
		copyManager:    copyManager,
	}
}

// WitnessGenOnly reports whether constraint bookkeeping is skipped.
func (ctx *Context) WitnessGenOnly() bool {
	return ctx.witnessGenOnly
}

// Phase returns the challenge phase this context maps to.
func (ctx *Context) Phase() int {
	return ctx.phase
}

// TypeID returns the identifier of the virtual region kind.
func (ctx *Context) TypeID() string {
	return ctx.typeID
}

// ID returns the context id, usable as a tag when multi-threading.
func (ctx *Context) ID() int {
	return ctx.contextID
}

// Tag returns a tag identifying this context across all virtual regions and
// phases.
func (ctx *Context) Tag() ContextTag {
	return ContextTag{TypeID: ctx.typeID, ContextID: ctx.contextID}
}

// CopyManager returns the shared copy constraint manager handed to this
// context at construction.
func (ctx *Context) CopyManager() *CopyConstraintManager {
	return ctx.copyManager
}

// EnableTestHooks unlocks DebugPrank and DebugAssertFalse for this context.
// Production circuit code must never call this.
func (ctx *Context) EnableTestHooks() {
	ctx.testHooks = true
}

func (ctx *Context) requireTestHooks(op string) {
	if !ctx.testHooks {
		panic(op + " called without test hooks enabled")
	}
}

func (ctx *Context) latestCell() ContextCell {
	return NewContextCell(ctx.typeID, ctx.contextID, len(ctx.Advice)-1)
}

// padSelector grows the selector column to match the advice column.
func (ctx *Context) padSelector() {
	for len(ctx.Selector) < len(ctx.Advice) {
		ctx.Selector = append(ctx.Selector, false)
	}
}

// AssignCell pushes one cell described by input to the end of the advice
// column.
//
// During keygen an Existing input must carry a cell address; referencing a
// cell born in a witness-gen-only context is a contract violation and panics.
func (ctx *Context) AssignCell(input QuantumCell) {
	switch input.kind {
	case cellExisting:
		ctx.Advice = append(ctx.Advice, input.existing.Value)
		if !ctx.witnessGenOnly {
			if input.existing.Cell == nil {
				panic("cannot reference a cell without an address during keygen")
			}
			ctx.copyManager.AddAdviceEquality(ctx.latestCell(), *input.existing.Cell)
		}
	case cellWitness, cellWitnessFraction:
		ctx.Advice = append(ctx.Advice, input.witness)
	case cellConstant:
		ctx.Advice = append(ctx.Advice, field.Trivial(input.constant))
		if !ctx.witnessGenOnly {
			ctx.copyManager.AddConstantEquality(input.constant, ctx.latestCell())
		}
	}
}

// Last returns the value of the last cell in the advice column; ok is false
// if the column is empty. The returned cell address is nil when
// witnessGenOnly.
func (ctx *Context) Last() (AssignedValue, bool) {
	if len(ctx.Advice) == 0 {
		return AssignedValue{}, false
	}
	av := AssignedValue{Value: ctx.Advice[len(ctx.Advice)-1]}
	if !ctx.witnessGenOnly {
		cell := ctx.latestCell()
		av.Cell = &cell
	}
	return av, true
}

func (ctx *Context) mustLast() AssignedValue {
	av, ok := ctx.Last()
	if !ok {
		panic("advice column is empty")
	}
	return av
}

// Get returns the cell at the given offset in the advice column. A negative
// offset counts back from the end of the column (-1 is the last cell).
//
// Panics if the resolved index is outside the column.
func (ctx *Context) Get(offset int) AssignedValue {
	idx := offset
	if idx < 0 {
		idx += len(ctx.Advice)
	}
	if idx < 0 || idx >= len(ctx.Advice) {
		panic(fmt.Sprintf("cell offset %d out of range for advice column of length %d", offset, len(ctx.Advice)))
	}
	av := AssignedValue{Value: ctx.Advice[idx]}
	if !ctx.witnessGenOnly {
		cell := NewContextCell(ctx.typeID, ctx.contextID, idx)
		av.Cell = &cell
	}
	return av
}

// ConstrainEqual imposes an equality constraint between two assigned advice
// cells. No-op when witnessGenOnly; panics if either cell lacks an address.
func (ctx *Context) ConstrainEqual(a, b AssignedValue) {
	if ctx.witnessGenOnly {
		return
	}
	if a.Cell == nil || b.Cell == nil {
		panic("ConstrainEqual requires both cells to carry an address")
	}
	ctx.copyManager.AddAdviceEquality(*a.Cell, *b.Cell)
}

// AssignRegion pushes the inputs to the advice column and enables the gate
// selector at each of gateOffsets, taken relative to the column length at the
// start of the call (0 is inputs[0], -1 is the last previously assigned
// cell).
//
// Panics if a resolved gate offset lands outside the column. Selector
// bookkeeping is skipped entirely when witnessGenOnly.
func (ctx *Context) AssignRegion(inputs []QuantumCell, gateOffsets []int) {
	if ctx.witnessGenOnly {
		for _, input := range inputs {
			ctx.AssignCell(input)
		}
		return
	}
	rowOffset := len(ctx.Advice)
	// rowOffset may differ from len(ctx.Selector) here if LoadConstant or
	// LoadWitness ran earlier; padSelector reconciles them.
	for _, input := range inputs {
		ctx.AssignCell(input)
	}
	ctx.padSelector()
	for _, offset := range gateOffsets {
		idx := rowOffset + offset
		if idx < 0 || idx >= len(ctx.Selector) {
			panic(fmt.Sprintf("invalid gate offset %d at row %d", offset, rowOffset))
		}
		ctx.Selector[idx] = true
	}
}

// AssignRegionLast is AssignRegion followed by a read of the last assigned
// cell.
func (ctx *Context) AssignRegionLast(inputs []QuantumCell, gateOffsets []int) AssignedValue {
	ctx.AssignRegion(inputs, gateOffsets)
	return ctx.mustLast()
}

// ExternalEquality pairs an already assigned cell with a row-start-relative
// offset to be constrained equal to it.
type ExternalEquality struct {
	Cell   *ContextCell
	Offset int
}

// AssignRegionSmart is AssignRegion with additional equality constraints:
// equalityOffsets lists pairs of row-start-relative offsets within the region
// to be constrained equal to each other, and externalEquality ties cells of
// the region to cells assigned elsewhere (e.g. in another context).
//
// All constraint recording is skipped when witnessGenOnly.
func (ctx *Context) AssignRegionSmart(
	inputs []QuantumCell,
	gateOffsets []int,
	equalityOffsets [][2]int,
	externalEquality []ExternalEquality,
) {
	rowOffset := len(ctx.Advice)
	ctx.AssignRegion(inputs, gateOffsets)
	if ctx.witnessGenOnly {
		return
	}
	for _, pair := range equalityOffsets {
		ctx.copyManager.AddAdviceEquality(
			ctx.regionCell(rowOffset, pair[0]),
			ctx.regionCell(rowOffset, pair[1]),
		)
	}
	for _, ext := range externalEquality {
		if ext.Cell == nil {
			panic("external equality requires a cell address")
		}
		ctx.copyManager.AddAdviceEquality(*ext.Cell, ctx.regionCell(rowOffset, ext.Offset))
	}
}

// regionCell resolves a row-start-relative offset to a cell of this context,
// panicking if it falls outside the live column.
func (ctx *Context) regionCell(rowOffset, offset int) ContextCell {
	idx := rowOffset + offset
	if idx < 0 || idx >= len(ctx.Advice) {
		panic(fmt.Sprintf("invalid equality offset %d at row %d", offset, rowOffset))
	}
	return NewContextCell(ctx.typeID, ctx.contextID, idx)
}

// AssignWitnesses pushes one witness cell per element and returns the
// assigned cells, with addresses unless witnessGenOnly. No gate is enabled.
func (ctx *Context) AssignWitnesses(witnesses []constraint.Element) []AssignedValue {
	rowOffset := len(ctx.Advice)
	inputs := make([]QuantumCell, len(witnesses))
	for i, w := range witnesses {
		inputs[i] = Witness(w)
	}
	ctx.AssignRegion(inputs, nil)
	assigned := make([]AssignedValue, len(witnesses))
	for i := range witnesses {
		av := AssignedValue{Value: ctx.Advice[rowOffset+i]}
		if !ctx.witnessGenOnly {
			cell := NewContextCell(ctx.typeID, ctx.contextID, rowOffset+i)
			av.Cell = &cell
		}
		assigned[i] = av
	}
	return assigned
}

// LoadWitness assigns a single witness value and returns the assigned cell.
func (ctx *Context) LoadWitness(w constraint.Element) AssignedValue {
	ctx.AssignCell(Witness(w))
	if !ctx.witnessGenOnly {
		ctx.padSelector()
	}
	return ctx.mustLast()
}

// LoadConstant assigns a single constant value and returns the assigned cell.
func (ctx *Context) LoadConstant(c constraint.Element) AssignedValue {
	ctx.AssignCell(Constant(c))
	if !ctx.witnessGenOnly {
		ctx.padSelector()
	}
	return ctx.mustLast()
}

// LoadConstants assigns a list of constant values and returns the assigned
// cells.
func (ctx *Context) LoadConstants(cs []constraint.Element) []AssignedValue {
	assigned := make([]AssignedValue, len(cs))
	for i, c := range cs {
		assigned[i] = ctx.LoadConstant(c)
	}
	return assigned
}

// LoadZero returns the cached zero cell, assigning it on first use so the
// pervasive zero constant occupies a single row per context.
func (ctx *Context) LoadZero() AssignedValue {
	if ctx.zeroCell != nil {
		return *ctx.zeroCell
	}
	zero := ctx.LoadConstant(constraint.Element{})
	ctx.zeroCell = &zero
	return zero
}

// DebugAssertFalse loads two independent random witnesses and constrains them
// equal, making the downstream constraint check fail at a known row. Purely a
// manual-debugging break point; requires test hooks.
func (ctx *Context) DebugAssertFalse(f field.Field) {
	ctx.requireTestHooks("DebugAssertFalse")
	rand1 := ctx.LoadWitness(f.Random())
	rand2 := ctx.LoadWitness(f.Random())
	ctx.ConstrainEqual(rand1, rand2)
}
