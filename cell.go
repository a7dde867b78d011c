package halo2base

// ContextTag uniquely identifies a [Context] across all virtual regions and
// phases of a circuit build.
type ContextTag struct {
	// TypeID identifies the virtual region kind the context belongs to.
	TypeID string
	// ContextID distinguishes contexts of the same kind.
	ContextID int
}

// ContextCell points to the cell at Offset in the advice column of the
// [Context] identified by (TypeID, ContextID). It is a plain value, usable as
// a map key; it never aliases live context state.
type ContextCell struct {
	TypeID    string
	ContextID int
	Offset    int
}

// NewContextCell creates a new [ContextCell] with the given type id, context
// id and offset.
func NewContextCell(typeID string, contextID, offset int) ContextCell {
	return ContextCell{TypeID: typeID, ContextID: contextID, Offset: offset}
}

// Tag returns the tag of the context the cell belongs to.
func (c ContextCell) Tag() ContextTag {
	return ContextTag{TypeID: c.TypeID, ContextID: c.ContextID}
}

// Compare orders cells by (TypeID, ContextID, Offset), returning -1, 0 or 1.
// Downstream layout code relies on this total order when sorting cells.
func (c ContextCell) Compare(o ContextCell) int {
	if c.TypeID != o.TypeID {
		if c.TypeID < o.TypeID {
			return -1
		}
		return 1
	}
	if c.ContextID != o.ContextID {
		if c.ContextID < o.ContextID {
			return -1
		}
		return 1
	}
	if c.Offset != o.Offset {
		if c.Offset < o.Offset {
			return -1
		}
		return 1
	}
	return 0
}
