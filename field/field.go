// Package field defines the scalar arithmetic engine consumed by the virtual
// region core, together with the deferred-fraction value representation used
// for batch inversion.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/halo2base/field/babybear"
	"github.com/zkforge/halo2base/field/bn254"
)

// Field is the arithmetic engine over constraint.Element. It extends the gnark
// constraint.Field interface with the field order, its bit length, and random
// element generation.
type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
	Random() constraint.Element
}

// GetFieldFromOrder returns the engine for the field of the given order.
func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	if x.Cmp(babybear.ScalarField) == 0 {
		return &babybear.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
