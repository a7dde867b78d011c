// Package bn254 implements the BN254 scalar field on top of gnark-crypto.
// Elements are stored in the first four limbs of a constraint.Element, in
// Montgomery form, matching fr.Element.
package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/halo2base/utils"
)

var ScalarField = fr.Modulus()

type Field struct{}

func toFr(x constraint.Element) fr.Element {
	return fr.Element{x[0], x[1], x[2], x[3]}
}

func fromFr(v fr.Element) constraint.Element {
	return constraint.Element{v[0], v[1], v[2], v[3]}
}

func (engine *Field) FromInterface(i interface{}) constraint.Element {
	b := utils.FromInterface(i)
	var e fr.Element
	e.SetBigInt(&b)
	return fromFr(e)
}

func (engine *Field) ToBigInt(c constraint.Element) *big.Int {
	e := toFr(c)
	r := new(big.Int)
	e.BigInt(r)
	return r
}

func (engine *Field) Mul(a, b constraint.Element) constraint.Element {
	ea := toFr(a)
	eb := toFr(b)
	ea.Mul(&ea, &eb)
	return fromFr(ea)
}

func (engine *Field) Add(a, b constraint.Element) constraint.Element {
	ea := toFr(a)
	eb := toFr(b)
	ea.Add(&ea, &eb)
	return fromFr(ea)
}

func (engine *Field) Sub(a, b constraint.Element) constraint.Element {
	ea := toFr(a)
	eb := toFr(b)
	ea.Sub(&ea, &eb)
	return fromFr(ea)
}

func (engine *Field) Neg(a constraint.Element) constraint.Element {
	e := toFr(a)
	e.Neg(&e)
	return fromFr(e)
}

func (engine *Field) Inverse(a constraint.Element) (constraint.Element, bool) {
	e := toFr(a)
	if e.IsZero() {
		return a, false
	}
	e.Inverse(&e)
	return fromFr(e), true
}

func (engine *Field) IsOne(a constraint.Element) bool {
	e := toFr(a)
	return e.IsOne()
}

func (engine *Field) One() constraint.Element {
	var e fr.Element
	e.SetOne()
	return fromFr(e)
}

func (engine *Field) String(a constraint.Element) string {
	e := toFr(a)
	return e.String()
}

func (engine *Field) Uint64(a constraint.Element) (uint64, bool) {
	b := engine.ToBigInt(a)
	return b.Uint64(), b.IsUint64()
}

func (engine *Field) Random() constraint.Element {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		panic(err)
	}
	return fromFr(e)
}

func (engine *Field) Field() *big.Int {
	return ScalarField
}

func (engine *Field) FieldBitLen() int {
	return fr.Modulus().BitLen()
}
