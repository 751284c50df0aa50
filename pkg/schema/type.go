package schema

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Tag discriminates the DataType variants.
type Tag uint8

const (
	// TagUint64 is an unsigned 64-bit integer.
	TagUint64 Tag = iota
	// TagUint32 is an unsigned 32-bit integer.
	TagUint32
	// TagInt64 is a signed 64-bit integer.
	TagInt64
	// TagInt32 is a signed 32-bit integer.
	TagInt32
	// TagString is a UTF-8 string.
	TagString
	// TagBool is a boolean.
	TagBool
	// TagDecimal is an exact decimal value.
	TagDecimal
	// TagCustom is a named type with optional inclusive range bounds.
	TagCustom
)

// DataType is the tagged sum: Uint64 | Uint32 | Int64 |
// Int32 | String | Bool | Decimal | Custom{name, range_min?, range_max?}.
//
// It is a closed tagged sum exposing total accessor/predicate
// functions; it has no field-element variant.
type DataType struct {
	tag    Tag
	name   string
	rngMin *big.Int
	rngMax *big.Int
}

// Uint64Type is the Uint64 variant.
func Uint64Type() DataType { return DataType{tag: TagUint64} }

// Uint32Type is the Uint32 variant.
func Uint32Type() DataType { return DataType{tag: TagUint32} }

// Int64Type is the Int64 variant.
func Int64Type() DataType { return DataType{tag: TagInt64} }

// Int32Type is the Int32 variant. It is the schema registry's default
// for unknown variables.
func Int32Type() DataType { return DataType{tag: TagInt32} }

// StringType is the String variant.
func StringType() DataType { return DataType{tag: TagString} }

// BoolType is the Bool variant.
func BoolType() DataType { return DataType{tag: TagBool} }

// DecimalType is the Decimal variant, backed by shopspring/decimal for
// exact (non-floating-point) arithmetic in emitted range assertions.
func DecimalType() DataType { return DataType{tag: TagDecimal} }

// CustomType is the Custom variant, carrying a name and optional
// inclusive range bounds that the emitter may project into
// target-language subtype constraints.
func CustomType(name string, rngMin, rngMax *big.Int) DataType {
	return DataType{tag: TagCustom, name: name, rngMin: rngMin, rngMax: rngMax}
}

// Tag returns this type's discriminant.
func (t DataType) Tag() Tag { return t.tag }

// Name returns the Custom variant's name, or "" for any other variant.
func (t DataType) Name() string { return t.name }

// RangeBounds returns the Custom variant's inclusive bounds, either of
// which may be nil if unset. Returns (nil, nil) for any other variant.
func (t DataType) RangeBounds() (min, max *big.Int) { return t.rngMin, t.rngMax }

// IsInteger reports whether this variant is one of the four integer
// variants (Uint64, Uint32, Int64, Int32).
func (t DataType) IsInteger() bool {
	switch t.tag {
	case TagUint64, TagUint32, TagInt64, TagInt32:
		return true
	default:
		return false
	}
}

// RequiresOverflowProtection is defined as "variant is an integer
// variant"
func (t DataType) RequiresOverflowProtection() bool {
	return t.IsInteger()
}

// IsUnsigned reports whether this integer variant is unsigned. Panics
// if this is not an integer variant.
func (t DataType) IsUnsigned() bool {
	switch t.tag {
	case TagUint64, TagUint32:
		return true
	case TagInt64, TagInt32:
		return false
	default:
		panic("schema: IsUnsigned called on a non-integer DataType")
	}
}

// BitWidth returns the declared bit width of an integer variant (64 or
// 32). Panics if this is not an integer variant.
func (t DataType) BitWidth() uint {
	switch t.tag {
	case TagUint64, TagInt64:
		return 64
	case TagUint32, TagInt32:
		return 32
	default:
		panic("schema: BitWidth called on a non-integer DataType")
	}
}

// AcceptInt reports whether an integer value fits this type. Only
// meaningful for integer variants; always true for every other
// variant (no range to violate).
func (t DataType) AcceptInt(v int64) bool {
	if !t.IsInteger() {
		return true
	}

	bits := t.BitWidth()

	if t.IsUnsigned() {
		if v < 0 {
			return false
		}

		bound := new(big.Int).Lsh(big.NewInt(1), bits)
		return big.NewInt(v).Cmp(bound) < 0
	}

	half := new(big.Int).Lsh(big.NewInt(1), bits-1)
	lower := new(big.Int).Neg(half)
	upper := new(big.Int).Sub(half, big.NewInt(1))
	bv := big.NewInt(v)

	return bv.Cmp(lower) >= 0 && bv.Cmp(upper) <= 0
}

// AcceptDecimal reports whether a decimal value fits a Custom range, if
// one is declared. For any other variant it always returns true.
func (t DataType) AcceptDecimal(v decimal.Decimal) bool {
	if t.tag != TagCustom {
		return true
	}

	if t.rngMin != nil && v.Cmp(decimal.NewFromBigInt(t.rngMin, 0)) < 0 {
		return false
	}

	if t.rngMax != nil && v.Cmp(decimal.NewFromBigInt(t.rngMax, 0)) > 0 {
		return false
	}

	return true
}

// String gives a human-readable rendering used by diagnostics and by
// the traceability/documentation surfaces.
func (t DataType) String() string {
	switch t.tag {
	case TagUint64:
		return "uint64"
	case TagUint32:
		return "uint32"
	case TagInt64:
		return "int64"
	case TagInt32:
		return "int32"
	case TagString:
		return "string"
	case TagBool:
		return "bool"
	case TagDecimal:
		return "decimal"
	case TagCustom:
		return fmt.Sprintf("custom(%s)", t.name)
	default:
		panic(fmt.Sprintf("schema: unknown DataType tag %d", t.tag))
	}
}
