package token

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// NumericKind identifies which of the seven numeric runtime types a
// NumericLiteral token's Value holds.
type NumericKind int

const (
	NoNumeric NumericKind = iota
	Int32
	UInt32
	Int64
	UInt64
	Float32
	Float64
	Decimal128
)

func (k NumericKind) String() string {
	switch k {
	case Int32:
		return "i32"
	case UInt32:
		return "u32"
	case Int64:
		return "i64"
	case UInt64:
		return "u64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case Decimal128:
		return "decimal128"
	default:
		return "none"
	}
}

// Value is the typed, parsed result of a numeric literal. Exactly one of
// the accessor fields is meaningful, selected by Kind. A Token's Value is
// nil for every kind other than NumericLiteral.
type Value struct {
	Kind    NumericKind
	I32     int32
	U32     uint32
	I64     int64
	U64     uint64
	F32     float32
	F64     float64
	Decimal decimal.Decimal
}

func (v *Value) String() string {
	if v == nil {
		return "<none>"
	}
	switch v.Kind {
	case Int32:
		return strconv.FormatInt(int64(v.I32), 10)
	case UInt32:
		return strconv.FormatUint(uint64(v.U32), 10)
	case Int64:
		return strconv.FormatInt(v.I64, 10)
	case UInt64:
		return strconv.FormatUint(v.U64, 10)
	case Float32:
		return strconv.FormatFloat(float64(v.F32), 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case Decimal128:
		return v.Decimal.String()
	default:
		return "<none>"
	}
}
