package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Type identifies a Value's semantic type, as produced by schema decoding
// (§4.C). Composite identifies a field that is itself broken into
// component sub-values (e.g. a composite diagnosis code).
type Type int

const (
	TypeString Type = iota
	TypeInteger
	TypeDecimal
	TypeDate
	TypeDateTime
	TypeTimeString
	TypeEnum
	TypeComposite
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeDecimal:
		return "decimal"
	case TypeDate:
		return "date"
	case TypeDateTime:
		return "datetime"
	case TypeTimeString:
		return "time-string"
	case TypeEnum:
		return "enum"
	case TypeComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Value is a single decoded scalar (or composite) field value. Null
// represents a missing optional field, decoded per §4.C rather than
// represented as a zero value that could be confused with real data.
type Value struct {
	Type       Type
	Null       bool
	Str        string          // String, TimeString, Enum
	Int        int64           // Integer
	Dec        decimal.Decimal // Decimal
	Time       time.Time       // Date, DateTime
	Components []Value         // Composite
}

// NullValue returns a decoded value representing a missing optional field.
func NullValue() Value {
	return Value{Null: true}
}

// Render renders the value back to its wire string form, the inverse of
// schema decoding (§4.C/§4.F). decimalPlaces overrides the fractional digit
// count for Decimal values; pass -1 to preserve the digits the value was
// originally parsed with.
func (v Value) Render(decimalPlaces int) string {
	if v.Null {
		return ""
	}
	switch v.Type {
	case TypeString, TypeTimeString, TypeEnum:
		return v.Str
	case TypeInteger:
		return strconv.FormatInt(v.Int, 10)
	case TypeDecimal:
		if decimalPlaces >= 0 {
			return v.Dec.StringFixed(int32(decimalPlaces))
		}
		if exp := v.Dec.Exponent(); exp < 0 {
			return v.Dec.StringFixed(-exp)
		}
		return v.Dec.String()
	case TypeDate:
		return v.Time.Format("20060102")
	case TypeDateTime:
		return v.Time.Format("200601021504")
	default:
		return v.Str
	}
}
