package harness

import (
	"fmt"
	"math"
)

// Kind is the source type a caller holds an operand in before converting
// it to int32.
type Kind string

const (
	KindInt8    Kind = "int8"
	KindInt16   Kind = "int16"
	KindUint16  Kind = "uint16"
	KindInt32   Kind = "int32"
	KindInt64   Kind = "int64"
	KindFloat32 Kind = "float32"
	KindFloat64 Kind = "float64"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindInt8, KindInt16, KindUint16, KindInt32, KindInt64, KindFloat32, KindFloat64}

// Valid reports whether k is a known kind. The empty kind is valid and
// means int32.
func (k Kind) Valid() bool {
	if k == "" {
		return true
	}
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) orDefault() Kind {
	if k == "" {
		return KindInt32
	}
	return k
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// ToInt32 converts an operand literal held as k into an int32 operand.
//
// Integer kinds widen value-preservingly after a range check against the
// declared type; int64 narrows with an explicit cast; float kinds truncate
// toward zero.
func (k Kind) ToInt32(o Operand) (int32, error) {
	k = k.orDefault()

	if k.IsFloat() {
		return k.truncate(o.Float64())
	}
	if o.IsFloat {
		return 0, fmt.Errorf("kind %s requires an integer literal, got %s", k, o.Text)
	}

	v := o.Int
	switch k {
	case KindInt8:
		if v < math.MinInt8 || v > math.MaxInt8 {
			return 0, rangeError(k, o)
		}
		return int32(int8(v)), nil
	case KindInt16:
		if v < math.MinInt16 || v > math.MaxInt16 {
			return 0, rangeError(k, o)
		}
		return int32(int16(v)), nil
	case KindUint16:
		if v < 0 || v > math.MaxUint16 {
			return 0, rangeError(k, o)
		}
		return int32(uint16(v)), nil
	case KindInt32:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, rangeError(k, o)
		}
		return int32(v), nil
	case KindInt64:
		return int32(v), nil
	default:
		return 0, fmt.Errorf("unknown kind %q", k)
	}
}

func (k Kind) truncate(f float64) (int32, error) {
	if k == KindFloat32 {
		f = float64(float32(f))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("kind %s: %v has no integer value", k, f)
	}
	t := math.Trunc(f)
	if t < math.MinInt32 || t > math.MaxInt32 {
		return 0, fmt.Errorf("kind %s: %v truncates to %v, outside int32", k, f, t)
	}
	return int32(t), nil
}

func rangeError(k Kind, o Operand) error {
	return fmt.Errorf("literal %s does not fit kind %s", o.Text, k)
}
