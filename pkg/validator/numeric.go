package validator

import (
	"cmp"
	"fmt"
	"reflect"
)

type numberKind uint8

const (
	kindInt numberKind = iota
	kindUint
	kindFloat
)

// number holds any Go numeric value without losing integer precision.
type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

// toNumber normalises v, including named numeric types. It reports false
// for anything that is not an integer or float kind.
func toNumber(v any) (number, bool) {
	if v == nil {
		return number{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: kindInt, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: kindUint, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: kindFloat, f: rv.Float()}, true
	default:
		return number{}, false
	}
}

func (n number) float() float64 {
	switch n.kind {
	case kindInt:
		return float64(n.i)
	case kindUint:
		return float64(n.u)
	default:
		return n.f
	}
}

// compareNumbers orders a against b. Mixed signed and unsigned integers are
// compared exactly; any float operand switches to float64 comparison.
func compareNumbers(a, b number) int {
	switch {
	case a.kind == kindInt && b.kind == kindInt:
		return cmp.Compare(a.i, b.i)
	case a.kind == kindUint && b.kind == kindUint:
		return cmp.Compare(a.u, b.u)
	case a.kind == kindInt && b.kind == kindUint:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	case a.kind == kindUint && b.kind == kindInt:
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	default:
		return cmp.Compare(a.float(), b.float())
	}
}

// typeName describes the runtime type of v for rejection messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
