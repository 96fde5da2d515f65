package expr

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/specialistvlad/builtintour/internal/table"
	"github.com/specialistvlad/builtintour/internal/value"
	"github.com/zclconf/go-cty/cty"
)

// ErrNaN is returned when a NaN float has to cross into cty, which cannot
// represent it.
var ErrNaN = errors.New("NaN cannot be represented as an expression value")

// FromCty converts a cty value into a runtime value: null becomes nil,
// integral numbers become int64, other numbers float64, sequences become
// tables indexed from 1 and maps or objects become tables with string keys.
func FromCty(v cty.Value) (any, error) {
	if !v.IsKnown() {
		return nil, fmt.Errorf("value of type %s is not known", v.Type().FriendlyName())
	}
	if v.IsNull() {
		return nil, nil
	}
	v, _ = v.Unmark()
	ty := v.Type()

	switch {
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		return numberFromCty(v.AsBigFloat()), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		t := table.New()
		var i int64
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			conv, err := FromCty(elem)
			if err != nil {
				return nil, err
			}
			i++
			if err := t.RawSet(i, conv); err != nil {
				return nil, err
			}
		}
		return t, nil
	case ty.IsMapType() || ty.IsObjectType():
		t := table.New()
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			conv, err := FromCty(elem)
			if err != nil {
				return nil, err
			}
			if err := t.RawSet(key.AsString(), conv); err != nil {
				return nil, err
			}
		}
		return t, nil
	}
	return nil, fmt.Errorf("values of type %s are not supported", ty.FriendlyName())
}

func numberFromCty(bf *big.Float) any {
	if bf.IsInf() {
		if bf.Sign() > 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	if bf.IsInt() {
		if i, acc := bf.Int64(); acc == big.Exact {
			return i
		}
	}
	f, _ := bf.Float64()
	return f
}

// ToCty converts a runtime value into a cty value. Pure sequences become
// tuples, other tables become objects keyed by the display form of their
// keys. Functions and cyclic tables cannot be converted.
func ToCty(v any) (cty.Value, error) {
	return toCty(v, map[*table.Table]bool{})
}

func toCty(v any, seen map[*table.Table]bool) (cty.Value, error) {
	switch x := value.Normalize(v).(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case bool:
		return cty.BoolVal(x), nil
	case int64:
		return cty.NumberIntVal(x), nil
	case float64:
		switch {
		case math.IsNaN(x):
			return cty.NilVal, ErrNaN
		case math.IsInf(x, 1):
			return cty.PositiveInfinity, nil
		case math.IsInf(x, -1):
			return cty.NegativeInfinity, nil
		}
		return cty.NumberFloatVal(x), nil
	case string:
		return cty.StringVal(x), nil
	case *table.Table:
		return tableToCty(x, seen)
	}
	return cty.NilVal, fmt.Errorf("a %s value cannot be used in an expression", value.TypeName(v))
}

func tableToCty(t *table.Table, seen map[*table.Table]bool) (cty.Value, error) {
	if seen[t] {
		return cty.NilVal, errors.New("cyclic table cannot be used in an expression")
	}
	seen[t] = true
	defer delete(seen, t)

	if t.Count() == 0 {
		return cty.EmptyTupleVal, nil
	}
	if n := t.Len(); int(n) == t.Count() {
		elems := make([]cty.Value, 0, n)
		for _, v := range t.Sequence() {
			conv, err := toCty(v, seen)
			if err != nil {
				return cty.NilVal, err
			}
			elems = append(elems, conv)
		}
		return cty.TupleVal(elems), nil
	}
	attrs := make(map[string]cty.Value, t.Count())
	for k, v := range t.All() {
		conv, err := toCty(v, seen)
		if err != nil {
			return cty.NilVal, err
		}
		attrs[value.ToString(k)] = conv
	}
	return cty.ObjectVal(attrs), nil
}
