package value

import (
	"math"
	"testing"

	"github.com/specialistvlad/builtintour/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToString(t *testing.T) {
	nested := table.FromValues(int64(10), int64(20), int64(30))
	require.NoError(t, nested.RawSet("x", int64(1)))
	require.NoError(t, nested.RawSet("two words", "s"))
	require.NoError(t, nested.RawSet(2.5, true))

	cyclic := table.New()
	require.NoError(t, cyclic.RawSet("self", cyclic))

	testCases := []struct {
		name     string
		in       any
		expected string
	}{
		{name: "nil", in: nil, expected: "nil"},
		{name: "true", in: true, expected: "true"},
		{name: "integer", in: int64(-42), expected: "-42"},
		{name: "go int", in: 7, expected: "7"},
		{name: "integral float", in: 4.0, expected: "4.0"},
		{name: "fraction", in: 0.1, expected: "0.1"},
		{name: "fourteen digits", in: math.Pi, expected: "3.1415926535898"},
		{name: "large float", in: 1e15, expected: "1e+15"},
		{name: "positive infinity", in: math.Inf(1), expected: "inf"},
		{name: "negative infinity", in: math.Inf(-1), expected: "-inf"},
		{name: "nan", in: math.NaN(), expected: "nan"},
		{name: "string", in: "hi", expected: "hi"},
		{name: "sequence", in: table.FromValues(int64(1), "a"), expected: `{1, "a"}`},
		{name: "mixed table", in: nested, expected: `{10, 20, 30, x=1, ["two words"]="s", [2.5]=true}`},
		{name: "empty table", in: table.New(), expected: "{}"},
		{name: "cycle", in: cyclic, expected: "{self={...}}"},
		{name: "named function", in: NewFunction("print", nil), expected: "function: print"},
		{name: "anonymous function", in: NewFunction("", nil), expected: "function"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToString(tc.in))
		})
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "nil", TypeName(nil))
	assert.Equal(t, "boolean", TypeName(false))
	assert.Equal(t, "number", TypeName(int64(1)))
	assert.Equal(t, "number", TypeName(1.5))
	assert.Equal(t, "string", TypeName(""))
	assert.Equal(t, "table", TypeName(table.New()))
	assert.Equal(t, "function", TypeName(NewFunction("f", nil)))
	assert.Equal(t, "userdata", TypeName(struct{}{}))
}

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		in       string
		expected any
		ok       bool
	}{
		{in: "10", expected: int64(10), ok: true},
		{in: "  -7  ", expected: int64(-7), ok: true},
		{in: "0x1F", expected: int64(31), ok: true},
		{in: "-0x10", expected: int64(-16), ok: true},
		{in: "0xffffffffffffffff", expected: int64(-1), ok: true},
		{in: "0x1p4", expected: 16.0, ok: true},
		{in: "0x1.8", expected: 1.5, ok: true},
		{in: "3.5", expected: 3.5, ok: true},
		{in: "1e2", expected: 100.0, ok: true},
		{in: ".5", expected: 0.5, ok: true},
		{in: "9223372036854775808", expected: 9223372036854775808.0, ok: true},
		{in: "abc", ok: false},
		{in: "", ok: false},
		{in: "inf", ok: false},
		{in: "nan", ok: false},
		{in: "1_000", ok: false},
		{in: "0x", ok: false},
		{in: "1e", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseNumber(tc.in)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestParseInteger(t *testing.T) {
	n, ok := ParseInteger("10", 2)
	require.True(t, ok)
	assert.Equal(t, int64(2), n)

	n, ok = ParseInteger("z", 36)
	require.True(t, ok)
	assert.Equal(t, int64(35), n)

	n, ok = ParseInteger(" -ff ", 16)
	require.True(t, ok)
	assert.Equal(t, int64(-255), n)

	_, ok = ParseInteger("8", 8)
	assert.False(t, ok)
	_, ok = ParseInteger("", 10)
	assert.False(t, ok)
}

func TestToInteger(t *testing.T) {
	n, ok := ToInteger(3.0)
	require.True(t, ok)
	assert.Equal(t, int64(3), n)

	_, ok = ToInteger(3.5)
	assert.False(t, ok)
	_, ok = ToInteger(math.Inf(1))
	assert.False(t, ok)

	n, ok = ToInteger("12")
	require.True(t, ok)
	assert.Equal(t, int64(12), n)
}

func TestRawEqual(t *testing.T) {
	tbl := table.New()
	fn := NewFunction("f", nil)

	assert.True(t, RawEqual(int64(1), 1.0))
	assert.True(t, RawEqual(1.0, int64(1)))
	assert.False(t, RawEqual(int64(1), "1"))
	assert.True(t, RawEqual(tbl, tbl))
	assert.False(t, RawEqual(tbl, table.New()))
	assert.True(t, RawEqual(fn, fn))
	assert.True(t, RawEqual(nil, nil))
	assert.False(t, RawEqual(nil, false))
	assert.False(t, RawEqual(math.NaN(), math.NaN()))
}

func TestArithmetic(t *testing.T) {
	t.Run("float division by zero is not an error", func(t *testing.T) {
		q, err := Divide(int64(10), int64(0))
		require.NoError(t, err)
		assert.True(t, math.IsInf(q, 1))

		q, err = Divide(0, 0)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(q))
	})

	t.Run("integer floor division by zero raises", func(t *testing.T) {
		_, err := FloorDivide(int64(1), int64(0))
		require.ErrorIs(t, err, ErrIntegerDivideByZero)
		assert.EqualError(t, err, "attempt to perform 'n//0'")
	})

	t.Run("floor division rounds down", func(t *testing.T) {
		q, err := FloorDivide(int64(-7), int64(2))
		require.NoError(t, err)
		assert.Equal(t, int64(-4), q)

		q, err = FloorDivide(7.0, int64(2))
		require.NoError(t, err)
		assert.Equal(t, 3.0, q)
	})

	t.Run("modulo takes the divisor sign", func(t *testing.T) {
		r, err := Modulo(int64(-7), int64(3))
		require.NoError(t, err)
		assert.Equal(t, int64(2), r)

		r, err = Modulo(5.5, -2.0)
		require.NoError(t, err)
		assert.Equal(t, -0.5, r)

		_, err = Modulo(int64(1), int64(0))
		assert.ErrorIs(t, err, ErrIntegerModuloByZero)
	})

	t.Run("non numeric operand", func(t *testing.T) {
		_, err := Divide("x", int64(1))
		assert.EqualError(t, err, "attempt to perform arithmetic on a string value")
	})
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(false))
	assert.True(t, Truthy(int64(0)))
	assert.True(t, Truthy(""))
}
