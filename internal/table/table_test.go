package table

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawSetThenRawGet_IgnoresFallback(t *testing.T) {
	tbl := New()
	tbl.SetFallback(Default("default"))

	require.NoError(t, tbl.RawSet("x", int64(42)))

	assert.Equal(t, int64(42), tbl.RawGet("x"))
	v, err := tbl.Get("x")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestGet_FallbackOnMiss(t *testing.T) {
	t.Run("default value", func(t *testing.T) {
		tbl := New()
		tbl.SetFallback(Default(int64(0)))

		v, err := tbl.Get("missing")
		require.NoError(t, err)
		assert.Equal(t, int64(0), v)
		assert.Nil(t, tbl.RawGet("missing"), "raw access must bypass the fallback")
	})

	t.Run("delegate table is read raw", func(t *testing.T) {
		grand := New()
		require.NoError(t, grand.RawSet("deep", "grand"))
		parent := New()
		require.NoError(t, parent.RawSet("color", "blue"))
		parent.SetFallback(Delegate(grand))

		child := New()
		child.SetFallback(Delegate(parent))

		v, err := child.Get("color")
		require.NoError(t, err)
		assert.Equal(t, "blue", v)

		v, err = child.Get("deep")
		require.NoError(t, err)
		assert.Nil(t, v, "delegation is a single hop")
	})

	t.Run("resolver function", func(t *testing.T) {
		tbl := New()
		tbl.SetFallback(ResolverFunc(func(_ *Table, key any) (any, error) {
			if key == "bad" {
				return nil, errors.New("no such key")
			}
			return key, nil
		}))

		v, err := tbl.Get(int64(7))
		require.NoError(t, err)
		assert.Equal(t, int64(7), v)

		_, err = tbl.Get("bad")
		require.EqualError(t, err, "no such key")
	})

	t.Run("no fallback", func(t *testing.T) {
		v, err := New().Get("x")
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestRawSet_KeyErrors(t *testing.T) {
	tbl := New()
	assert.ErrorIs(t, tbl.RawSet(nil, 1), ErrNilKey)
	assert.ErrorIs(t, tbl.RawSet(math.NaN(), 1), ErrNaNKey)
	assert.Error(t, tbl.RawSet([]int{1}, 1))
	assert.Nil(t, tbl.RawGet(nil))
	assert.Nil(t, tbl.RawGet(math.NaN()))
}

func TestNormalizeKey(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.RawSet(2.0, "two"))
	require.NoError(t, tbl.RawSet(1, "one"))

	assert.Equal(t, "two", tbl.RawGet(int64(2)))
	assert.Equal(t, "one", tbl.RawGet(1.0))
	assert.Equal(t, int64(2), tbl.Len())

	require.NoError(t, tbl.RawSet(1.5, "half"))
	assert.Equal(t, "half", tbl.RawGet(1.5))
}

func TestSequence_EnumeratedTraversal(t *testing.T) {
	tbl := FromValues(int64(10), int64(20), int64(30))
	require.NoError(t, tbl.RawSet("name", "ignored"))

	var got [][2]any
	for i, v := range tbl.Sequence() {
		got = append(got, [2]any{i, v})
	}

	assert.Equal(t, [][2]any{
		{int64(1), int64(10)},
		{int64(2), int64(20)},
		{int64(3), int64(30)},
	}, got)
}

func TestSequence_StopsAtHole(t *testing.T) {
	tbl := FromValues("a", nil, "c")

	count := 0
	for range tbl.Sequence() {
		count++
	}

	assert.Equal(t, 1, count)
	assert.Equal(t, int64(1), tbl.Len())
}

func TestNext_InsertionOrderAndDeletion(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.RawSet("x", 1))
	require.NoError(t, tbl.RawSet("y", 2))
	require.NoError(t, tbl.RawSet("z", 3))

	var keys []any
	k, _, err := tbl.Next(nil)
	require.NoError(t, err)
	for k != nil {
		keys = append(keys, k)
		// Clearing the current field during traversal is allowed.
		require.NoError(t, tbl.RawSet(k, nil))
		k, _, err = tbl.Next(k)
		require.NoError(t, err)
	}

	assert.Equal(t, []any{"x", "y", "z"}, keys)
	assert.Equal(t, 0, tbl.Count())

	_, _, err = tbl.Next("unknown")
	assert.ErrorIs(t, err, ErrInvalidNextKey)
}

func TestCompaction_KeepsOrder(t *testing.T) {
	tbl := New()
	for i := 1; i <= 6; i++ {
		require.NoError(t, tbl.RawSet(i, i*10))
	}
	for i := 1; i <= 4; i++ {
		require.NoError(t, tbl.RawSet(i, nil))
	}
	require.NoError(t, tbl.RawSet("new", true))

	var keys []any
	for k := range tbl.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []any{int64(5), int64(6), "new"}, keys)
	assert.Equal(t, 3, tbl.Count())
}

func TestInsertRemoveUnpack(t *testing.T) {
	tbl := FromValues("a", "c")

	require.NoError(t, tbl.Insert(2, "b"))
	require.NoError(t, tbl.Append("d"))
	assert.Equal(t, []any{"a", "b", "c", "d"}, tbl.Unpack(1, tbl.Len()))

	removed, err := tbl.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "a", removed)
	assert.Equal(t, []any{"b", "c", "d"}, tbl.Unpack(1, tbl.Len()))

	assert.Error(t, tbl.Insert(9, "x"))
	assert.Nil(t, tbl.Unpack(3, 2))
	assert.Equal(t, []any{"d", nil}, tbl.Unpack(3, 4))
}

func TestFallbackOrigin(t *testing.T) {
	src := New()
	assert.Equal(t, src, Delegate(src).(Origin).Origin())
	assert.Equal(t, "d", Default("d").(Origin).Origin())
}

func TestStoredValues_AreNormalized(t *testing.T) {
	testCases := []struct {
		name string
		in   any
		want any
	}{
		{name: "int", in: 10, want: int64(10)},
		{name: "int32", in: int32(-3), want: int64(-3)},
		{name: "uint8", in: uint8(7), want: int64(7)},
		{name: "float32", in: float32(0.5), want: float64(0.5)},
		{name: "integral float stays float", in: 2.0, want: 2.0},
		{name: "string untouched", in: "x", want: "x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			tbl := New()

			// Act
			require.NoError(t, tbl.RawSet("k", tc.in))
			seq := FromValues(tc.in)

			// Assert
			assert.Equal(t, tc.want, tbl.RawGet("k"))
			assert.Equal(t, tc.want, seq.RawGet(1))
		})
	}
}
