package table

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"reflect"
)

var (
	// ErrNilKey is returned when nil is used as a key for a write.
	ErrNilKey = errors.New("table index is nil")
	// ErrNaNKey is returned when NaN is used as a key for a write.
	ErrNaNKey = errors.New("table index is NaN")
	// ErrInvalidNextKey is returned by Next for a key that is not in the table.
	ErrInvalidNextKey = errors.New("invalid key to 'next'")
)

type entry struct {
	key any
	val any
}

// Table is an insertion-ordered mapping from normalized keys to values.
// Assigning nil removes a key. The zero value is not usable; call New.
type Table struct {
	entries  []entry
	index    map[any]int
	dead     int
	fallback Resolver
}

// New creates an empty table.
func New() *Table {
	return &Table{index: make(map[any]int)}
}

// FromValues creates a sequence holding vals at indices 1..len(vals). Nil
// values leave a hole at their index.
func FromValues(vals ...any) *Table {
	t := New()
	for i, v := range vals {
		if v == nil {
			continue
		}
		t.put(int64(i+1), v)
	}
	return t
}

// NormalizeKey converts k to the canonical key form: Go integer kinds and
// integral floats become int64, float32 becomes float64.
func NormalizeKey(k any) any {
	switch n := k.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case float32:
		return NormalizeKey(float64(n))
	case float64:
		if n == math.Trunc(n) && n >= -(1<<63) && n < 1<<63 {
			return int64(n)
		}
		return n
	}
	return k
}

func checkKey(k any) error {
	if k == nil {
		return ErrNilKey
	}
	if f, ok := k.(float64); ok && math.IsNaN(f) {
		return ErrNaNKey
	}
	if !reflect.TypeOf(k).Comparable() {
		return fmt.Errorf("table index of type %T is not hashable", k)
	}
	return nil
}

func lookupable(k any) bool {
	if k == nil {
		return false
	}
	if f, ok := k.(float64); ok && math.IsNaN(f) {
		return false
	}
	return reflect.TypeOf(k).Comparable()
}

// RawGet returns the value stored under k without consulting the fallback.
func (t *Table) RawGet(k any) any {
	k = NormalizeKey(k)
	if !lookupable(k) {
		return nil
	}
	if i, ok := t.index[k]; ok {
		return t.entries[i].val
	}
	return nil
}

// RawSet stores v under k without consulting the fallback. A nil v removes k.
func (t *Table) RawSet(k, v any) error {
	k = NormalizeKey(k)
	if err := checkKey(k); err != nil {
		return err
	}
	t.put(k, v)
	return nil
}

// normalizeValue converts Go integer kinds to int64 and float32 to float64
// so that tables only hold runtime numbers.
func normalizeValue(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case float32:
		return float64(n)
	}
	return v
}

func (t *Table) put(k, v any) {
	v = normalizeValue(v)
	if i, ok := t.index[k]; ok {
		prev := t.entries[i].val
		t.entries[i].val = v
		switch {
		case prev == nil && v != nil:
			t.dead--
		case prev != nil && v == nil:
			t.dead++
		}
		return
	}
	if v == nil {
		return
	}
	if t.dead > 0 && t.dead*2 >= len(t.entries) {
		t.compact()
	}
	t.index[k] = len(t.entries)
	t.entries = append(t.entries, entry{key: k, val: v})
}

// compact drops removed entries. It runs only when a new key is inserted,
// which is not allowed during traversal.
func (t *Table) compact() {
	live := t.entries[:0]
	for _, e := range t.entries {
		if e.val == nil {
			delete(t.index, e.key)
			continue
		}
		t.index[e.key] = len(live)
		live = append(live, e)
	}
	for i := len(live); i < len(t.entries); i++ {
		t.entries[i] = entry{}
	}
	t.entries = live
	t.dead = 0
}

// Get performs a raw lookup and, on a miss, asks the fallback resolver.
func (t *Table) Get(k any) (any, error) {
	if v := t.RawGet(k); v != nil {
		return v, nil
	}
	if t.fallback == nil {
		return nil, nil
	}
	return t.fallback.Resolve(t, NormalizeKey(k))
}

// Set stores v under k. Writes never consult the fallback.
func (t *Table) Set(k, v any) error {
	return t.RawSet(k, v)
}

// Len returns the border of the table: the largest n such that t[n] is
// non-nil and t[n+1] is nil, scanning from 1. It ignores the fallback.
func (t *Table) Len() int64 {
	var n int64
	for t.RawGet(n+1) != nil {
		n++
	}
	return n
}

// Count returns the number of live entries.
func (t *Table) Count() int {
	return len(t.entries) - t.dead
}

// Next returns the entry following key in traversal order. A nil key starts
// the traversal; a nil returned key means the traversal is over.
func (t *Table) Next(key any) (any, any, error) {
	start := 0
	if key != nil {
		key = NormalizeKey(key)
		if !lookupable(key) {
			return nil, nil, ErrInvalidNextKey
		}
		i, ok := t.index[key]
		if !ok {
			return nil, nil, ErrInvalidNextKey
		}
		start = i + 1
	}
	for i := start; i < len(t.entries); i++ {
		if e := t.entries[i]; e.val != nil {
			return e.key, e.val, nil
		}
	}
	return nil, nil, nil
}

// All yields every live entry in insertion order.
func (t *Table) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for i := 0; i < len(t.entries); i++ {
			e := t.entries[i]
			if e.val == nil {
				continue
			}
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Sequence yields (i, t[i]) for i = 1, 2, ... until the first nil value.
func (t *Table) Sequence() iter.Seq2[int64, any] {
	return func(yield func(int64, any) bool) {
		for i := int64(1); ; i++ {
			v := t.RawGet(i)
			if v == nil || !yield(i, v) {
				return
			}
		}
	}
}

// Unpack returns t[i], ..., t[j] (raw reads, holes as nil).
func (t *Table) Unpack(i, j int64) []any {
	if i > j {
		return nil
	}
	out := make([]any, 0, j-i+1)
	for k := i; k <= j; k++ {
		out = append(out, t.RawGet(k))
	}
	return out
}

// Insert places v at position pos, shifting t[pos..Len()] up by one.
func (t *Table) Insert(pos int64, v any) error {
	n := t.Len()
	if pos < 1 || pos > n+1 {
		return fmt.Errorf("position %d out of bounds", pos)
	}
	for i := n; i >= pos; i-- {
		t.put(i+1, t.RawGet(i))
	}
	return t.RawSet(pos, v)
}

// Append stores v at Len()+1.
func (t *Table) Append(v any) error {
	return t.RawSet(t.Len()+1, v)
}

// Remove deletes t[pos], shifting the elements above it down, and returns
// the removed value.
func (t *Table) Remove(pos int64) (any, error) {
	n := t.Len()
	if n == 0 && (pos == 0 || pos == n) {
		return t.RawGet(pos), nil
	}
	if pos < 1 || pos > n+1 {
		return nil, fmt.Errorf("position %d out of bounds", pos)
	}
	removed := t.RawGet(pos)
	for i := pos; i < n; i++ {
		t.put(i, t.RawGet(i+1))
	}
	if pos <= n {
		t.put(n, nil)
	}
	return removed, nil
}

// SetFallback installs r as the resolver consulted by Get on a miss. A nil
// r removes the fallback.
func (t *Table) SetFallback(r Resolver) {
	t.fallback = r
}

// Fallback returns the installed resolver, or nil.
func (t *Table) Fallback() Resolver {
	return t.fallback
}
