package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/builtintour/internal/table"
)

// ToString returns the display form of v. The output is deterministic: no
// addresses are printed, tables render their contents.
func ToString(v any) string {
	var sb strings.Builder
	writeValue(&sb, Normalize(v), false, map[*table.Table]bool{})
	return sb.String()
}

// Join renders vals with ToString and joins them with sep.
func Join(vals []any, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = ToString(v)
	}
	return strings.Join(parts, sep)
}

// FormatFloat renders f with 14 significant digits. A result that reads as
// an integer gets a ".0" suffix so floats stay distinguishable.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', 14, 64)
	if strings.Trim(s, "-0123456789") == "" {
		s += ".0"
	}
	return s
}

func writeValue(sb *strings.Builder, v any, quote bool, seen map[*table.Table]bool) {
	switch x := v.(type) {
	case nil:
		sb.WriteString("nil")
	case bool:
		sb.WriteString(strconv.FormatBool(x))
	case int64:
		sb.WriteString(strconv.FormatInt(x, 10))
	case float64:
		sb.WriteString(FormatFloat(x))
	case string:
		if quote {
			sb.WriteString(strconv.Quote(x))
		} else {
			sb.WriteString(x)
		}
	case *table.Table:
		writeTable(sb, x, seen)
	case *Function:
		if x.Name == "" {
			sb.WriteString("function")
		} else {
			sb.WriteString("function: " + x.Name)
		}
	case fmt.Stringer:
		sb.WriteString(x.String())
	default:
		fmt.Fprintf(sb, "%v", x)
	}
}

func writeTable(sb *strings.Builder, t *table.Table, seen map[*table.Table]bool) {
	if seen[t] {
		sb.WriteString("{...}")
		return
	}
	seen[t] = true
	defer delete(seen, t)

	sb.WriteByte('{')
	n := t.Len()
	first := true
	sep := func() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
	}
	for i := int64(1); i <= n; i++ {
		sep()
		writeValue(sb, t.RawGet(i), true, seen)
	}
	for k, val := range t.All() {
		if i, ok := k.(int64); ok && i >= 1 && i <= n {
			continue
		}
		sep()
		if s, ok := k.(string); ok && isIdentifier(s) {
			sb.WriteString(s)
		} else {
			sb.WriteByte('[')
			writeValue(sb, k, true, seen)
			sb.WriteByte(']')
		}
		sb.WriteByte('=')
		writeValue(sb, val, true, seen)
	}
	sb.WriteByte('}')
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
