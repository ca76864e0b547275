package table

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultNumberFormat renders fractional numbers the Indonesian way:
// dot thousands separator, comma decimal separator, two decimals.
const DefaultNumberFormat = "#.###,##"

// ParseValue converts a raw cell string into int64, float64 or the trimmed
// string. Codes with leading zeros stay strings so "012345" keeps its zero.
func ParseValue(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if len(s) > 1 && s[0] == '0' && s[1] != '.' && s[1] != ',' {
		return s
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// decimalComma matches id-ID numbers: "." groups thousands in threes and
// "," introduces the decimals, as in "1.234,5" or "85,50".
var decimalComma = regexp.MustCompile(`^[+-]?(\d{1,3}(\.\d{3})+|\d+)(,\d+)?$`)

// ParseDecimalComma is ParseValue for id-ID exports. Strings that do not
// look like an id-ID number, such as "98.5", go through ParseValue.
func ParseDecimalComma(s string) any {
	t := strings.TrimSpace(s)
	if !decimalComma.MatchString(t) || !strings.ContainsAny(t, ".,") {
		return ParseValue(s)
	}
	if len(t) > 1 && t[0] == '0' && t[1] != ',' {
		return t
	}
	n := strings.Replace(strings.ReplaceAll(t, ".", ""), ",", ".", 1)
	if !strings.Contains(t, ",") {
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i
		}
	}
	if f, err := strconv.ParseFloat(n, 64); err == nil {
		return f
	}
	return t
}

// FormatValue renders a cell value for display. Integers and integral floats
// are printed plainly so unit codes never gain separators; fractional values
// go through the humanize pattern (DefaultNumberFormat when empty).
func FormatValue(v any, pattern string) string {
	if pattern == "" {
		pattern = DefaultNumberFormat
	}
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float32:
		return formatFloat(float64(n), pattern)
	case float64:
		return formatFloat(n, pattern)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		if f, err := n.Float64(); err == nil {
			return formatFloat(f, pattern)
		}
		return n.String()
	case bool:
		return strconv.FormatBool(n)
	default:
		return fmt.Sprint(n)
	}
}

func formatFloat(f float64, pattern string) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return humanize.FormatFloat(pattern, f)
}

// Number reports v as a float64 when it holds a numeric value.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
