package keycase

import (
	"encoding/json"
	"strings"
)

// Convention identifies the naming style of a mapping's keys.
type Convention int

const (
	// Snake is the snake_case convention used by platform APIs on the wire.
	Snake Convention = iota

	// Camel is the camelCase convention used by the library's public surface.
	Camel
)

// String returns the convention name.
func (c Convention) String() string {
	if c == Camel {
		return "camel"
	}
	return "snake"
}

// Opaque marks a subtree that must pass through conversion untouched.
// Use it for pre-serialized strings or other payloads whose shape happens
// to look like a convertible mapping.
type Opaque struct {
	Value interface{}
}

// ConvertKeys deeply rewrites every mapping key in v to the target
// convention and returns the converted tree. The input is never mutated.
//
// Values that are not a map[string]interface{} or []interface{} are returned
// unchanged. []byte, json.RawMessage, and Opaque values are returned with
// reference identity preserved and are never traversed.
func ConvertKeys(v interface{}, target Convention) interface{} {
	if target == Camel {
		return convert(v, ToCamel)
	}
	return convert(v, ToSnake)
}

// SnakeKeys converts every mapping key in v to snake_case.
// Equivalent to ConvertKeys(v, Snake).
func SnakeKeys(v interface{}) interface{} {
	return convert(v, ToSnake)
}

// CamelKeys converts every mapping key in v to camelCase.
// Equivalent to ConvertKeys(v, Camel).
func CamelKeys(v interface{}) interface{} {
	return convert(v, ToCamel)
}

func convert(v interface{}, rewrite func(string) string) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, child := range t {
			out[rewrite(k)] = convert(child, rewrite)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, child := range t {
			out[i] = convert(child, rewrite)
		}
		return out
	case []byte, json.RawMessage, Opaque:
		// Opaque payloads keep their identity.
		return v
	default:
		return v
	}
}

// ToCamel rewrites a single snake_case key to camelCase.
//
// The first non-empty segment is emitted as-is. An interior underscore run
// gives up one underscore as the capitalization boundary of the following
// segment, so "a__b" becomes "a_B"; extra underscores survive as literals.
// A run that cannot capitalize what follows (a digit, an already-uppercase
// letter, the end of the key) survives whole, as do leading runs. Keys
// without underscores pass through unchanged.
func ToCamel(key string) string {
	if !strings.ContainsRune(key, '_') {
		return key
	}

	var b strings.Builder
	b.Grow(len(key))

	emitted := false
	i := 0
	for i < len(key) {
		if key[i] != '_' {
			start := i
			for i < len(key) && key[i] != '_' {
				i++
			}
			b.WriteString(key[start:i])
			emitted = true
			continue
		}

		run := 0
		for i < len(key) && key[i] == '_' {
			run++
			i++
		}
		if !emitted || i == len(key) || key[i] < 'a' || key[i] > 'z' {
			// The run has nothing to capitalize, so it survives whole.
			b.WriteString(strings.Repeat("_", run))
			continue
		}

		b.WriteString(strings.Repeat("_", run-1))
		b.WriteByte(key[i] - ('a' - 'A'))
		i++
	}
	return b.String()
}

// ToSnake rewrites a single camelCase key to snake_case.
//
// Every uppercase ASCII letter starts a fresh boundary, so consecutive
// uppercase runs are split letter by letter. Keys without uppercase letters
// pass through unchanged.
func ToSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)

	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
