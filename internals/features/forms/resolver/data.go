package resolver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Data is a submission's raw key -> value map.
type Data map[string]any

// ParseData decodes stored submission data. Numbers are kept as json.Number so
// amounts and phone numbers are not rounded through float64.
func ParseData(raw []byte) (Data, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Data{}, nil
	}

	// some clients stored the object as a JSON string
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, fmt.Errorf("decode submission data: %w", err)
		}
		trimmed = bytes.TrimSpace([]byte(inner))
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var d Data
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode submission data: %w", err)
	}
	if d == nil {
		d = Data{}
	}
	return d, nil
}

// ParseDataLenient is ParseData that degrades to an empty map on corrupt input.
func ParseDataLenient(raw []byte) (Data, bool) {
	d, err := ParseData(raw)
	if err != nil {
		return Data{}, false
	}
	return d, true
}

// Get returns the rendered value under key when it is present and non-empty.
func (d Data) Get(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	s := Render(v)
	if s == "" {
		return "", false
	}
	return s, true
}

// Has reports whether key holds a non-empty value.
func (d Data) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Merge copies extra into d, overwriting existing keys.
func (d Data) Merge(extra map[string]string) Data {
	for k, v := range extra {
		d[k] = v
	}
	return d
}

// Keys returns the sorted keys of d.
func (d Data) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render turns a decoded JSON value into its canonical string form.
// Objects and null render as "".
func Render(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, it := range t {
			if s := Render(it); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case []string:
		parts := make([]string, 0, len(t))
		for _, it := range t {
			if s := strings.TrimSpace(it); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}
