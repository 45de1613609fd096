package schema

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Kind tags how a form's field list was found in storage.
type Kind int

const (
	// KindJSONArray: the column holds a JSON array.
	KindJSONArray Kind = iota
	// KindEncodedString: the column holds a JSON string whose content is a JSON array.
	KindEncodedString
	// KindCorrupt: anything else (empty, malformed, not an array, encoded more than twice).
	KindCorrupt
)

func (k Kind) String() string {
	switch k {
	case KindJSONArray:
		return "json_array"
	case KindEncodedString:
		return "encoded_string"
	default:
		return "corrupt"
	}
}

// StoredFields is the classified raw value of a form's `fields` column.
type StoredFields struct {
	Kind     Kind
	elements []json.RawMessage
}

// Classify parses the raw column once, and a second time when the first parse yields a string.
func Classify(raw string) StoredFields {
	first := bytes.TrimSpace([]byte(raw))
	if len(first) == 0 {
		return StoredFields{Kind: KindCorrupt}
	}

	switch first[0] {
	case '[':
		if elems, ok := decodeArray(first); ok {
			return StoredFields{Kind: KindJSONArray, elements: elems}
		}
	case '"':
		var inner string
		if err := json.Unmarshal(first, &inner); err != nil {
			return StoredFields{Kind: KindCorrupt}
		}
		second := bytes.TrimSpace([]byte(inner))
		if len(second) > 0 && second[0] == '[' {
			if elems, ok := decodeArray(second); ok {
				return StoredFields{Kind: KindEncodedString, elements: elems}
			}
		}
	}
	return StoredFields{Kind: KindCorrupt}
}

func decodeArray(b []byte) ([]json.RawMessage, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal(b, &elems); err != nil {
		return nil, false
	}
	if elems == nil {
		elems = []json.RawMessage{}
	}
	return elems, true
}

// Corrupt reports whether the stored value could not be read as a field list.
func (s StoredFields) Corrupt() bool { return s.Kind == KindCorrupt }

// Descriptors converts every element into a FieldDescriptor with defaults backfilled.
// The result is never nil.
func (s StoredFields) Descriptors() []FieldDescriptor {
	out := make([]FieldDescriptor, 0, len(s.elements))
	for i, el := range s.elements {
		out = append(out, descriptorFrom(i, el))
	}
	return out
}

func descriptorFrom(index int, el json.RawMessage) FieldDescriptor {
	fd := FieldDescriptor{Type: TypeText, Options: []string{}}

	var obj map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(el))
	dec.UseNumber()
	if err := dec.Decode(&obj); err == nil && obj != nil {
		fd.ID = asString(obj["id"])
		fd.Name = asString(obj["name"])
		fd.Label = asString(obj["label"])
		fd.Placeholder = asString(obj["placeholder"])
		if t := asString(obj["type"]); t != "" {
			fd.Type = t
		}
		fd.Required = asBool(obj["required"])
		fd.Options = asStrings(obj["options"])
		fd.Min = asFloat(obj["min"])
		fd.Max = asFloat(obj["max"])
	}

	if strings.TrimSpace(fd.ID) == "" {
		fd.ID = defaultID(index)
	}
	return fd
}

/* ===================== loose scalar readers ===================== */

func asString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func asBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	if s := strings.ToLower(strings.TrimSpace(asString(raw))); s != "" {
		return s == "true" || s == "1" || s == "yes"
	}
	return false
}

func asFloat(raw json.RawMessage) *float64 {
	s := strings.TrimSpace(asString(raw))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func asStrings(raw json.RawMessage) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		// "a, b, c" or one option per line
		s := asString(raw)
		sep := ","
		if strings.Contains(s, "\n") {
			sep = "\n"
		}
		for _, part := range strings.Split(s, sep) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}

	for _, it := range items {
		if s := asString(it); s != "" {
			out = append(out, s)
			continue
		}
		var opt struct {
			Label json.RawMessage `json:"label"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(it, &opt); err == nil {
			if v := asString(opt.Value); v != "" {
				out = append(out, v)
			} else if l := asString(opt.Label); l != "" {
				out = append(out, l)
			}
		}
	}
	return out
}
