package schema

import (
	"encoding/json"
)

// Result is the canonical in-memory field list of a form.
type Result struct {
	Fields      []FieldDescriptor
	Kind        Kind
	ParseFailed bool
}

// Normalize turns a stored `fields` value into descriptors. It never fails:
// unreadable input yields an empty list with ParseFailed set.
func Normalize(raw string) Result {
	stored := Classify(raw)
	return Result{
		Fields:      stored.Descriptors(),
		Kind:        stored.Kind,
		ParseFailed: stored.Corrupt(),
	}
}

// Fields is Normalize without the diagnostics.
func Fields(raw string) []FieldDescriptor {
	return Normalize(raw).Fields
}

// Encode writes descriptors back as a single-encoded JSON array.
func Encode(fields []FieldDescriptor) (string, error) {
	if fields == nil {
		fields = []FieldDescriptor{}
	}
	for i := range fields {
		if fields[i].Options == nil {
			fields[i].Options = []string{}
		}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Backfill applies the same defaults Normalize would to descriptors built in memory.
func Backfill(fields []FieldDescriptor) []FieldDescriptor {
	out := make([]FieldDescriptor, len(fields))
	for i, f := range fields {
		if f.ID == "" {
			f.ID = defaultID(i)
		}
		if f.Type == "" {
			f.Type = TypeText
		}
		if f.Options == nil {
			f.Options = []string{}
		}
		out[i] = f
	}
	return out
}
