package schema

import (
	"fmt"
	"strings"
)

// Field types understood by the submission pipeline. Unknown types are kept as-is.
const (
	TypeText         = "text"
	TypeEmail        = "email"
	TypeTel          = "tel"
	TypeNumber       = "number"
	TypeTextarea     = "textarea"
	TypeSelect       = "select"
	TypeRadio        = "radio"
	TypeCheckbox     = "checkbox"
	TypeDate         = "date"
	TypeFile         = "file"
	TypeGcashReceipt = "gcashReceipt"
)

// Suffixes of the synthesized keys a payment field writes into submission data.
const (
	AmountSuffix  = "_amount"
	ReceiptSuffix = "_receipt"
)

// FieldDescriptor is one normalized form input.
type FieldDescriptor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Options     []string `json:"options"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

func (f FieldDescriptor) IsPayment() bool { return f.Type == TypeGcashReceipt }

// AmountKey is the data key holding the paid amount of a payment field.
func (f FieldDescriptor) AmountKey() string { return f.Name + AmountSuffix }

// ReceiptKey is the data key holding the receipt reference of a payment field.
func (f FieldDescriptor) ReceiptKey() string { return f.Name + ReceiptSuffix }

// DisplayName prefers the label, then the name, then the id.
func (f FieldDescriptor) DisplayName() string {
	for _, s := range []string{f.Label, f.Name, f.ID} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

func defaultID(index int) string { return fmt.Sprintf("field-%d", index) }

// PaymentFields filters the descriptors down to gcashReceipt fields, keeping order.
func PaymentFields(fields []FieldDescriptor) []FieldDescriptor {
	out := make([]FieldDescriptor, 0)
	for _, f := range fields {
		if f.IsPayment() {
			out = append(out, f)
		}
	}
	return out
}

// DuplicateNames returns every field name that appears more than once (in first-seen order).
// Empty names are ignored.
func DuplicateNames(fields []FieldDescriptor) []string {
	seen := make(map[string]int, len(fields))
	var dups []string
	for _, f := range fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			continue
		}
		seen[name]++
		if seen[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}
