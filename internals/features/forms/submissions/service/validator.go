package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	formModel "skyouth_backend/internals/features/forms/forms/model"
	"skyouth_backend/internals/features/forms/resolver"
	"skyouth_backend/internals/features/forms/schema"
	"skyouth_backend/internals/helpers/apperror"
)

// CheckAvailability applies the form-level rules in order: open, deadline, limit.
// existing is the current submission count; it is only consulted when a limit is set.
func CheckAvailability(form *formModel.Form, now time.Time, existing int64) error {
	if !form.AcceptsSubmissions() {
		return apperror.ErrFormUnavailable
	}
	if form.FormSubmissionDeadline != nil && form.FormSubmissionDeadline.Before(now) {
		return apperror.ErrDeadlinePassed
	}
	if form.FormSubmissionLimit != nil && existing >= int64(*form.FormSubmissionLimit) {
		return apperror.ErrLimitReached
	}
	return nil
}

// ValidateData checks submitted values against the form's field constraints and
// returns per-field messages keyed by the field name (or label when unnamed).
func ValidateData(v *validator.Validate, fields []schema.FieldDescriptor, data resolver.Data) map[string][]string {
	errs := map[string][]string{}
	add := func(key, msg string) { errs[key] = append(errs[key], msg) }

	for _, f := range fields {
		key := fieldKey(f)
		if key == "" {
			continue
		}
		value, present := valueFor(f, data)

		if !present {
			if f.Required {
				add(key, fmt.Sprintf("%s is required", f.DisplayName()))
			}
			continue
		}

		switch f.Type {
		case schema.TypeEmail:
			if err := v.Var(value, "email"); err != nil {
				add(key, fmt.Sprintf("%s must be a valid email address", f.DisplayName()))
			}
		case schema.TypeNumber:
			n, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
			if err != nil {
				add(key, fmt.Sprintf("%s must be a number", f.DisplayName()))
				continue
			}
			if f.Min != nil && n < *f.Min {
				add(key, fmt.Sprintf("%s must be at least %s", f.DisplayName(), formatFloat(*f.Min)))
			}
			if f.Max != nil && n > *f.Max {
				add(key, fmt.Sprintf("%s must be at most %s", f.DisplayName(), formatFloat(*f.Max)))
			}
		case schema.TypeSelect, schema.TypeRadio:
			if len(f.Options) > 0 && !containsFold(f.Options, value) {
				add(key, fmt.Sprintf("%s must be one of: %s", f.DisplayName(), strings.Join(f.Options, ", ")))
			}
		case schema.TypeGcashReceipt:
			if amt, ok := resolver.ParseAmount(value); !ok || amt <= 0 {
				add(key, fmt.Sprintf("%s amount must be a positive number", f.DisplayName()))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func fieldKey(f schema.FieldDescriptor) string {
	if k := strings.TrimSpace(f.Name); k != "" {
		return k
	}
	return strings.TrimSpace(f.Label)
}

// valueFor looks the value up by name, then label. Payment fields are answered by
// their synthesized amount key.
func valueFor(f schema.FieldDescriptor, data resolver.Data) (string, bool) {
	if f.IsPayment() {
		if f.Name == "" {
			return "", false
		}
		return data.Get(f.AmountKey())
	}
	if f.Name != "" {
		if v, ok := data.Get(f.Name); ok {
			return v, true
		}
	}
	if f.Label != "" {
		return data.Get(f.Label)
	}
	return "", false
}

func containsFold(options []string, v string) bool {
	v = strings.TrimSpace(v)
	for _, o := range options {
		if strings.EqualFold(strings.TrimSpace(o), v) {
			return true
		}
	}
	return false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
