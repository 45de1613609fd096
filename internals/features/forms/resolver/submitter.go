package resolver

import (
	"math"
	"strconv"
	"strings"

	"skyouth_backend/internals/features/forms/schema"
)

const (
	AttrName  = "name"
	AttrEmail = "email"
	AttrPhone = "phone"

	// AnonymousName is returned when no name alias resolves.
	AnonymousName = "Anonymous User"
)

// Submitter resolves who filled in a submission. Alias order is part of the wire
// contract with the form builder and must not be reshuffled.
var Submitter = MustTable(
	Entry{Attr: AttrName, Aliases: []string{
		"Full Name",
		"fullName",
		"full_name",
		"name",
		"Name",
		"Enter your Full Name",
		"Complete Name",
		"Your Name",
	}},
	Entry{Attr: AttrEmail, Aliases: []string{
		"Email",
		"email",
		"Email Address",
		"emailAddress",
		"email_address",
		"Enter your Email",
		"E-mail",
	}},
	Entry{Attr: AttrPhone, Aliases: []string{
		"Contact Number",
		"contactNumber",
		"Mobile Number",
		"mobileNumber",
		"phone",
		"Phone Number",
	}},
)

// SubmitterName returns the submitter's name or AnonymousName.
func SubmitterName(data Data) string {
	if v, ok := Submitter.Lookup(data, AttrName); ok {
		return v
	}
	return AnonymousName
}

// SubmitterEmail returns the submitter's email when one resolves.
func SubmitterEmail(data Data) (string, bool) {
	return Submitter.Lookup(data, AttrEmail)
}

// SubmitterPhone returns the submitter's phone when one resolves.
func SubmitterPhone(data Data) (string, bool) {
	return Submitter.Lookup(data, AttrPhone)
}

/* ===================== payment fields ===================== */

// Payment is what a gcashReceipt field contributed to a submission.
type Payment struct {
	Field   schema.FieldDescriptor
	Amount  *float64
	Receipt *string
}

// Valid reports whether the payment carries a positive amount.
func (p Payment) Valid() bool {
	return p.Amount != nil && *p.Amount > 0
}

// PaymentFor reads {name}_amount and {name}_receipt of one payment field.
func PaymentFor(data Data, field schema.FieldDescriptor) Payment {
	p := Payment{Field: field}
	if raw, ok := data.Get(field.AmountKey()); ok {
		if amt, ok := ParseAmount(raw); ok {
			p.Amount = &amt
		}
	}
	if receipt, ok := data.Get(field.ReceiptKey()); ok {
		p.Receipt = &receipt
	}
	return p
}

// Payments resolves every gcashReceipt field of fields, in schema order.
func Payments(data Data, fields []schema.FieldDescriptor) []Payment {
	pay := schema.PaymentFields(fields)
	out := make([]Payment, 0, len(pay))
	for _, f := range pay {
		out = append(out, PaymentFor(data, f))
	}
	return out
}

// ParseAmount accepts "1500", "1,500.50", "₱ 1500" and "PHP 1500". After the
// prefix and thousands separators are stripped only digits and one "." may remain.
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	for _, prefix := range []string{"₱", "PHP", "Php", "php", "P"} {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
			break
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	if !plainDecimal(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// plainDecimal: at least one digit, at most one ".", nothing else (no sign,
// exponent, hex or underscore forms).
func plainDecimal(s string) bool {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
