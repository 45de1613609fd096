package resolver

import (
	"strings"
	"testing"

	"skyouth_backend/internals/features/forms/schema"
)

func TestSubmitterName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data Data
		want string
	}{
		{name: "full name label", data: Data{"Full Name": "Juan Dela Cruz"}, want: "Juan Dela Cruz"},
		{name: "empty data", data: Data{}, want: AnonymousName},
		{name: "first alias wins", data: Data{"name": "second", "Full Name": "first"}, want: "first"},
		{name: "blank value skipped", data: Data{"Full Name": "   ", "fullName": "Maria Clara"}, want: "Maria Clara"},
		{name: "prompt style key", data: Data{"Enter your Full Name": "Jose Rizal"}, want: "Jose Rizal"},
		{name: "unknown keys only", data: Data{"Nickname": "JR"}, want: AnonymousName},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SubmitterName(tt.data); got != tt.want {
				t.Fatalf("SubmitterName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubmitterEmail_Absent(t *testing.T) {
	t.Parallel()

	if _, ok := SubmitterEmail(Data{"Full Name": "x"}); ok {
		t.Fatal("expected no email")
	}
	got, ok := SubmitterEmail(Data{"Email Address": " juan@example.com "})
	if !ok || got != "juan@example.com" {
		t.Fatalf("email = %q, %v", got, ok)
	}
}

func TestNewTable_RejectsDuplicateAndAmbiguousAliases(t *testing.T) {
	t.Parallel()

	if _, err := NewTable(Entry{Attr: "a", Aliases: []string{"x", "x"}}); err == nil || !strings.Contains(err.Error(), "repeated") {
		t.Fatalf("expected repeated alias error, got %v", err)
	}
	if _, err := NewTable(
		Entry{Attr: "a", Aliases: []string{"x"}},
		Entry{Attr: "b", Aliases: []string{"x"}},
	); err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Fatalf("expected ambiguity error, got %v", err)
	}
	if _, err := NewTable(Entry{Attr: "a"}); err == nil {
		t.Fatal("expected error for attribute without aliases")
	}
	if _, err := NewTable(Entry{Attr: "a", Aliases: []string{"x"}}, Entry{Attr: "a", Aliases: []string{"y"}}); err == nil {
		t.Fatal("expected error for attribute declared twice")
	}
}

func TestTable_PreservesOrder(t *testing.T) {
	t.Parallel()

	got := Submitter.Aliases(AttrName)
	if len(got) == 0 || got[0] != "Full Name" {
		t.Fatalf("name aliases = %v", got)
	}
	attrs := Submitter.Attributes()
	if strings.Join(attrs, ",") != "name,email,phone" {
		t.Fatalf("attributes = %v", attrs)
	}
	if owner, ok := Submitter.Owner("Mobile Number"); !ok || owner != AttrPhone {
		t.Fatalf("owner = %q, %v", owner, ok)
	}
}

func TestPaymentFor(t *testing.T) {
	t.Parallel()

	field := schema.FieldDescriptor{ID: "field-3", Name: "registrationFee", Label: "Registration Fee", Type: schema.TypeGcashReceipt}

	tests := []struct {
		name      string
		data      Data
		wantValid bool
		wantAmt   float64
	}{
		{name: "numeric string", data: Data{"registrationFee_amount": "150", "registrationFee_receipt": "uploads/r.png"}, wantValid: true, wantAmt: 150},
		{name: "json number", data: mustParse(t, `{"registrationFee_amount": 99.5}`), wantValid: true, wantAmt: 99.5},
		{name: "peso prefix and comma", data: Data{"registrationFee_amount": "₱ 1,250.00"}, wantValid: true, wantAmt: 1250},
		{name: "zero", data: Data{"registrationFee_amount": "0"}},
		{name: "negative", data: Data{"registrationFee_amount": "-5"}},
		{name: "garbage", data: Data{"registrationFee_amount": "abc"}},
		{name: "absent", data: Data{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := PaymentFor(tt.data, field)
			if p.Valid() != tt.wantValid {
				t.Fatalf("valid = %v, want %v (amount %v)", p.Valid(), tt.wantValid, p.Amount)
			}
			if tt.wantValid && *p.Amount != tt.wantAmt {
				t.Fatalf("amount = %v, want %v", *p.Amount, tt.wantAmt)
			}
		})
	}

	p := PaymentFor(Data{"registrationFee_receipt": "uploads/r.png"}, field)
	if p.Receipt == nil || *p.Receipt != "uploads/r.png" {
		t.Fatalf("receipt = %v", p.Receipt)
	}
}

func TestParseAmount_PlainDecimalsOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"1500", 1500, true},
		{"1,500.50", 1500.50, true},
		{"PHP 200", 200, true},
		{"₱.5", 0.5, true},
		{"0x1p4", 0, false},
		{"1_000", 0, false},
		{"1e3", 0, false},
		{"+100", 0, false},
		{"-100", 0, false},
		{"1.2.3", 0, false},
		{".", 0, false},
		{"Inf", 0, false},
		{"NaN", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseAmount(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, %v; want %v, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseData(t *testing.T) {
	t.Parallel()

	d, err := ParseData([]byte(`"{\"Full Name\":\"Ana\",\"age\":19,\"tags\":[\"a\",\"b\"],\"ok\":true}"`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := d.Get("Full Name"); v != "Ana" {
		t.Fatalf("name = %q", v)
	}
	if v, _ := d.Get("age"); v != "19" {
		t.Fatalf("age = %q", v)
	}
	if v, _ := d.Get("tags"); v != "a, b" {
		t.Fatalf("tags = %q", v)
	}
	if v, _ := d.Get("ok"); v != "true" {
		t.Fatalf("ok = %q", v)
	}

	if _, err := ParseData([]byte(`{broken`)); err == nil {
		t.Fatal("expected error for corrupt data")
	}
	if d, ok := ParseDataLenient([]byte(`{broken`)); ok || len(d) != 0 {
		t.Fatalf("lenient parse = %v, %v", d, ok)
	}
	if d, err := ParseData(nil); err != nil || len(d) != 0 {
		t.Fatalf("empty input = %v, %v", d, err)
	}
}

func mustParse(t *testing.T, raw string) Data {
	t.Helper()
	d, err := ParseData([]byte(raw))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return d
}
