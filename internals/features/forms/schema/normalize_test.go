package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalize_StoredShapes(t *testing.T) {
	t.Parallel()

	array := `[{"name":"fullName","label":"Full Name","type":"text","required":true},{"name":"pay","label":"Registration Fee","type":"gcashReceipt"}]`
	encoded, err := json.Marshal(array)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	tests := []struct {
		name       string
		raw        string
		wantKind   Kind
		wantLen    int
		wantFailed bool
	}{
		{name: "json array", raw: array, wantKind: KindJSONArray, wantLen: 2},
		{name: "double encoded", raw: string(encoded), wantKind: KindEncodedString, wantLen: 2},
		{name: "empty array", raw: `[]`, wantKind: KindJSONArray, wantLen: 0},
		{name: "empty string", raw: ``, wantKind: KindCorrupt, wantFailed: true},
		{name: "malformed", raw: `[{"name":`, wantKind: KindCorrupt, wantFailed: true},
		{name: "object not array", raw: `{"name":"x"}`, wantKind: KindCorrupt, wantFailed: true},
		{name: "null", raw: `null`, wantKind: KindCorrupt, wantFailed: true},
		{name: "encoded object", raw: `"{\"a\":1}"`, wantKind: KindCorrupt, wantFailed: true},
		{name: "triple encoded", raw: mustQuote(t, string(encoded)), wantKind: KindCorrupt, wantFailed: true},
		{name: "plain string", raw: `"hello"`, wantKind: KindCorrupt, wantFailed: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.raw)
			if got.Kind != tt.wantKind {
				t.Fatalf("kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.ParseFailed != tt.wantFailed {
				t.Fatalf("parse failed = %v, want %v", got.ParseFailed, tt.wantFailed)
			}
			if got.Fields == nil {
				t.Fatal("fields must never be nil")
			}
			if len(got.Fields) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got.Fields), tt.wantLen)
			}
			for _, f := range got.Fields {
				if f.ID == "" {
					t.Fatalf("descriptor without id: %+v", f)
				}
			}
		})
	}
}

func TestNormalize_BackfillsDefaults(t *testing.T) {
	t.Parallel()

	raw := `[{"name":"a"},{"id":"custom","name":"b","type":"select","options":["x",{"label":"Y","value":"y"},3]},"junk",{"name":"c","required":"true","min":"1","max":10}]`
	got := Normalize(raw)
	if got.ParseFailed {
		t.Fatal("unexpected parse failure")
	}
	if len(got.Fields) != 4 {
		t.Fatalf("expected 4 descriptors, got %d", len(got.Fields))
	}

	a := got.Fields[0]
	if a.ID != "field-0" || a.Type != TypeText || a.Required || a.Options == nil || len(a.Options) != 0 {
		t.Fatalf("defaults not applied: %+v", a)
	}

	b := got.Fields[1]
	if b.ID != "custom" {
		t.Fatalf("existing id overwritten: %q", b.ID)
	}
	if strings.Join(b.Options, ",") != "x,y,3" {
		t.Fatalf("options = %v", b.Options)
	}

	junk := got.Fields[2]
	if junk.ID != "field-2" || junk.Type != TypeText {
		t.Fatalf("non-object element should become a default descriptor: %+v", junk)
	}

	c := got.Fields[3]
	if !c.Required {
		t.Fatal("string required flag not honoured")
	}
	if c.Min == nil || *c.Min != 1 || c.Max == nil || *c.Max != 10 {
		t.Fatalf("min/max = %v/%v", c.Min, c.Max)
	}
}

func TestNormalize_IsIdempotentThroughEncode(t *testing.T) {
	t.Parallel()

	first := Normalize(`"[{\"name\":\"email\",\"type\":\"email\"}]"`)
	encoded, err := Encode(first.Fields)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second := Normalize(encoded)
	if second.Kind != KindJSONArray {
		t.Fatalf("re-encoded value should be a plain array, got %v", second.Kind)
	}
	if len(second.Fields) != 1 || second.Fields[0].ID != first.Fields[0].ID || second.Fields[0].Type != TypeEmail {
		t.Fatalf("round trip changed descriptors: %+v vs %+v", first.Fields, second.Fields)
	}
}

func TestDuplicateNamesAndPaymentFields(t *testing.T) {
	t.Parallel()

	fields := []FieldDescriptor{
		{Name: "a"}, {Name: "b", Type: TypeGcashReceipt}, {Name: "a"}, {Name: ""}, {Name: ""}, {Name: "a"},
	}
	dups := DuplicateNames(fields)
	if len(dups) != 1 || dups[0] != "a" {
		t.Fatalf("duplicates = %v", dups)
	}
	pay := PaymentFields(fields)
	if len(pay) != 1 || pay[0].AmountKey() != "b_amount" || pay[0].ReceiptKey() != "b_receipt" {
		t.Fatalf("payment fields = %+v", pay)
	}
}

func mustQuote(t *testing.T, s string) string {
	t.Helper()
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	return string(b)
}
