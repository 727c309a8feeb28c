package http

import (
	"errors"
	"testing"
)

type tagProbe struct {
	ID     string  `validate:"omitempty,hex32"`
	Amount float64 `validate:"omitempty,dec2"`
	Tenor  int     `validate:"omitempty,tenor"`
}

func TestValidator_Hex32Tag(t *testing.T) {
	cv := NewValidator()
	cases := []struct {
		name string
		id   string
		ok   bool
	}{
		{"valid lowercase hex", "0123456789abcdef0123456789abcdef", true},
		{"uppercase rejected", "0123456789ABCDEF0123456789ABCDEF", false},
		{"too short", "abcdef", false},
		{"33 chars", "0123456789abcdef0123456789abcdef0", false},
		{"non-hex chars", "0123456789abcdefg123456789abcdef", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cv.Validate(tagProbe{ID: tc.id})
			if (err == nil) != tc.ok {
				t.Fatalf("Validate(%q) err = %v, want ok=%v", tc.id, err, tc.ok)
			}
		})
	}
}

func TestValidator_Dec2Tag(t *testing.T) {
	cv := NewValidator()
	cases := []struct {
		name   string
		amount float64
		ok     bool
	}{
		{"whole number", 1_000_000, true},
		{"two decimals", 1234.56, true},
		{"one decimal", 0.5, true},
		{"three decimals", 1234.567, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cv.Validate(tagProbe{Amount: tc.amount})
			if (err == nil) != tc.ok {
				t.Fatalf("Validate(%v) err = %v, want ok=%v", tc.amount, err, tc.ok)
			}
		})
	}
}

func TestValidator_TenorTag(t *testing.T) {
	cv := NewValidator()
	for _, tenor := range []int{1, 3, 6, 9, 12, 15, 18, 21, 24} {
		if err := cv.Validate(tagProbe{Tenor: tenor}); err != nil {
			t.Fatalf("tenor %d rejected: %v", tenor, err)
		}
	}
	for _, tenor := range []int{2, 5, 7, 25, 36} {
		if err := cv.Validate(tagProbe{Tenor: tenor}); err == nil {
			t.Fatalf("tenor %d accepted", tenor)
		}
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()

	type form struct {
		PlafondID uint64  `validate:"required"`
		Amount    float64 `validate:"required,gt=0,dec2"`
		Tenor     int     `validate:"required,tenor"`
	}
	err := cv.Validate(form{Amount: 1.239, Tenor: 7})
	if err == nil {
		t.Fatal("expected validation error")
	}

	fes := ToFieldErrors(err)
	byField := map[string]string{}
	for _, fe := range fes {
		byField[fe.Field] = fe.Message
	}
	if byField["PlafondID"] != "is required" {
		t.Fatalf("PlafondID message = %q", byField["PlafondID"])
	}
	if byField["Amount"] != "must have at most 2 decimal places" {
		t.Fatalf("Amount message = %q", byField["Amount"])
	}
	if byField["Tenor"] == "" {
		t.Fatal("missing Tenor message")
	}
}

func TestToFieldErrors_NonValidationError(t *testing.T) {
	fes := ToFieldErrors(errors.New("boom"))
	if len(fes) != 1 || fes[0].Field != "_" || fes[0].Message != "boom" {
		t.Fatalf("fes = %+v", fes)
	}
}
