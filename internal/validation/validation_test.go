package validation

import (
	"errors"
	"testing"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
)

type contactForm struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name       string
		in         contactForm
		wantFields map[string]string
	}{
		{
			name: "valid",
			in:   contactForm{Name: "Ana", Email: "ana@example.com"},
		},
		{
			name:       "missing name",
			in:         contactForm{Email: "ana@example.com"},
			wantFields: map[string]string{"name": "is required"},
		},
		{
			name: "bad email and missing name",
			in:   contactForm{Email: "not-an-email"},
			wantFields: map[string]string{
				"name":  "is required",
				"email": "must be a valid email address",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var appErr *apperr.Error
			if !errors.As(err, &appErr) || appErr.Code != apperr.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(appErr.Fields) != len(tt.wantFields) {
				t.Fatalf("fields = %v, want %v", appErr.Fields, tt.wantFields)
			}
			for k, v := range tt.wantFields {
				if appErr.Fields[k] != v {
					t.Errorf("field %s = %q, want %q", k, appErr.Fields[k], v)
				}
			}
		})
	}
}

func TestTrimStrings(t *testing.T) {
	form := contactForm{Name: "   ", Email: " ana@example.com "}
	TrimStrings(&form)

	if form.Name != "" || form.Email != "ana@example.com" {
		t.Errorf("unexpected trimmed form: %+v", form)
	}
	if err := Struct(form); err == nil {
		t.Error("expected whitespace-only name to fail validation")
	}
}
