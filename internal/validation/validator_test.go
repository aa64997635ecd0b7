// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func ptr(f float64) *float64 { return &f }

func TestValidateStruct_RecommendRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       RecommendRequest
		wantField string
		wantTag   string
	}{
		{name: "valid", req: RecommendRequest{Title: "Avatar", K: 5}},
		{name: "default k", req: RecommendRequest{Title: "Avatar"}},
		{name: "max k", req: RecommendRequest{Title: "Avatar", K: 50}},
		{name: "missing title left to resolver", req: RecommendRequest{K: 5}},
		{name: "blank title left to resolver", req: RecommendRequest{Title: "   "}},
		{name: "k too large", req: RecommendRequest{Title: "Avatar", K: 51}, wantField: "k", wantTag: "max"},
		{name: "negative k", req: RecommendRequest{Title: "Avatar", K: -1}, wantField: "k", wantTag: "min"},
		{name: "long title", req: RecommendRequest{Title: strings.Repeat("a", 501)}, wantField: "title", wantTag: "max"},
		{name: "zero diversity", req: RecommendRequest{Title: "Avatar", Diversity: ptr(0.0)}},
		{name: "full diversity", req: RecommendRequest{Title: "Avatar", Diversity: ptr(1.0)}},
		{name: "diversity too large", req: RecommendRequest{Title: "Avatar", Diversity: ptr(1.5)}, wantField: "diversity", wantTag: "max"},
		{name: "negative diversity", req: RecommendRequest{Title: "Avatar", Diversity: ptr(-0.1)}, wantField: "diversity", wantTag: "min"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("got %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_PathAndQuery(t *testing.T) {
	t.Parallel()

	if verr := ValidateStruct(&MovieIDRequest{ID: "19995"}); verr != nil {
		t.Errorf("numeric id rejected: %v", verr)
	}
	verr := ValidateStruct(&MovieIDRequest{ID: "abc"})
	if verr == nil || verr.Errors()[0].Field() != "id" {
		t.Errorf("non-numeric id: got %v", verr)
	}

	verr = ValidateStruct(&AutocompleteRequest{})
	if verr == nil {
		t.Fatal("missing q accepted")
	}
	if got := verr.Error(); got != "q is required" {
		t.Errorf("Error() = %q, want %q", got, "q is required")
	}

	if verr := ValidateStruct(&GenreRequest{Genre: "Science Fiction"}); verr != nil {
		t.Errorf("genre rejected: %v", verr)
	}
	verr = ValidateStruct(&GenreRequest{Genre: "   "})
	if verr == nil || verr.Error() != "genre must not be blank" {
		t.Errorf("blank genre: got %v", verr)
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single field", func(t *testing.T) {
		t.Parallel()
		apiErr := ValidateStruct(&RecommendRequest{Title: "Avatar", K: 99}).ToAPIError()
		if apiErr.Code != CodeValidation {
			t.Errorf("Code = %q", apiErr.Code)
		}
		if apiErr.Message != "k must be at most 50" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "k" || apiErr.Details["value"] != 99 {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("several fields", func(t *testing.T) {
		t.Parallel()
		apiErr := ValidateStruct(&RecommendRequest{Title: strings.Repeat("a", 501), K: 99}).ToAPIError()
		if apiErr.Message != "title must be at most 500 characters; k must be at most 50" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Fatalf("Details[fields] = %v", apiErr.Details["fields"])
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}
