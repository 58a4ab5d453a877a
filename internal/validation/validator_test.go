// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Mood   *int   `json:"mood" validate:"required,min=0,max=10"`
	Notes  string `json:"notes" validate:"max=10"`
}

func intPtr(v int) *int { return &v }

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   sampleRequest
		wantErr bool
		wantMsg string
	}{
		{
			"valid",
			sampleRequest{UserID: "u1", Mood: intPtr(5)},
			false, "",
		},
		{
			"zero value passes range check",
			sampleRequest{UserID: "u1", Mood: intPtr(0)},
			false, "",
		},
		{
			"missing required pointer",
			sampleRequest{UserID: "u1"},
			true, "required",
		},
		{
			"above max",
			sampleRequest{UserID: "u1", Mood: intPtr(11)},
			true, "at most 10",
		},
		{
			"below min",
			sampleRequest{UserID: "u1", Mood: intPtr(-1)},
			true, "at least 0",
		},
		{
			"string too long",
			sampleRequest{UserID: "u1", Mood: intPtr(5), Notes: "this is far too long"},
			true, "at most 10 characters",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error message %q, want substring %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&sampleRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message == "" {
		t.Error("Message is empty")
	}
	if len(err.Errors()) != 2 {
		t.Errorf("got %d field errors, want 2", len(err.Errors()))
	}
}
