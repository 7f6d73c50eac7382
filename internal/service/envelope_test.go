package service

import (
	"encoding/json"
	"testing"
)

func TestSuccessPopulatesOnlyData(t *testing.T) {
	out := Success("payload")
	if out.Status != StatusSuccess {
		t.Fatalf("expected SUCCESS, got %s", out.Status)
	}
	if out.Data == nil || *out.Data != "payload" {
		t.Fatalf("expected payload, got %v", out.Data)
	}
	if out.ErrorMessage != "" {
		t.Fatalf("expected no error message, got %q", out.ErrorMessage)
	}
}

func TestFailureConstructorsPopulateOnlyMessage(t *testing.T) {
	cases := []struct {
		out    Output[string]
		status Status
	}{
		{Failure[string]("boom"), StatusFailure},
		{Unauthorized[string]("boom"), StatusUnauthorized},
		{NotFound[string]("boom"), StatusNotFound},
		{ValidationError[string]("boom"), StatusValidationError},
		{Conflict[string]("boom"), StatusConflict},
		{InternalError[string]("boom"), StatusInternalError},
	}
	for _, tc := range cases {
		if tc.out.Status != tc.status {
			t.Fatalf("expected %s, got %s", tc.status, tc.out.Status)
		}
		if tc.out.Data != nil {
			t.Fatalf("%s: expected nil data", tc.status)
		}
		if tc.out.ErrorMessage != "boom" {
			t.Fatalf("%s: expected message boom, got %q", tc.status, tc.out.ErrorMessage)
		}
	}
}

func TestEnvelopeJSONShape(t *testing.T) {
	raw, err := json.Marshal(Unauthorized[string]("denied"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded["status"] != "UNAUTHORIZED" {
		t.Fatalf("unexpected status %v", decoded["status"])
	}
	if decoded["data"] != nil {
		t.Fatalf("expected data null, got %v", decoded["data"])
	}
	if decoded["errorMessage"] != "denied" {
		t.Fatalf("unexpected errorMessage %v", decoded["errorMessage"])
	}
}
