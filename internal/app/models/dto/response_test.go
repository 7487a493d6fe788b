package dto

import (
	"errors"
	"testing"
)

func TestNewCachedResponseFresh(t *testing.T) {
	resp := NewCachedResponse([]string{"a"}, nil)

	if !resp.Success {
		t.Error("expected Success true")
	}
	if resp.Error != nil {
		t.Errorf("expected no error detail for a fresh read, got %+v", resp.Error)
	}
	if resp.Data == nil {
		t.Error("expected data to be set")
	}
}

func TestNewCachedResponseStaleCarriesError(t *testing.T) {
	resp := NewCachedResponse([]string{"a"}, errors.New("connection refused"))

	if !resp.Success {
		t.Error("stale data is still a successful response")
	}
	if resp.Data == nil {
		t.Error("stale payload must still be served")
	}
	if resp.Error == nil {
		t.Fatal("expected error detail flagging the failed refresh")
	}
	if resp.Error.Code != ErrorCodeStaleData {
		t.Errorf("error code = %s, want %s", resp.Error.Code, ErrorCodeStaleData)
	}
	if resp.Error.Severity != ErrorSeverityWarning {
		t.Errorf("severity = %s, want %s", resp.Error.Severity, ErrorSeverityWarning)
	}
	if resp.Error.Details != "connection refused" {
		t.Errorf("details = %v, want the refresh error", resp.Error.Details)
	}
}
