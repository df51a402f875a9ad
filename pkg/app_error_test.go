package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("pg: connection refused")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: pg: connection refused" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	body, err := json.Marshal(e.ToHTTPError())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `{"code":"INTERNAL_ERROR","message":"An internal error occurred"}` {
		t.Fatalf("internal detail leaked: %s", body)
	}

	simple := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	if simple.Unwrap() != nil || simple.Error() != "QUOTE_NOT_FOUND: Quote not found" {
		t.Fatalf("unexpected simple error %q", simple.Error())
	}
}
