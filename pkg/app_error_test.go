package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" || body.Details != nil {
		t.Fatalf("unexpected body %+v", body)
	}

	simple := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	if simple.Error() != "QUOTE_NOT_FOUND: Quote not found" {
		t.Fatalf("unexpected message %q", simple.Error())
	}
	detailed := simple.WithDetails(map[string]any{"field": "client_id"})
	if detailed.ToHTTPError().Details["field"] != "client_id" {
		t.Fatalf("expected details")
	}
	if simple.Details != nil {
		t.Fatalf("WithDetails must not mutate the receiver")
	}
}
