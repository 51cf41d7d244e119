package pkgerror

import (
	"errors"
	"io/fs"
	"net/http"
	"strings"
	"testing"
)

func TestTypeString(t *testing.T) {
	if got := TypeBusiness.String(); got != "ERROR_TYPE_BUSINESS" {
		t.Fatalf("unexpected business string: %q", got)
	}
	if got := TypeServer.String(); got != "ERROR_TYPE_SERVER" {
		t.Fatalf("unexpected server string: %q", got)
	}
	if got := Type(99).String(); got != "ERROR_TYPE_UNKNOWN" {
		t.Fatalf("unexpected unknown type string: %q", got)
	}
}

func TestCodeString(t *testing.T) {
	if got := CodeNotFound.String(); got != "ERROR_CODE_NOT_FOUND" {
		t.Fatalf("unexpected not found string: %q", got)
	}
	if got := CodeMethodNotAllowed.String(); got != "ERROR_CODE_METHOD_NOT_ALLOWED" {
		t.Fatalf("unexpected method not allowed string: %q", got)
	}
	if got := Code(99).String(); got != "ERROR_CODE_INTERNAL" {
		t.Fatalf("unexpected default code string: %q", got)
	}
}

func TestNewServerWrapsDatasetError(t *testing.T) {
	root := &fs.PathError{Op: "open", Path: "data_planets.csv", Err: fs.ErrNotExist}
	err := NewServer(root)

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error")
	}
	if got := gerr.Msg(); got != "Internal server error" {
		t.Fatalf("unexpected msg: %q", got)
	}
	if gerr.Type() != TypeServer || gerr.Code() != CodeInternal {
		t.Fatalf("unexpected classification: %s", gerr.String())
	}
	if got := gerr.Error(); got != root.Error() {
		t.Fatalf("unexpected error string: %q", got)
	}
	if got := gerr.StatusCode(); got != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestBusinessErrors(t *testing.T) {
	notFound := NewBusiness("endpoint not found", CodeNotFound).(*Error)
	if got := notFound.Error(); got != "endpoint not found" {
		t.Fatalf("unexpected business error: %q", got)
	}
	if got := notFound.StatusCode(); got != http.StatusNotFound {
		t.Fatalf("unexpected not found status: %d", got)
	}

	notAllowed := NewBusiness("method not allowed", CodeMethodNotAllowed).(*Error)
	if got := notAllowed.StatusCode(); got != http.StatusMethodNotAllowed {
		t.Fatalf("unexpected method not allowed status: %d", got)
	}
}

func TestErrorFallbackMessages(t *testing.T) {
	business := newError(nil, "", TypeBusiness, CodeNotFound).(*Error)
	if got := business.Error(); got != "Request cannot be served" {
		t.Fatalf("unexpected business fallback: %q", got)
	}

	server := newError(nil, "", TypeServer, CodeInternal).(*Error)
	if got := server.Error(); got != "Internal error" {
		t.Fatalf("unexpected server fallback: %q", got)
	}
}

func TestErrorStringIncludesDetails(t *testing.T) {
	err := NewBusiness("message", CodeNotFound).(*Error)
	str := err.String()
	for _, want := range []string{"ERROR_TYPE_BUSINESS", "ERROR_CODE_NOT_FOUND", "message"} {
		if !strings.Contains(str, want) {
			t.Fatalf("expected %q in string: %q", want, str)
		}
	}
}
