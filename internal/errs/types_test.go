package errs

import (
	"errors"
	"io/fs"
	"testing"
)

func TestExternalServiceErrorMessage(t *testing.T) {
	cases := []struct {
		name   string
		status int
		err    error
		want   string
	}{
		{"status only", 404, nil, "site returned status 404"},
		{"cause only", 0, errors.New("dial tcp: refused"), "site request failed: dial tcp: refused"},
		{"neither", 0, nil, "site request failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewExternalServiceError("site", tc.status, false, tc.err).Error()
			if got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWrappedCausesUnwrap(t *testing.T) {
	var err error = NewFileError("write", "static/metadata.json", fs.ErrPermission)
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("FileError should unwrap to its cause: %v", err)
	}

	cause := errors.New("unexpected end of JSON input")
	err = NewDecodeError("/metadata.json", cause)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Resource != "/metadata.json" {
		t.Fatalf("expected DecodeError for /metadata.json, got %#v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("DecodeError should unwrap to its cause")
	}
}

func TestIsTransientStatus(t *testing.T) {
	for status, want := range map[int]bool{400: false, 404: false, 408: true, 429: true, 500: true, 503: true} {
		if got := IsTransientStatus(status); got != want {
			t.Fatalf("IsTransientStatus(%d) = %v, want %v", status, got, want)
		}
	}
}
