package xgxresult

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestErr_NilOnSuccess(t *testing.T) {
	t.Parallel()

	if err := Success[fileTrait, fileCode]().Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	ok := New[fileTrait](fileOK)
	ok.Append("ignored")
	if err := ok.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
}

func TestErr_RendersString(t *testing.T) {
	t.Parallel()

	r := New[fileTrait](fileNotFound)
	r.Append("a.txt")
	err := r.Err()
	if err == nil {
		t.Fatalf("Err() = nil on failure")
	}
	if err.Error() != r.String() {
		t.Fatalf("Error() = %q, want %q", err.Error(), r.String())
	}
}

func TestErr_IsMatchesSameTraitAndCode(t *testing.T) {
	t.Parallel()

	a := New[fileTrait](fileNotFound)
	a.Append("a")
	b := New[fileTrait](fileNotFound)
	wrapped := fmt.Errorf("loading: %w", b.Err())

	if !errors.Is(wrapped, a.Err()) {
		t.Fatalf("errors.Is should match by code through %%w")
	}
	if errors.Is(wrapped, New[fileTrait](fileBadFormat).Err()) {
		t.Fatalf("errors.Is matched a different code")
	}
	if errors.Is(wrapped, New[Generic](GenericCode(fileNotFound)).Err()) {
		t.Fatalf("errors.Is matched across traits")
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		if _, ok := CodeOf[fileTrait, fileCode](nil); ok {
			t.Fatalf("CodeOf(nil) reported a code")
		}
	})
	t.Run("foreign", func(t *testing.T) {
		if _, ok := CodeOf[fileTrait, fileCode](io.EOF); ok {
			t.Fatalf("CodeOf(io.EOF) reported a code")
		}
	})
	t.Run("other_trait", func(t *testing.T) {
		err := New[parseTrait](parseEOF).Err()
		if _, ok := CodeOf[fileTrait, fileCode](err); ok {
			t.Fatalf("CodeOf found a fileTrait code in a parseTrait error")
		}
	})
	t.Run("joined", func(t *testing.T) {
		err := errors.Join(io.EOF, fmt.Errorf("x: %w", New[fileTrait](fileBadFormat).Err()))
		c, ok := CodeOf[fileTrait, fileCode](err)
		if !ok || c != fileBadFormat {
			t.Fatalf("CodeOf = (%d, %v), want (%d, true)", c, ok, fileBadFormat)
		}
	})
}

func TestFromError(t *testing.T) {
	t.Parallel()

	t.Run("nil_is_success", func(t *testing.T) {
		if r := FromError[fileTrait](nil, fileBadFormat); !r.IsSuccess() {
			t.Fatalf("FromError(nil) = %v", r)
		}
	})
	t.Run("foreign_error", func(t *testing.T) {
		r := FromError[fileTrait](io.ErrUnexpectedEOF, fileBadFormat)
		if got, want := r.String(), "Code 2: bad format (unexpected EOF)"; got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	})
	t.Run("round_trip", func(t *testing.T) {
		orig := New[fileTrait](fileNotFound)
		orig.Append("a.txt")
		r := FromError[fileTrait](fmt.Errorf("ctx: %w", orig.Err()), fileBadFormat)
		if !r.Equal(orig) || r.Message() != "a.txt" {
			t.Fatalf("FromError = %+v, want %+v", r, orig)
		}
	})
	t.Run("other_trait_is_foreign", func(t *testing.T) {
		r := FromError[fileTrait](New[parseTrait](parseEOF).Err(), fileBadFormat)
		if got, want := r.String(), "Code 2: bad format (Code 255: unexpected eof)"; got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	})
}
