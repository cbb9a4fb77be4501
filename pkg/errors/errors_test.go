// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and classification helpers

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "occupied_error",
			code:    errors.ErrOccupied,
			message: "destination is not a symlink",
			wantStr: "[OCCUPIED] destination is not a symlink",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrPathExpansion, "undefined variable %q in %s", "dotdir", "$dotdir/vimrc")

	want := `undefined variable "dotdir" in $dotdir/vimrc`
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrLinkCreate, "failed to create symlink")

		if err.Code != errors.ErrLinkCreate {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrLinkCreate)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[LINK_CREATE] failed to create symlink: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrapf(nil, errors.ErrInternal, "internal error %d", 1)
		if err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrOccupied, "occupied").
		WithDetail("dst", "/home/u/.vimrc").
		WithDetail("type", "file")

	if err.Details["dst"] != "/home/u/.vimrc" {
		t.Errorf("WithDetail() dst = %v, want %v", err.Details["dst"], "/home/u/.vimrc")
	}

	if err.Details["type"] != "file" {
		t.Errorf("WithDetail() type = %v, want %v", err.Details["type"], "file")
	}

	details := errors.GetErrorDetails(err)
	if details["type"] != "file" {
		t.Errorf("GetErrorDetails() type = %v, want file", details["type"])
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrOccupied, "error 1")
	err2 := errors.New(errors.ErrOccupied, "error 2")
	err3 := errors.New(errors.ErrLinkRemove, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with DotlinkError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrConfigParse, "bad toml"),
			code:     errors.ErrConfigParse,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrConfigParse, "bad toml"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrOccupied,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrOccupied,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "dotlink_error",
			err:      errors.New(errors.ErrDuplicateDestination, "duplicate"),
			expected: errors.ErrDuplicateDestination,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		code  errors.ErrorCode
		fatal bool
	}{
		{errors.ErrConfigLoad, true},
		{errors.ErrConfigParse, true},
		{errors.ErrConfigInvalid, true},
		{errors.ErrPathExpansion, true},
		{errors.ErrDuplicateDestination, true},
		{errors.ErrOccupied, false},
		{errors.ErrLinkCreate, false},
		{errors.ErrLinkRemove, false},
		{errors.ErrFileAccess, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := errors.IsFatal(errors.New(tt.code, "x")); got != tt.fatal {
				t.Errorf("IsFatal(%s) = %v, want %v", tt.code, got, tt.fatal)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigParse, "failed to load linkfile")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigParse) {
			t.Error("Top level should have ErrConfigParse code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var dlErr *errors.DotlinkError
		if stderrors.As(configErr.Unwrap(), &dlErr) {
			if !errors.IsErrorCode(dlErr, errors.ErrFileAccess) {
				t.Error("Middle error should have ErrFileAccess code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
