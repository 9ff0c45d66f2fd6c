package errors

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "_config.yml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "_config.yml" {
			t.Errorf("expected context file=_config.yml, got %v", file)
		}
	})

	t.Run("Error string includes sorted context", func(t *testing.T) {
		err := ContentError("post is missing a required attribute").
			WithContext("post_id", "hello-world").
			WithContext("attribute", "lang").
			Build()

		want := "[content:fatal] post is missing a required attribute (attribute=lang, post_id=hello-world)"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("Error detection through wrapping", func(t *testing.T) {
		err := fmt.Errorf("archive view: %w", ConfigError("page size must be positive").Build())

		if !HasCategory(err, CategoryConfig) {
			t.Error("expected wrapped error to have config category")
		}
		if GetSeverity(err) != SeverityFatal {
			t.Errorf("expected fatal severity, got %s", GetSeverity(err))
		}
		if GetCategory(errors.New("plain")) != CategoryInternal {
			t.Error("expected unclassified error to map to internal")
		}
	})

	t.Run("WithContext does not mutate the original", func(t *testing.T) {
		base := ValidationError("duplicate slug").Build()
		derived := base.WithContext("slug", "go")

		if _, ok := base.Context().Get("slug"); ok {
			t.Error("expected base context to be unchanged")
		}
		if slug, _ := derived.Context().GetString("slug"); slug != "go" {
			t.Errorf("expected slug=go, got %q", slug)
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Wrapping keeps the cause", func(t *testing.T) {
		originalErr := errors.New("permission denied")
		err := WrapError(originalErr, CategoryFileSystem, "read post").
			Warning().
			WithContext("path", "source/_posts/a.md").
			Build()

		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}
		if !strings.HasSuffix(err.Error(), ": permission denied") {
			t.Errorf("expected cause suffix, got %q", err.Error())
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
			severity ErrorSeverity
			retry    RetryStrategy
		}{
			{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal, RetryUserAction},
			{"ValidationError", ValidationError("test"), CategoryValidation, SeverityFatal, RetryNever},
			{"ContentError", ContentError("test"), CategoryContent, SeverityFatal, RetryUserAction},
			{"FileSystemError", FileSystemError("test"), CategoryFileSystem, SeverityError, RetryNever},
			{"StorageError", StorageError("test"), CategoryStorage, SeverityError, RetryNever},
			{"RuntimeError", RuntimeError("test"), CategoryRuntime, SeverityFatal, RetryNever},
			{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal, RetryNever},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if err.Severity() != tt.severity {
					t.Errorf("expected severity %s, got %s", tt.severity, err.Severity())
				}
				if err.RetryStrategy() != tt.retry {
					t.Errorf("expected retry strategy %s, got %s", tt.retry, err.RetryStrategy())
				}
				if err.CanRetry() {
					t.Error("expected no retry for deterministic failures")
				}
			})
		}
	})
}

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationError("bad feed").Build(), 2},
		{"content", ContentError("missing date").Build(), 3},
		{"config", ConfigError("bad page size").Build(), 7},
		{"wrapped config", fmt.Errorf("resolve: %w", ConfigError("bad").Build()), 7},
		{"internal", InternalError("collision").Build(), 10},
		{"filesystem", FileSystemError("read").Build(), 11},
		{"storage", StorageError("insert").Build(), 11},
		{"unclassified", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var logs, out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.out = &out

	code := adapter.Report(ConfigError("page size must be positive").WithContext("section", "tag").Build())

	if code != 7 {
		t.Errorf("expected exit code 7, got %d", code)
	}
	if !strings.Contains(out.String(), "page size must be positive") {
		t.Errorf("expected message on output, got %q", out.String())
	}
	if !strings.Contains(logs.String(), "section=tag") {
		t.Errorf("expected context in log, got %q", logs.String())
	}

	out.Reset()
	adapter.Report(InternalError("duplicate output path").Build())
	if !strings.Contains(out.String(), "use -v for details") {
		t.Errorf("expected internal errors to be hidden without -v, got %q", out.String())
	}
}
