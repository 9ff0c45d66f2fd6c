// Package errors provides the classified error primitives used across langpages.
//
// Every failure that leaves a package is a *ClassifiedError carrying a broad
// category, a severity, a retry strategy and a small structured context. Hosts
// use the category to decide how to react (the CLI maps it to an exit code).
//
// Key features:
//   - ErrorCategory: broad classification (config, content, validation, filesystem, ...)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - RetryStrategy: retry behavior; page generation is deterministic so it is RetryNever
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing formatting
//
// Example usage:
//
//	err := errors.ContentError("post is missing a required attribute").
//		WithContext("post_id", p.ID).
//		WithContext("attribute", "lang").
//		Build()
package errors
