// Package core provides the business logic layer for ghdl.
//
// This package orchestrates the download and refresh flows on top of the
// giturl, metadata and resolver packages, separated from CLI concerns.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - Progress goes through the injected slog.Logger
//   - Remote calls are sequential and never retried; the first failure
//     aborts the current operation
package core
