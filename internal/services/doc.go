// Package services defines shared plumbing for the conversion pipeline and
// its external tool integrations.
//
// It provides structured error markers plus the Wrap helper that tag failures
// for exit-code classification, and context helpers that stamp a per-run
// request ID and pipeline step so log lines from any component identify the
// conversion they belong to.
package services
