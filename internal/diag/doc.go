// Package diag defines the diagnostic model shared by the tokenizer and the
// tools that embed it.
//
// Diagnostic is the central record: Severity, Code, Message, the primary
// source.Span, and optional Notes. Producers emit through the Reporter
// interface; Bag is the bounded in-memory collector the CLI drains.
// Rendering lives in internal/diagfmt, never here.
package diag
