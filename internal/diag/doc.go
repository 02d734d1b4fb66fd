// Package diag defines the diagnostic model shared by the lexer, the
// identifier parser and the doc-comment scanner.
//
// # Data model
//
// Diagnostic is the central record: Severity, Code, Message, Primary span,
// optional Notes and Fixes. Diagnostics are plain data. The identifier
// parser attaches them to the tokens it synthesizes; the doc-comment
// scanner and driver forward them to a Reporter.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter. BagReporter stores into a capped Bag that
// sorts deterministically; DedupReporter filters repeats before forwarding.
// Notes and fixes are chained on the value (WithNote, WithInsert, WithDelete)
// before Forward hands it over.
//
// # Fixes
//
// A Fix is a list of FixEdit. An edit with OldText set is guarded and is
// skipped by internal/fix when the file no longer holds that text.
//
// Package diag performs no formatting or IO; rendering lives in
// internal/diagfmt.
package diag
