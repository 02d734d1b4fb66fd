// Package token defines lexical token kinds, reserved keywords and trivia
// for doc-comment attribute values.
// Invariants:
//   - Token.Text is the exact source text covered by Token.Span.
//   - Keyword-shaped words never get a kind of their own: they are emitted as
//     KwIdent and Token.Keyword records the keyword.
//   - A missing token has an empty Span, empty Text, Missing == true and
//     exactly one diagnostic.
//   - Whitespace is leading trivia; discarded tokens become TriviaSkipped
//     trailing trivia and are counted only in FullSpan.
package token
