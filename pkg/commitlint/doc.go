// Package commitlint validates pull-request titles against the project's
// conventional-commit grammar: "type(scope): subject" with a fixed set of
// types and scopes, a 50-character subject limit and a 30-character scope
// limit.
//
// Validate is a pure function over an immutable Rules value; failures come
// back as a structured *Violation instead of a fatal error so the caller
// (typically a CI step) decides how to report and exit. Merge commits bypass
// every check.
package commitlint
