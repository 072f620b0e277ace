package commitlint

import (
	"fmt"
	"strings"
)

// Code identifies a validation failure category.
type Code string

const (
	// CodeMissingColon indicates the title has no ":" separator.
	CodeMissingColon Code = "missing_colon"

	// CodeTypeWhitespace indicates the type token contains whitespace.
	CodeTypeWhitespace Code = "type_contains_whitespace"

	// CodeInvalidType indicates the type token is not in the valid type set.
	CodeInvalidType Code = "invalid_type"

	// CodeMalformedScope indicates a "(" without a parseable "(scope)" group.
	CodeMalformedScope Code = "malformed_scope_syntax"

	// CodeScopeTooLong indicates the scope exceeds the scope length limit.
	CodeScopeTooLong Code = "scope_too_long"

	// CodeScopeCharset indicates the scope contains characters outside [a-z0-9 -].
	CodeScopeCharset Code = "invalid_scope_charset"

	// CodeUnknownScope indicates the scope is not in the valid scope set.
	CodeUnknownScope Code = "unknown_scope"

	// CodeEmptySubject indicates the subject is empty after trimming.
	CodeEmptySubject Code = "empty_subject"

	// CodeSubjectTooLong indicates the subject exceeds the subject length limit.
	CodeSubjectTooLong Code = "subject_too_long"
)

// Violation describes why a title failed validation.
type Violation struct {
	Code Code
	// Value is the offending token, where one exists (type, scope or subject).
	Value string
	// ValidScopes is populated for CodeUnknownScope so reports can list the
	// accepted scopes.
	ValidScopes []string
	// Limit is populated for length violations.
	Limit int
}

func (v *Violation) Error() string {
	switch v.Code {
	case CodeMissingColon:
		return "title must contain a ':' separating type from subject"
	case CodeTypeWhitespace:
		return fmt.Sprintf("type %q must not contain whitespace", v.Value)
	case CodeInvalidType:
		return fmt.Sprintf("invalid type %q", v.Value)
	case CodeMalformedScope:
		return "malformed scope syntax: expected type(scope)"
	case CodeScopeTooLong:
		return fmt.Sprintf("scope %q exceeds %d characters", v.Value, v.Limit)
	case CodeScopeCharset:
		return fmt.Sprintf("scope %q contains invalid characters (allowed: a-z, 0-9, space, hyphen)", v.Value)
	case CodeUnknownScope:
		return fmt.Sprintf("unknown scope %q (valid scopes: %s)", v.Value, strings.Join(v.ValidScopes, ", "))
	case CodeEmptySubject:
		return "subject must not be empty"
	case CodeSubjectTooLong:
		return fmt.Sprintf("subject exceeds %d characters", v.Limit)
	}
	return string(v.Code)
}
