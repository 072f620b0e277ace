package commitlint

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// typeScopeRe splits "type(scope)" in one pass: a lazy type group, then the
// parenthesized scope group anchored at the end of the token. When the input
// does not match (unbalanced parentheses, trailing characters after ")"),
// the whole token is treated as the type. That absorption is deliberate; the
// invalid-type check then reports the malformed token.
var typeScopeRe = regexp.MustCompile(`^(.*?)\((.*)\)$`)

// Validate checks title against the rules. It returns nil for a valid title
// and a *Violation describing the first failing rule otherwise. Checks run
// in a fixed order; the first match wins.
func (r Rules) Validate(title string) *Violation {
	// Merge commits bypass all checks.
	if strings.HasPrefix(title, "Merge") {
		return nil
	}

	colon := strings.Index(title, ":")
	if colon < 0 {
		return &Violation{Code: CodeMissingColon}
	}

	typeScope := title[:colon]
	subject := strings.TrimSpace(title[colon+1:])

	typ := typeScope
	scope := ""
	scopePresent := false
	if m := typeScopeRe.FindStringSubmatch(typeScope); m != nil {
		typ = m[1]
		scope = m[2]
		scopePresent = true
	}

	if strings.IndexFunc(typ, unicode.IsSpace) >= 0 {
		return &Violation{Code: CodeTypeWhitespace, Value: typ}
	}
	if !contains(r.Types, typ) {
		return &Violation{Code: CodeInvalidType, Value: typ}
	}
	if !scopePresent && strings.Contains(typeScope, "(") {
		return &Violation{Code: CodeMalformedScope, Value: typeScope}
	}

	if scopePresent {
		if utf8.RuneCountInString(scope) > r.MaxScope {
			return &Violation{Code: CodeScopeTooLong, Value: scope, Limit: r.MaxScope}
		}
		if !validScopeCharset(scope) {
			return &Violation{Code: CodeScopeCharset, Value: scope}
		}
		if !contains(r.Scopes, scope) {
			return &Violation{Code: CodeUnknownScope, Value: scope, ValidScopes: append([]string(nil), r.Scopes...)}
		}
	}

	if subject == "" {
		return &Violation{Code: CodeEmptySubject}
	}
	if utf8.RuneCountInString(subject) > r.MaxSubject {
		return &Violation{Code: CodeSubjectTooLong, Value: subject, Limit: r.MaxSubject}
	}

	return nil
}

// validScopeCharset reports whether scope uses only ASCII lowercase, digits,
// space and hyphen.
func validScopeCharset(scope string) bool {
	for _, c := range scope {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == ' ' || c == '-':
		default:
			return false
		}
	}
	return true
}
