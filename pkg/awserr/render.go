package awserr

import "fmt"

// ConfigurationError signals a misuse of the catalog: an unknown kind or a
// missing required extra field. These are programmer errors, not runtime
// conditions, and should be surfaced loudly at the call site.
type ConfigurationError struct {
	Kind  Kind
	Field string // set when a required extra field was not supplied
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("awserr: kind %q requires extra field %q", e.Kind, e.Field)
	}
	return fmt.Sprintf("awserr: unknown exception kind %q", e.Kind)
}

// Render produces the HTTP status and wire body for kind.
//
// The message is inserted verbatim under the kind's message field: no
// trimming, no truncation, no case conversion. Extra supplies values for the
// kind's required extra fields (currently only DurableExecutionArn for
// ExecutionAlreadyStarted); unrelated keys in extra are ignored.
//
// Render fails with a *ConfigurationError when kind is not in the catalog or
// when a required extra field is missing.
func Render(kind Kind, message string, extra map[string]string) (int, Body, error) {
	spec, ok := catalog[kind]
	if !ok {
		return 0, Body{}, &ConfigurationError{Kind: kind}
	}

	fields := make([]Field, 0, 2+len(spec.ExtraFields))
	if spec.IncludeType {
		fields = append(fields, Field{Name: "Type", Value: string(kind)})
	}
	fields = append(fields, Field{Name: spec.MessageField, Value: message})
	for _, name := range spec.ExtraFields {
		value, ok := extra[name]
		if !ok {
			return 0, Body{}, &ConfigurationError{Kind: kind, Field: name}
		}
		fields = append(fields, Field{Name: name, Value: value})
	}

	return spec.HTTPStatus, Body{fields: fields}, nil
}
