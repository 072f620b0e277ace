package awserr

// Kind identifies one of the AWS-style exception categories emitted by the
// testing surface. The set is closed: the catalog below is exhaustive.
type Kind string

const (
	// InvalidParameterValue covers malformed or missing request parameters.
	InvalidParameterValue Kind = "InvalidParameterValueException"
	// ResourceNotFound covers lookups of executions or callbacks that do not exist.
	ResourceNotFound Kind = "ResourceNotFoundException"
	// Service covers unexpected server-side failures.
	Service Kind = "ServiceException"
	// CallbackTimeout is emitted when a callback exceeds its timeout.
	CallbackTimeout Kind = "CallbackTimeoutException"
	// ExecutionAlreadyStarted is emitted when a start request collides with a
	// running execution. Its wire shape is the odd one out: no Type field,
	// plus a DurableExecutionArn field pointing at the existing execution.
	ExecutionAlreadyStarted Kind = "ExecutionAlreadyStartedException"
)

// FieldDurableExecutionArn is the extra field required by
// ExecutionAlreadyStarted responses.
const FieldDurableExecutionArn = "DurableExecutionArn"

// ResponseSpec describes the exact wire shape for a Kind.
type ResponseSpec struct {
	// HTTPStatus is the fixed status code for the kind.
	HTTPStatus int
	// MessageField is the JSON key carrying the human message. The casing
	// ("message" vs "Message") comes from the Smithy model and is part of
	// the contract.
	MessageField string
	// IncludeType reports whether the body carries a Type discriminator.
	IncludeType bool
	// ExtraFields lists additional required fields, in body order. Values
	// are supplied by the caller of Render.
	ExtraFields []string
}

// catalog is the closed Kind -> ResponseSpec mapping. It is never mutated
// after package initialization.
var catalog = map[Kind]ResponseSpec{
	InvalidParameterValue: {HTTPStatus: 400, MessageField: "message", IncludeType: true},
	ResourceNotFound:      {HTTPStatus: 404, MessageField: "Message", IncludeType: true},
	Service:               {HTTPStatus: 500, MessageField: "Message", IncludeType: true},
	CallbackTimeout:       {HTTPStatus: 408, MessageField: "message", IncludeType: true},
	ExecutionAlreadyStarted: {
		HTTPStatus:   409,
		MessageField: "message",
		IncludeType:  false,
		ExtraFields:  []string{FieldDurableExecutionArn},
	},
}

// kindOrder fixes the iteration order for Kinds and the listing endpoint.
var kindOrder = []Kind{
	InvalidParameterValue,
	ResourceNotFound,
	Service,
	CallbackTimeout,
	ExecutionAlreadyStarted,
}

// Spec returns the response spec for kind. The second return value is false
// when kind is not part of the catalog.
func Spec(kind Kind) (ResponseSpec, bool) {
	spec, ok := catalog[kind]
	return spec, ok
}

// Kinds returns all catalog kinds in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}
