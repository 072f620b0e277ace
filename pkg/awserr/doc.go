// Package awserr renders AWS-compliant error responses for the durable
// execution testing surface.
//
// The AWS rest-json protocol identifies errors by a Type discriminator and a
// message field whose casing is dictated by the Smithy model of each
// exception, not by a uniform convention. Clients built on the AWS SDKs
// deserialize against that exact shape, so the catalog in this package is a
// bit-exact contract: the HTTP status, the field names (including the
// "message" vs "Message" casing) and the presence of the Type field are all
// fixed per exception kind.
//
// The catalog is a closed set. Rendering an unknown kind is a programming
// error, reported as a *ConfigurationError rather than silently defaulted.
//
// Rendered bodies are flat JSON objects with no envelope:
//
//	{"Type":"ResourceNotFoundException","Message":"no such execution"}
//
// All functions are pure and the catalog is immutable after process start,
// so the package is safe for concurrent use without coordination.
package awserr
