/*
Package gantry is the developer-tooling companion for a durable-execution
testing stack: it renders the AWS-compliant error responses the local test
control plane emits, and it enforces the repository's conventional-commit
PR-title grammar in CI.

The two cores are independent and pure:

  - pkg/awserr maps the closed set of AWS-style exception kinds to their
    exact wire shape (HTTP status, field names and casing, Type field
    presence) and renders bit-exact JSON bodies.
  - pkg/commitlint validates "type(scope): subject" titles against fixed
    type and scope sets with deterministic, ordered checks.

Around them, cmd/gantry provides the operational surfaces: an HTTP fixture
server that serves the canonical error responses to AWS-SDK-compatible
clients during integration tests ("gantry serve"), and a CI linting command
("gantry lint-title") that reads the pull-request title from a GitHub event
payload, writes a markdown explanation to the step summary on failure, and
signals the result through its exit code.

Both cores operate on immutable, process-wide tables and are safe for
concurrent use without coordination.
*/
package gantry

// Version is the toolkit release version, printed by "gantry version".
var Version = "0.2.0"
