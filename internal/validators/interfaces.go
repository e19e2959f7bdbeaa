// Package validators provides input validation for the request bodies the
// service accepts, decoupled from the transport and storage layers.
//
// A Validator implementation encodes the required-field rules for one or more
// request types; services inject a Validator and call Validate with the
// decoded value and, optionally, the subset of field names relevant to the
// operation (e.g. login checks email and password only).
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input
// values. Implementations may restrict validation to specific named fields.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
