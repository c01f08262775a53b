// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or fixed-length pairs) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation
