// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (FieldErrors for request validation, HTTPError for API responses)
// so the client receives meaningful, actionable and consistent
// error messages.
//
//   - Return consistent error shapes to API clients (JSON).
//   - Support field-level validation errors.
//   - Support "action hints" (redirect, retry) that clients can interpret.
//   - Provide errors that play nicely with Go's standard errors package.
package errs
