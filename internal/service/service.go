// Package service contains the business logic.
//
// It sits between the handler layer and the itinerary core.
// It receives validated data from the handler, runs the
// itinerary pipeline, and records what happened in the
// request-scoped logs and traces
package service
