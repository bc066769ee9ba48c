// Package handler provides the HTTP layer of the Superheroes API.
//
// Each handler struct wraps one service and translates between HTTP and the
// service's typed results. NewRouter assembles the static route table and the
// global middleware chain.
//
// # Response Format
//
// Successful responses are bare JSON documents written by WriteJSON.
// Failures go through MapServiceError, which keeps the wire format small:
//
//   - 404: {"error": "Hero not found"} or {"error": "Power not found"}
//   - 400: {"errors": ["Validation errors"]}
//   - 500: {"error": "<operation> failed"}
//
// Validation causes are logged with the request id and never returned.
//
// # Path Parameters
//
// Ids must be positive integers. Anything else answers the entity's 404, the
// same as an id that does not exist.
package handler
