// Package helpers provides HTTP test utilities for the Superheroes API.
//
// # Request Builder
//
//	resp := helpers.NewRequest(t, http.MethodPost, "/hero_powers").
//	    WithBody(map[string]any{"strength": "Strong", "hero_id": 1, "power_id": 2}).
//	    Do(router)
//
// WithRawBody sends bytes unchanged, for malformed JSON cases.
//
// # Assertion Helpers
//
//	helpers.AssertStatus(t, resp, http.StatusCreated)
//	helpers.AssertNotFound(t, resp, "Power")
//	helpers.AssertValidationError(t, resp)
package helpers
