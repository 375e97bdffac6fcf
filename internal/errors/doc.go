// Package errors provides the structured error type used across the pokedex
// service.
//
// Errors carry a Code, a user-facing message, an optional cause, and
// metadata. Codes map onto HTTP statuses so handlers can render any error
// without knowing where it came from.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("pokemon not found")
//	err := errors.InvalidArgumentf("invalid page: %q", raw)
//
// Adding metadata:
//
//	err := errors.Unavailable("pokeapi request failed").
//	    WithMeta("url", url).
//	    WithMeta("status", resp.StatusCode)
//
// Wrapping errors keeps the code of the wrapped error:
//
//	if err := client.GetPokemon(ctx, id); err != nil {
//	    return errors.Wrapf(err, "failed to load pokemon %s", id)
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // render 404
//	}
//
//	status := errors.GetCode(err).HTTPStatus()
package errors
