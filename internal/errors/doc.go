// Package errors provides structured error handling for questforge.
//
// Errors carry a Code, a user-facing message, an optional wrapped cause,
// and optional metadata. Codes map to HTTP status codes at the API
// boundary via Code.HTTPStatus.
//
// Creating errors:
//
//	err := errors.NotFound("quest not found")
//	err := errors.InvalidArgumentf("unknown condition type %q", kind)
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save quests")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) { ... }
package errors
