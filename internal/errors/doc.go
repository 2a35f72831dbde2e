// Package errors provides structured errors for the idlemon battle API.
//
// Errors carry a Code aligned with gRPC status codes, a user-facing message,
// an optional domain Reason and free-form metadata:
//
//	err := errors.NotFound("no battle in progress").
//	    WithReason("NO_ACTIVE_SESSION").
//	    WithMeta("player_id", playerID)
//
// Wrapping keeps the code and reason of the innermost structured error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load battle")
//	}
//
// Handlers convert to gRPC with ToGRPCError; the reason and metadata travel
// as an errdetails.ErrorInfo detail and are restored by FromGRPCError.
//
// Orchestrators return errors as values for anything a player can cause.
// Panics are reserved for broken internal invariants.
package errors
