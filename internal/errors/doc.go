// Package errors provides the structured error type shared by every layer of
// rpg-rooms.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFoundf("room template %q not found", name).
//	    WithMeta("name", name)
//
// Wrapping keeps the code of the wrapped error unless a new one is given:
//
//	if err := repo.Load(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load template snapshot")
//	}
//
// Callers branch on codes rather than messages:
//
//	if errors.IsAlreadyExists(err) {
//	    // keep the original template
//	}
//
// Placement failures map onto codes as follows:
//   - OutOfRange: a position outside the placement region
//   - FailedPrecondition: a position closer than the minimum distance
//   - ResourceExhausted: the attempt budget ran out for one item
//
// Handlers convert errors with ToGRPCError and clients convert them back
// with FromGRPCError; the code and metadata survive the round trip through an
// errdetails.ErrorInfo detail.
package errors
