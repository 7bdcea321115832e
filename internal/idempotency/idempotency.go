package idempotency

import (
	"context"

	"github.com/lithammer/shortuuid/v3"
)

type ctxKey struct{}

// WithKey attaches a caller-supplied idempotency key to the context, usually
// taken from the Idempotency-Key header of the tool invocation.
func WithKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, ctxKey{}, key)
}

// GetKey returns the idempotency key from the context, or a fresh one when
// the caller did not supply any.
func GetKey(ctx context.Context) string {
	key, ok := ctx.Value(ctxKey{}).(string)
	if !ok || key == "" {
		return shortuuid.New()
	}

	return key
}
