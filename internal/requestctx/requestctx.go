// Package requestctx carries request-scoped values through handler chains.
package requestctx

import (
	"context"
	"sync"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	evaluationIDKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}

// The evaluation id is stored behind a holder: middleware installs it
// before the handler runs, the handler fills it in once a receipt is parsed
// or a result scored, and the access logger reads it on the way out.
type evaluationHolder struct {
	mu sync.Mutex
	id string
}

func WithEvaluationHolder(ctx context.Context) context.Context {
	return context.WithValue(ctx, evaluationIDKey, &evaluationHolder{})
}

func SetEvaluationID(ctx context.Context, id string) {
	holder, ok := ctx.Value(evaluationIDKey).(*evaluationHolder)
	if !ok {
		return
	}
	holder.mu.Lock()
	holder.id = id
	holder.mu.Unlock()
}

func GetEvaluationID(ctx context.Context) string {
	holder, ok := ctx.Value(evaluationIDKey).(*evaluationHolder)
	if !ok {
		return ""
	}
	holder.mu.Lock()
	defer holder.mu.Unlock()
	return holder.id
}
