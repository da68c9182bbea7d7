package types

import "context"

type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxTenantID  ContextKey = "ctx_tenant_id"
	CtxUserID    ContextKey = "ctx_user_id"
)

// GetRequestID returns the request ID from the context or an empty string
func GetRequestID(ctx context.Context) string {
	return ctxString(ctx, CtxRequestID)
}

// GetTenantID returns the tenant ID from the context or an empty string
func GetTenantID(ctx context.Context) string {
	return ctxString(ctx, CtxTenantID)
}

// GetUserID returns the acting user ID from the context or an empty string
func GetUserID(ctx context.Context) string {
	return ctxString(ctx, CtxUserID)
}

func ctxString(ctx context.Context, key ContextKey) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
