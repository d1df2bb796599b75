package authctx

import "context"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
)

func (r Role) String() string {
	return string(r)
}

// Claims - личность вызывающего, установленная слоем аутентификации.
type Claims struct {
	UserID string
	Role   Role
}

type ctxKey struct{}

func WithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

func FromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(Claims)
	return claims, ok
}
