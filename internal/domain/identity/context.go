package identity

import "context"

type ctxKey struct{}

// NewContext deja el estado de identidad del request en el contexto.
// Lo setea el middleware de sesión; los handlers lo leen con FromContext.
func NewContext(ctx context.Context, st State) context.Context {
	return context.WithValue(ctx, ctxKey{}, st)
}

// FromContext devuelve el estado de identidad del request.
// Sin middleware => KindNone.
func FromContext(ctx context.Context) State {
	if st, ok := ctx.Value(ctxKey{}).(State); ok {
		return st
	}
	return None()
}
