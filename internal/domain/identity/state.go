package identity

// Kind discrimina el estado de identidad. Se consume con switch exhaustivo,
// nunca con flags booleanos.
type Kind int

const (
	// KindNone: la consulta funcionó y no hay sesión.
	KindNone Kind = iota
	// KindUser: hay sesión activa con UserID.
	KindUser
	// KindFailed: la consulta en sí falló. Distinto de "sin sesión".
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "session"
	case KindFailed:
		return "failed"
	default:
		return "no_session"
	}
}

// State es el resultado normalizado de una consulta de identidad.
// UserID solo es significativo cuando Kind == KindUser.
type State struct {
	Kind   Kind
	UserID string
}

func None() State              { return State{Kind: KindNone} }
func User(userID string) State { return State{Kind: KindUser, UserID: userID} }
func Failed() State            { return State{Kind: KindFailed} }
