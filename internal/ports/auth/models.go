package auth

// Claims representa la información extraída de la sesión.
type Claims struct {
	UserID string
	Email  string
}
