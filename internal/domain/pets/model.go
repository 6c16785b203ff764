package pets

import "time"

// SentinelOwner se usa como owner cuando no hay sesión activa
// (el registro de mascotas no exige autenticación).
const SentinelOwner = "test"

// Pet representa un registro de mascota persistido.
// Diet/Likes/Dislikes conservan orden de ingreso y no se deduplican.
type Pet struct {
	ID          string
	OwnerUserID string

	Name         string
	OwnerName    string
	Species      string
	Age          int
	HouseTrained bool
	Diet         []string
	ImageURL     string
	Likes        []string
	Dislikes     []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Draft es la versión editable y no persistida de un Pet.
// ID vacío => alta; ID seteado => edición de ese registro.
type Draft struct {
	ID string

	Name         string
	OwnerName    string
	Species      string
	Age          int
	HouseTrained bool
	Diet         []string
	ImageURL     string
	Likes        []string
	Dislikes     []string
	OwnerUserID  string
}

// DraftOf arma un Draft a partir de un Pet existente (para edición).
func DraftOf(p Pet) Draft {
	return Draft{
		ID:           p.ID,
		Name:         p.Name,
		OwnerName:    p.OwnerName,
		Species:      p.Species,
		Age:          p.Age,
		HouseTrained: p.HouseTrained,
		Diet:         append([]string(nil), p.Diet...),
		ImageURL:     p.ImageURL,
		Likes:        append([]string(nil), p.Likes...),
		Dislikes:     append([]string(nil), p.Dislikes...),
		OwnerUserID:  p.OwnerUserID,
	}
}
