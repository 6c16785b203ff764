package pets

import "context"

// Repository es el contrato contra el almacén de documentos.
// Los adapters devuelven ErrNotFound cuando el id no existe; cualquier otro
// error se trata como falla de infraestructura (el service lo envuelve).
type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)

	// ListAll devuelve todos los registros ordenados por id descendente
	// (ids v7 => más reciente primero).
	ListAll(ctx context.Context) ([]Pet, error)
}
