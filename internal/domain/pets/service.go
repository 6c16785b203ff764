package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidInput: draft con campos faltantes o inválidos. Recuperable.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound: el id no existe en el store.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable: falla de infraestructura del store. El draft del
	// caller se conserva; puede reintentar manualmente.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Service es el gateway de registros: traduce intents CRUD al Repository.
// No agrega locking propio; la serialización por registro la da el store.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		// UUIDv7: ordenable por tiempo, así "id descendente" == "más nuevo primero"
		newID: func() string { return uuid.Must(uuid.NewV7()).String() },
	}
}

// Create valida el draft, asigna id y persiste. Devuelve el registro canónico.
func (s *Service) Create(ctx context.Context, d Draft) (Pet, error) {
	if err := validate(d); err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := fromDraft(d)
	p.ID = s.newID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, wrapStore(err)
	}
	return p, nil
}

// Update reemplaza el registro completo con el draft (sin PATCH parcial).
// CreatedAt se conserva del registro existente; last-write-wins.
func (s *Service) Update(ctx context.Context, id string, d Draft) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	if err := validate(d); err != nil {
		return Pet{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, wrapStore(err)
	}

	p := fromDraft(d)
	p.ID = id
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, wrapStore(err)
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, wrapStore(err)
	}
	return p, nil
}

// ListAll trae todos los registros, más reciente primero. Ante falla del
// store no hay lista parcial: el error sube al page boundary.
func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, wrapStore(err)
	}
	return items, nil
}

func validate(d Draft) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if d.Age < 0 {
		return fmt.Errorf("%w: age must be >= 0", ErrInvalidInput)
	}
	return nil
}

func fromDraft(d Draft) Pet {
	owner := strings.TrimSpace(d.OwnerUserID)
	if owner == "" {
		owner = SentinelOwner
	}

	return Pet{
		OwnerUserID:  owner,
		Name:         strings.TrimSpace(d.Name),
		OwnerName:    strings.TrimSpace(d.OwnerName),
		Species:      strings.TrimSpace(d.Species),
		Age:          d.Age,
		HouseTrained: d.HouseTrained,
		Diet:         append([]string(nil), d.Diet...),
		ImageURL:     strings.TrimSpace(d.ImageURL),
		Likes:        append([]string(nil), d.Likes...),
		Dislikes:     append([]string(nil), d.Dislikes...),
	}
}

func wrapStore(err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
