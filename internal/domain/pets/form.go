package pets

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
)

// FormState es el estado del controller de formulario.
type FormState int

const (
	// FormEditing: mutando el draft, sin actividad de red.
	FormEditing FormState = iota
	// FormSubmitting: hay un submit en vuelo.
	FormSubmitting
	// FormSucceeded: terminal; el draft ya fue persistido.
	FormSucceeded
)

var (
	// ErrSubmitInFlight: segundo submit mientras otro está en vuelo (o ya
	// terminó con éxito). Garantiza una sola mutación del store por draft.
	ErrSubmitInFlight = errors.New("submit already in flight")
)

// Form es el controller de un draft (alta o edición). Dueño exclusivo del
// draft hasta submit exitoso o descarte. Un submit fallido vuelve a
// FormEditing con el draft intacto: el usuario corrige y reenvía sin
// retipear nada.
type Form struct {
	mu    sync.Mutex
	svc   *Service
	state FormState

	Draft Draft

	// lastErr es el error del último submit fallido, para mostrarlo al
	// repoblar el form.
	lastErr error
}

// NewForm crea el controller para un alta (draft con defaults: age 0,
// listas vacías).
func NewForm(svc *Service) *Form {
	return &Form{svc: svc, state: FormEditing}
}

// NewEditForm crea el controller pre-poblado con un registro existente.
func NewEditForm(svc *Service, p Pet) *Form {
	return &Form{svc: svc, state: FormEditing, Draft: DraftOf(p)}
}

func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) LastErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Snapshot devuelve una copia del draft bajo lock. Para leer el draft desde
// otra goroutine mientras un Bind concurrente puede estar mutándolo.
func (f *Form) Snapshot() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Draft
}

// Bind aplica valores del form HTML al draft, un campo por key. Los campos
// lista pasan por SplitList (misma regla en alta y edición). Solo válido en
// FormEditing.
func (f *Form) Bind(values url.Values) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != FormEditing {
		return ErrSubmitInFlight
	}

	f.Draft.Name = values.Get("name")
	f.Draft.OwnerName = values.Get("owner_name")
	f.Draft.Species = values.Get("species")
	f.Draft.ImageURL = values.Get("image_url")
	f.Draft.Diet = SplitList(values.Get("diet"))
	f.Draft.Likes = SplitList(values.Get("likes"))
	f.Draft.Dislikes = SplitList(values.Get("dislikes"))

	// checkbox: presente => true
	f.Draft.HouseTrained = values.Get("house_trained") != ""

	if raw := strings.TrimSpace(values.Get("age")); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: age must be a number", ErrInvalidInput)
		}
		f.Draft.Age = age
	} else {
		f.Draft.Age = 0
	}

	if owner := strings.TrimSpace(values.Get("owner_user_id")); owner != "" {
		f.Draft.OwnerUserID = owner
	}

	return nil
}

// Submit persiste el draft: create si no tiene id, update si lo tiene.
// Re-submit mientras está en vuelo => ErrSubmitInFlight, sin tocar el store.
func (f *Form) Submit(ctx context.Context) (Pet, error) {
	f.mu.Lock()
	if f.state != FormEditing {
		f.mu.Unlock()
		return Pet{}, ErrSubmitInFlight
	}
	f.state = FormSubmitting
	draft := f.Draft
	f.mu.Unlock()

	var (
		p   Pet
		err error
	)
	if strings.TrimSpace(draft.ID) == "" {
		p, err = f.svc.Create(ctx, draft)
	} else {
		p, err = f.svc.Update(ctx, draft.ID, draft)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		// falla => de vuelta a edición, draft preservado
		f.state = FormEditing
		f.lastErr = err
		return Pet{}, err
	}

	f.state = FormSucceeded
	f.lastErr = nil
	return p, nil
}
