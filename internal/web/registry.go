package web

import (
	"sync"
	"time"

	"pet-board/internal/domain/pets"
)

// draftTTL: cuánto vive un draft renderizado que nunca llega al POST.
const draftTTL = 30 * time.Minute

type draftEntry struct {
	form    *pets.Form
	addedAt time.Time
}

// formRegistry guarda el Form de cada draft entre el GET que lo renderiza y
// el POST que lo envía. Así dos POST simultáneos con el mismo token pegan
// contra el mismo controller y el guard anti doble-submit funciona.
// El draft se destruye en submit exitoso; los abandonados (navegación que
// nunca postea) vencen por TTL para que el mapa no crezca sin límite.
type formRegistry struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	byToken map[string]draftEntry
}

func newFormRegistry() *formRegistry {
	return &formRegistry{
		ttl:     draftTTL,
		now:     time.Now,
		byToken: make(map[string]draftEntry),
	}
}

// put registra el form y de paso barre los vencidos.
func (r *formRegistry) put(token string, f *pets.Form) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep()
	r.byToken[token] = draftEntry{form: f, addedAt: r.now()}
}

func (r *formRegistry) get(token string) (*pets.Form, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byToken[token]
	if !ok {
		return nil, false
	}
	if r.now().Sub(e.addedAt) > r.ttl {
		delete(r.byToken, token)
		return nil, false
	}
	return e.form, true
}

// getOrPut devuelve el form ya registrado para el token, o registra el
// recibido si no había (o estaba vencido). Atómico: dos POST concurrentes
// con el mismo token stale terminan compartiendo el mismo controller.
func (r *formRegistry) getOrPut(token string, f *pets.Form) *pets.Form {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.byToken[token]; ok && r.now().Sub(e.addedAt) <= r.ttl {
		return e.form
	}
	r.byToken[token] = draftEntry{form: f, addedAt: r.now()}
	return f
}

func (r *formRegistry) remove(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byToken, token)
}

// sweep borra las entradas vencidas. Llamar con el lock tomado.
func (r *formRegistry) sweep() {
	cutoff := r.now().Add(-r.ttl)
	for token, e := range r.byToken {
		if e.addedAt.Before(cutoff) {
			delete(r.byToken, token)
		}
	}
}
