package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los contadores Prometheus del servicio.
// Los métodos toleran receiver nil para que los handlers no tengan que chequear.
type Metrics struct {
	PetsCreated    prometheus.Counter
	PetsUpdated    prometheus.Counter
	IdentityChecks *prometheus.CounterVec
}

// New crea y registra las métricas en el registry default.
func New() *Metrics {
	return &Metrics{
		PetsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pet_board_pets_created_total",
			Help: "Total de registros de mascotas creados",
		}),
		PetsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pet_board_pets_updated_total",
			Help: "Total de registros de mascotas actualizados",
		}),
		IdentityChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pet_board_identity_checks_total",
			Help: "Total de consultas de identidad, por resultado",
		}, []string{"result"}),
	}
}

func (m *Metrics) IncPetsCreated() {
	if m == nil {
		return
	}
	m.PetsCreated.Inc()
}

func (m *Metrics) IncPetsUpdated() {
	if m == nil {
		return
	}
	m.PetsUpdated.Inc()
}

// IncIdentityCheck registra una consulta de identidad.
// result: "session" | "no_session" | "failed"
func (m *Metrics) IncIdentityCheck(result string) {
	if m == nil {
		return
	}
	m.IdentityChecks.WithLabelValues(result).Inc()
}
