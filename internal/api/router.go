package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/marciopitersena/clinca-neuro/internal/ai"
	"github.com/marciopitersena/clinca-neuro/internal/clinic"
	"github.com/marciopitersena/clinca-neuro/internal/patient"
	"github.com/marciopitersena/clinca-neuro/internal/schedule"
)

// Handler carries the single-user session. The mutex serializes session
// transitions so each one applies atomically, preserving the one-writer
// model the state machines assume.
type Handler struct {
	store  *clinic.Store
	agenda *schedule.Agenda
	nav    *patient.Navigator
	ai     *ai.Client
	log    zerolog.Logger
	now    func() time.Time
	mu     sync.Mutex
}

func (h *Handler) today() string {
	return h.now().Format(schedule.DateLayout)
}

type RouterConfig struct {
	Store     *clinic.Store
	Agenda    *schedule.Agenda
	Navigator *patient.Navigator
	AI        *ai.Client
	Redis     *redis.Client // nil when caching is disabled
	Log       zerolog.Logger
	Env       string
	Version   string
	Now       func() time.Time // defaults to time.Now
}

func NewRouter(cfg RouterConfig) http.Handler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	h := &Handler{
		store:  cfg.Store,
		agenda: cfg.Agenda,
		nav:    cfg.Navigator,
		ai:     cfg.AI,
		log:    cfg.Log,
		now:    now,
	}

	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(cfg.Log))

	health := NewHealthHandler(cfg.Redis, cfg.AI, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	// Agenda session
	r.Get("/agenda", h.getAgenda)
	r.Post("/agenda/navigate", h.navigateAgenda)
	r.Post("/agenda/today", h.agendaToday)
	r.Post("/agenda/select", h.selectAppointment)
	r.Post("/agenda/draft", h.startDraft)
	r.Post("/agenda/edit", h.startEdit)
	r.Patch("/agenda/draft", h.patchDraft)
	r.Post("/agenda/save", h.saveDraft)
	r.Post("/agenda/cancel", h.cancelDraft)
	r.Delete("/agenda/selection", h.deleteSelection)

	// Patient record session
	r.Get("/patients", h.listPatients)
	r.Get("/patients/search", h.searchPatients)
	r.Get("/patients/record", h.getRecord)
	r.Post("/patients/record/select", h.selectRecord)
	r.Post("/patients/record/insert", h.insertRecord)
	r.Post("/patients/record/toggle-edit", h.toggleEditRecord)
	r.Patch("/patients/record", h.patchRecord)
	r.Post("/patients/record/save", h.saveRecord)
	r.Post("/patients/record/cancel", h.cancelRecord)
	r.Post("/patients/record/navigate", h.navigateRecord)
	r.Delete("/patients/record", h.deleteRecord)

	// Registries
	r.Get("/doctors", h.listDoctors)
	r.Post("/doctors", h.createDoctor)
	r.Get("/doctors/{id}", h.getDoctor)
	r.Put("/doctors/{id}", h.updateDoctor)
	r.Delete("/doctors/{id}", h.deleteDoctor)

	r.Get("/insurances", h.listInsurances)
	r.Post("/insurances", h.createInsurance)
	r.Get("/insurances/{id}", h.getInsurance)
	r.Put("/insurances/{id}", h.updateInsurance)
	r.Delete("/insurances/{id}", h.deleteInsurance)

	r.Get("/reports", h.listReports)
	r.Post("/reports", h.createReport)
	r.Post("/reports/summary", h.aiSummary)
	r.Get("/reports/{id}", h.getReport)
	r.Put("/reports/{id}", h.updateReport)
	r.Delete("/reports/{id}", h.deleteReport)

	r.Get("/dashboard", h.getDashboard)

	// Generative-text collaborator
	r.Post("/ai/summary", h.aiSummary)
	r.Post("/ai/diagnosis", h.aiDiagnosis)
	r.Post("/ai/prescription", h.aiPrescription)

	return r
}
