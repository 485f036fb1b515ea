package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(h.withRateLimit)

	router.Route("/event-requests", func(r chi.Router) {
		r.Post("/", h.sendEventRequest)
		r.Get("/{request-id}", h.getEventRequest)
		r.Get("/{request-id}/state", h.getEventRequestState)
	})

	router.Route("/approval-requests", func(r chi.Router) {
		r.Get("/", h.getApprovals)
		r.Get("/{id}", h.getApproval)
		r.Patch("/{id}", h.voteApproval)
	})

	router.Route("/allowed-subjects", func(r chi.Router) {
		r.Get("/", h.getAllowedSubjects)
		r.Put("/{subject-id}", h.authorizeSubject)
	})

	router.Route("/subjects", func(r chi.Router) {
		r.Get("/", h.getSubjects)
		r.Get("/{subject-id}", h.getSubject)
		r.Get("/{subject-id}/validation", h.getValidationProof)
		r.Get("/{subject-id}/events", h.getEventsOfSubject)
		r.Get("/{subject-id}/events/{sn}", h.getEventOfSubject)
	})

	router.Get("/generate-keys", h.registerKeys)
	router.Get("/controller-id", h.getControllerID)
	router.Get("/peer-id", h.getPeerID)

	router.Get("/doc", h.getAPIDocPage)
	router.Get("/api-docs/openapi.json", h.getOpenAPIDocument)
	router.Get("/api/version/", h.getServerVersion)

	return router
}
