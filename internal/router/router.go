package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/mwestra/zzpcheck/internal/handler"
	mw "github.com/mwestra/zzpcheck/internal/middleware"
)

func New(checklistH *handler.ChecklistHandler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.RequestID)
	r.Use(mw.Logger)

	r.Get("/", checklistH.Index)
	r.Post("/submit", checklistH.Submit)

	return r
}
