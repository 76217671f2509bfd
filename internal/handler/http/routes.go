// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	router.Use(h.withMetrics)

	router.Get("/api/version", h.getServerVersion)

	// export files
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/{schema}/{name}", h.getExportFile)
		r.Head("/{schema}/{name}", h.getExportFile)
	})

	router.MethodNotAllowed(methodNotAllowed)

	return router
}
