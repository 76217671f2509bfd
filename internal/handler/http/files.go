// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-library-sync/internal/logger"
)

// manifestDocument is always revalidated by clients.
const manifestDocument = "last_updated.json"

var contentTypes = map[string]string{
	".json": "application/json",
	".zip":  "application/zip",
}

// getExportFile serves <schema>/<name> from the export directory. Range and
// conditional requests are handled by [http.ServeContent].
func (h *Handler) getExportFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	schema := urlParam(r, "schema")
	name := urlParam(r, "name")

	f, info, err := h.files.Open(schema, name)
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Str("func", "*Handler.getExportFile").Str("schema", schema).Str("name", name).Msg("error opening export file")
		}
		http.Error(w, http.StatusText(status), status)
		return
	}
	defer f.Close()

	if ct, ok := contentTypes[path.Ext(name)]; ok {
		w.Header().Set("Content-Type", ct)
	}
	if name == manifestDocument {
		w.Header().Set("Cache-Control", "no-cache")
	}

	http.ServeContent(w, r, name, info.ModTime(), f)
}

// urlParam returns the decoded path parameter. chi matches on the raw path
// when the request carries escaped separators.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}
