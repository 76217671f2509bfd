// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
)

type versionResponse struct {
	Version string `json:"version"`
	Schema  string `json:"schema"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(versionResponse{Version: h.version, Schema: h.schema}); err != nil {
		h.logger.Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version")
	}
}
