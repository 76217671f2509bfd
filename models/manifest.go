// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Manifest is the remote catalog: title -> version timestamp plus an
// optional note about the latest changes.
type Manifest struct {
	Titles  OrderedMap[string] `json:"titles"`
	Comment string             `json:"comment,omitempty"`
}

// UnmarshalJSON accepts both the current {"titles": {...}, "comment": "..."}
// shape and the legacy bare title map.
func (m *Manifest) UnmarshalJSON(b []byte) error {
	var probe struct {
		Titles  json.RawMessage `json:"titles"`
		Comment string          `json:"comment"`
	}

	trimmed := bytes.TrimSpace(b)
	if err := json.Unmarshal(trimmed, &probe); err == nil && len(probe.Titles) > 0 && !bytes.Equal(probe.Titles, []byte("null")) {
		var titles OrderedMap[string]
		if err = json.Unmarshal(probe.Titles, &titles); err != nil {
			return fmt.Errorf("decode manifest titles: %w", err)
		}
		m.Titles = titles
		m.Comment = probe.Comment
		return nil
	}

	var legacy OrderedMap[string]
	if err := json.Unmarshal(trimmed, &legacy); err != nil {
		return fmt.Errorf("decode legacy manifest: %w", err)
	}
	m.Titles = legacy
	m.Comment = ""
	return nil
}
