// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OrderedMap is a string-keyed map that remembers insertion order.
//
// Manifest documents are JSON objects whose key order is meaningful: new
// titles are queued in the order the host lists them. Go maps do not keep
// that order, so manifest snapshots and download bookkeeping use OrderedMap
// instead. The zero value is an empty map ready to use.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap builds an OrderedMap holding values in the order given by keys.
// Keys missing from values are skipped.
func NewOrderedMap[V any](keys []string, values map[string]V) OrderedMap[V] {
	var m OrderedMap[V]
	for _, k := range keys {
		if v, ok := values[k]; ok {
			m.Set(k, v)
		}
	}
	return m
}

// Len returns the number of entries.
func (m OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m OrderedMap[V]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Get returns the value stored under key and whether it was present.
func (m OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m OrderedMap[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Set stores value under key. A new key is appended to the order, an
// existing key keeps its position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Clone returns a copy that shares no backing storage with m.
func (m OrderedMap[V]) Clone() OrderedMap[V] {
	var c OrderedMap[V]
	for _, k := range m.keys {
		c.Set(k, m.values[k])
	}
	return c
}

// MarshalJSON encodes the map as a JSON object preserving key order.
func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("encode value of %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping the document's key order.
// A JSON null yields an empty map.
func (m *OrderedMap[V]) UnmarshalJSON(b []byte) error {
	*m = OrderedMap[V]{}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		var v V
		if err = dec.Decode(&v); err != nil {
			return fmt.Errorf("decode value of %q: %w", key, err)
		}
		m.Set(key, v)
	}

	if _, err = dec.Token(); err != nil {
		return err
	}
	return nil
}
