// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-sync/internal/adapter"
	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/metrics"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/models"
)

const testSchema = "3"

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// memStateStore is an in-memory store.StateStore.
type memStateStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStateStore() *memStateStore {
	return &memStateStore{data: map[string][]byte{}}
}

func (m *memStateStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStateStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStateStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStateStore) raw(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.data[key])
}

// put seeds a key with the JSON encoding of v.
func (m *memStateStore) put(t *testing.T, key string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, m.Set(context.Background(), key, raw))
}

type fakeCatalog struct {
	tocReloads atomic.Int32
	catReloads atomic.Int32
}

func (c *fakeCatalog) ReloadTableOfContents() error {
	c.tocReloads.Add(1)
	return nil
}

func (c *fakeCatalog) ReloadCategories() error {
	c.catReloads.Add(1)
	return nil
}

// libraryServer serves "/3/<name>" like the export host.
type libraryServer struct {
	*httptest.Server

	mu       sync.Mutex
	manifest string
	status   map[string]int
	handlers map[string]http.HandlerFunc
	hits     map[string]int
	order    []string
}

func newLibraryServer(t *testing.T, manifest string) *libraryServer {
	t.Helper()
	s := &libraryServer{
		manifest: manifest,
		status:   map[string]int{},
		handlers: map[string]http.HandlerFunc{},
		hits:     map[string]int{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *libraryServer) serve(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutPrefix(r.URL.Path, "/"+testSchema+"/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	if r.Method == http.MethodGet {
		s.hits[name]++
		if title, isArchive := strings.CutSuffix(name, ".zip"); isArchive {
			s.order = append(s.order, title)
		}
	}
	status, hasStatus := s.status[name]
	handler := s.handlers[name]
	manifest := s.manifest
	s.mu.Unlock()

	if handler != nil {
		handler(w, r)
		return
	}
	if hasStatus && status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	switch {
	case name == "last_updated.json":
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, manifest)
	case name == TableOfContentsDocument:
		_, _ = io.WriteString(w, `[]`)
	case name == CategoriesDocument:
		_, _ = io.WriteString(w, `{}`)
	case strings.HasSuffix(name, ".zip"):
		_, _ = io.WriteString(w, "archive:"+name)
	default:
		http.NotFound(w, r)
	}
}

func (s *libraryServer) setManifest(m string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifest = m
}

func (s *libraryServer) setStatus(name string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[name] = status
}

func (s *libraryServer) setHandler(name string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[name] = h
}

func (s *libraryServer) archiveHits(title string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[title+".zip"]
}

func (s *libraryServer) archiveOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

// eventRecorder collects published events.
type eventRecorder struct {
	mu     sync.Mutex
	events []models.Event
}

func (r *eventRecorder) record(ev models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *eventRecorder) ofKind(kind models.EventKind) []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Event
	for _, ev := range r.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

type testEnv struct {
	ctrl    *syncController
	state   *memStateStore
	files   store.LibraryFiles
	server  *libraryServer
	catalog *fakeCatalog
	events  *eventRecorder
}

func newTestEnv(t *testing.T, server *libraryServer, state *memStateStore) *testEnv {
	t.Helper()

	host, err := adapter.NewHTTPLibraryHost(
		config.ClientAdapter{HostURL: server.URL, RequestTimeout: 5 * time.Second},
		config.ClientApp{SchemaVersion: testSchema},
		logger.Nop(),
	)
	require.NoError(t, err)

	if state == nil {
		state = newMemStateStore()
	}
	files := store.NewLibraryFileStorage(afero.NewMemMapFs(), "/docs")
	catalog := &fakeCatalog{}

	ctrl := NewSyncController(SyncDeps{
		Host:    host,
		State:   state,
		Files:   files,
		Catalog: catalog,
		Metrics: metrics.Nop(),
		Schema:  testSchema,
		Logger:  logger.Nop(),
		Now:     func() time.Time { return testNow },
	}).(*syncController)
	t.Cleanup(ctrl.Close)

	events := &eventRecorder{}
	ctrl.Subscribe(events.record)

	return &testEnv{
		ctrl:    ctrl,
		state:   state,
		files:   files,
		server:  server,
		catalog: catalog,
		events:  events,
	}
}

func strPtr(s string) *string { return &s }
