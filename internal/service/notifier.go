// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-library-sync/models"
)

type subscription struct {
	id int
	fn Listener
}

// notifier fans events out to every subscribed listener in subscription
// order. The listener list is copied before delivery, so a listener may
// subscribe or unsubscribe from inside its own callback.
type notifier struct {
	mu     sync.RWMutex
	nextID int
	subs   []subscription
}

func newNotifier() *notifier {
	return &notifier{}
}

func (n *notifier) Subscribe(l Listener) func() {
	if l == nil {
		return func() {}
	}

	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscription{id: id, fn: l})
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { n.unsubscribe(id) })
	}
}

func (n *notifier) unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, s := range n.subs {
		if s.id == id {
			n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
			return
		}
	}
}

func (n *notifier) Publish(ev models.Event) {
	n.mu.RLock()
	subs := make([]subscription, len(n.subs))
	copy(subs, n.subs)
	n.mu.RUnlock()

	for _, s := range subs {
		s.fn(ev)
	}
}

// Changed publishes the generic "state changed" event.
func (n *notifier) Changed() {
	n.Publish(models.Event{Kind: models.EventChanged})
}
