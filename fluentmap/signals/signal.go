package signals

import (
	"reflect"
	"slices"
	"sync"
)

type entry[E any] struct {
	id       any
	observer Observer[E]
}

type SignalImp[E any] struct {
	mu        sync.RWMutex
	observers []entry[E]
}

func NewSignal[E any]() *SignalImp[E] {
	return &SignalImp[E]{}
}

// Attach registers observer under observerID, or under the observer's
// function pointer when no id is given. Attaching the same id twice keeps
// the first observer.
func (s *SignalImp[E]) Attach(observer Observer[E], observerID ...any) Subscription {
	id := resolveID(observer, observerID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.ContainsFunc(s.observers, func(e entry[E]) bool { return e.id == id }) {
		s.observers = append(s.observers, entry[E]{id: id, observer: observer})
	}
	return subscription(func() {
		s.Detach(observer, id)
	})
}

func (s *SignalImp[E]) Detach(observer Observer[E], observerID ...any) {
	id := resolveID(observer, observerID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = slices.DeleteFunc(s.observers, func(e entry[E]) bool { return e.id == id })
}

func (s *SignalImp[E]) Notify(event E) {
	s.mu.RLock()
	observers := slices.Clone(s.observers)
	s.mu.RUnlock()
	for _, e := range observers {
		e.observer(event)
	}
}

func (s *SignalImp[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

func resolveID[E any](observer Observer[E], observerID []any) any {
	if len(observerID) > 0 {
		return observerID[0]
	}
	return makeID(observer)
}

func makeID[E any](observer Observer[E]) uintptr {
	return reflect.ValueOf(observer).Pointer()
}
