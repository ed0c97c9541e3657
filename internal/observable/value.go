// Package observable provides a typed state container with synchronous,
// subscription-ordered change notification.
package observable

import "sync"

// Value holds a single value of type T and notifies subscribers on every Set.
//
// Publishes are serialized: subscribers observe values in the order they were
// set, and each Set returns only after every subscriber has run. Subscribers
// may call Get, but must not call Set or Update on the same Value.
type Value[T any] struct {
	publishMu sync.Mutex // serializes Set + notify

	mu     sync.RWMutex
	value  T
	subs   []subscriber[T]
	nextID uint64
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// New creates a Value holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set replaces the value and notifies subscribers in subscription order.
func (v *Value[T]) Set(val T) {
	v.publishMu.Lock()
	defer v.publishMu.Unlock()
	v.store(val)
}

// Update applies fn to the current value and publishes the result.
// The read-modify-write is atomic with respect to other Set and Update calls.
func (v *Value[T]) Update(fn func(T) T) {
	v.publishMu.Lock()
	defer v.publishMu.Unlock()
	v.store(fn(v.Get()))
}

func (v *Value[T]) store(val T) {
	v.mu.Lock()
	v.value = val
	subs := make([]subscriber[T], len(v.subs))
	copy(subs, v.subs)
	v.mu.Unlock()

	for _, s := range subs {
		s.fn(val)
	}
}

// Subscribe registers fn to be called after every subsequent Set. It is not
// called with the current value. The returned function removes the
// subscription; calling it more than once is a no-op.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	v.nextID++
	id := v.nextID
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { v.remove(id) })
	}
}

func (v *Value[T]) remove(id uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, s := range v.subs {
		if s.id == id {
			v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of active subscribers.
func (v *Value[T]) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}
