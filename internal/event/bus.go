// Package event delivers state changes to subscribers in the order they
// happened, even when a subscriber reacts by causing another change.
package event

import "sync"

// Bus queues values and delivers them to subscribers one at a time.
//
// Owners call Post while holding their own lock, so queue order matches
// mutation order, and Flush after releasing it. A Flush that finds another
// goroutine already delivering returns at once; the active deliverer drains
// the queue, including values posted by the subscribers it is calling.
type Bus[T any] struct {
	mu       sync.Mutex
	queue    []T
	subs     map[int]func(T)
	order    []int
	nextID   int
	draining bool
}

// Subscribe registers fn and returns a function that removes it.
func (b *Bus[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs == nil {
		b.subs = make(map[int]func(T))
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.order = append(b.order, id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Post enqueues v without delivering it.
func (b *Bus[T]) Post(v T) {
	b.mu.Lock()
	b.queue = append(b.queue, v)
	b.mu.Unlock()
}

// Flush delivers queued values until the queue is empty.
func (b *Bus[T]) Flush() {
	b.mu.Lock()
	if b.draining {
		b.mu.Unlock()
		return
	}
	b.draining = true

	done := false
	defer func() {
		// A panicking subscriber leaves the rest of the queue for the next
		// Flush.
		if !done {
			b.mu.Lock()
			b.draining = false
			b.mu.Unlock()
		}
	}()

	for len(b.queue) > 0 {
		v := b.queue[0]
		b.queue = b.queue[1:]
		subs := make([]func(T), 0, len(b.order))
		for _, id := range b.order {
			subs = append(subs, b.subs[id])
		}
		b.mu.Unlock()

		for _, fn := range subs {
			fn(v)
		}

		b.mu.Lock()
	}

	b.draining = false
	done = true
	b.mu.Unlock()
}

// Publish posts v and flushes.
func (b *Bus[T]) Publish(v T) {
	b.Post(v)
	b.Flush()
}

// Len returns the number of registered subscribers.
func (b *Bus[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
