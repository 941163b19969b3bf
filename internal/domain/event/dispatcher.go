package event

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Event is a domain fact routed by kind to its subscribers.
type Event interface {
	Kind() string
}

// Subscriber handles one published event. Implementations receive the
// event value read-only and must contain their own failures; a returned
// error is logged by the dispatcher and dropped.
type Subscriber func(e Event) error

// Dispatcher is an in-process publish/subscribe hub. Each subscriber runs
// on its own goroutine so publishing never blocks the caller's
// transaction result, and a failing subscriber cannot affect the others.
//
// Delivery is best effort: no ordering across subscribers, no
// persistence, no retry. Work in flight during shutdown may be abandoned.
type Dispatcher struct {
	mu     sync.RWMutex
	subs   map[string][]Subscriber
	wg     sync.WaitGroup
	logger *logrus.Logger
}

func NewDispatcher(logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		subs:   make(map[string][]Subscriber),
		logger: logger,
	}
}

// Subscribe registers fn for events of the given kind.
func (d *Dispatcher) Subscribe(kind string, fn Subscriber) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs[kind] = append(d.subs[kind], fn)
}

// Publish schedules e for delivery to every subscriber of its kind and
// returns immediately. Subscriber panics are recovered and logged.
func (d *Dispatcher) Publish(e Event) {
	d.mu.RLock()
	subs := d.subs[e.Kind()]
	d.mu.RUnlock()

	for _, fn := range subs {
		d.wg.Add(1)
		go d.deliver(e, fn)
	}
}

func (d *Dispatcher) deliver(e Event, fn Subscriber) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil && d.logger != nil {
			d.logger.WithFields(logrus.Fields{
				"kind":  e.Kind(),
				"panic": fmt.Sprintf("%v", r),
			}).Error("event subscriber panicked")
		}
	}()
	if err := fn(e); err != nil && d.logger != nil {
		d.logger.WithError(err).WithField("kind", e.Kind()).Error("event subscriber failed")
	}
}

// Wait blocks until all scheduled deliveries have finished. Intended for
// graceful shutdown and tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
