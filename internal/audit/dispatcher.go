package audit

import (
	"context"
	"log"
	"sync"
	"time"
)

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink persists a single event.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
	wg    sync.WaitGroup
	once  sync.Once
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.sink.Log(ctx, ev); err != nil {
			log.Println("audit error:", err)
		}
		cancel()
	}
}

// Dispatch never blocks; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event", ev.Action)
	}
}

// Close drains queued events and stops the worker.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func Ref(id uint) *uint {
	return &id
}
