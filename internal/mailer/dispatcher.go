package mailer

import (
	"context"
	"log"
	"sync"
)

const (
	// DispatchBufferSize is the size of the outgoing message buffer
	DispatchBufferSize = 64
)

// Deliverer sends one rendered message. *Sender implements it; tests
// substitute fakes.
type Deliverer interface {
	Send(msg Message) error
}

// Dispatcher sends notifications in the background so HTTP handlers never
// block the client on mail delivery. Delivery failures are logged and
// swallowed; by the time mail is attempted the request has already
// succeeded from the caller's perspective.
type Dispatcher struct {
	sender Deliverer
	buffer chan Message
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher. A nil sender means mail is not
// configured; enqueued messages are logged and dropped.
func NewDispatcher(sender Deliverer) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		buffer: make(chan Message, DispatchBufferSize),
		stopCh: make(chan struct{}),
	}
}

// Enqueue schedules a message for delivery (non-blocking). A full buffer
// drops the message rather than stalling the request path.
func (d *Dispatcher) Enqueue(msg Message) {
	if d.sender == nil {
		log.Printf("mail not configured, dropping %q", msg.Subject)
		return
	}
	select {
	case d.buffer <- msg:
	default:
		log.Printf("mail buffer full, dropping %q", msg.Subject)
	}
}

// Start launches the delivery worker.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go d.deliverLoop(ctx)
}

// Stop drains pending messages and waits for the worker to exit.
func (d *Dispatcher) Stop() {
	close(d.stopCh)
	d.wg.Wait()
}

func (d *Dispatcher) deliverLoop(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case msg := <-d.buffer:
			d.deliver(msg)
		case <-d.stopCh:
			// Drain what is already queued, then exit.
			for {
				select {
				case msg := <-d.buffer:
					d.deliver(msg)
				default:
					return
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

func (d *Dispatcher) deliver(msg Message) {
	if err := d.sender.Send(msg); err != nil {
		log.Printf("mail delivery failed: %v", err)
	}
}
