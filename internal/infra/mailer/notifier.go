package mailer

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
)

// ErrNotQueued reports a notification dropped because the queue was full
// or the notifier was closed.
var ErrNotQueued = errors.New("mailer: notification not queued")

type ContactSource interface {
	GetContact(ctx context.Context, id uint) (*user.Contact, error)
}

type notification struct {
	userID  uint
	subject string
	body    func(name string) string
}

// Notifier resolves recipients and sends mail on a single worker.
// Users who turned email notifications off are skipped.
type Notifier struct {
	sender   Sender
	contacts ContactSource

	queue  chan notification
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewNotifier(sender Sender, contacts ContactSource) *Notifier {
	n := &Notifier{
		sender:   sender,
		contacts: contacts,
		queue:    make(chan notification, 100),
	}

	n.wg.Add(1)
	go n.worker()
	return n
}

func (n *Notifier) worker() {
	defer n.wg.Done()

	for job := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		n.deliver(ctx, job)
		cancel()
	}
}

func (n *Notifier) deliver(ctx context.Context, job notification) {
	c, err := n.contacts.GetContact(ctx, job.userID)
	if err != nil {
		log.Printf("notify user %d: %v", job.userID, err)
		return
	}
	if !c.EmailNotifications || c.Email == "" {
		return
	}

	msg := Message{
		To:      c.Email,
		Subject: job.subject,
		HTML:    job.body(c.Name),
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		log.Printf("send mail to user %d: %v", job.userID, err)
	}
}

// enqueue never blocks; a full or closed queue drops the notification.
func (n *Notifier) enqueue(job notification) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		log.Println("mail queue closed, dropping notification for user", job.userID)
		return ErrNotQueued
	}

	select {
	case n.queue <- job:
		return nil
	default:
		log.Println("mail queue full, dropping notification for user", job.userID)
		return ErrNotQueued
	}
}

// Close drains queued mail and stops the worker. Later notifications
// are dropped.
func (n *Notifier) Close() {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()

	n.wg.Wait()
}
