package usecase

import (
	"context"

	"identity-service/pkg/mailer"

	"go.uber.org/zap"
)

type Notification struct {
	To      string
	Subject string
	Body    string
}

// Notifier decouples notification delivery from request handling: Enqueue
// never blocks and delivery failures are logged, not surfaced. Losing a
// notification never changes a request outcome.
type Notifier struct {
	mailer mailer.Mailer
	log    *zap.Logger
	queue  chan Notification
	done   chan struct{}
}

func NewNotifier(m mailer.Mailer, log *zap.Logger) *Notifier {
	return &Notifier{
		mailer: m,
		log:    log.With(zap.String("component", "notifier")),
		queue:  make(chan Notification, 64),
		done:   make(chan struct{}),
	}
}

// Start consumes the queue until the context is cancelled or Close is
// called.
func (n *Notifier) Start(ctx context.Context) {
	go func() {
		defer close(n.done)
		for {
			select {
			case note, ok := <-n.queue:
				if !ok {
					return
				}
				n.deliver(note)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Enqueue hands off a notification without blocking. A full queue drops
// the message with a log line.
func (n *Notifier) Enqueue(note Notification) {
	select {
	case n.queue <- note:
	default:
		n.log.Warn("Notification queue full, dropping message",
			zap.String("to", note.To),
			zap.String("subject", note.Subject),
		)
	}
}

// Close stops accepting messages and waits for in-flight deliveries.
func (n *Notifier) Close() {
	close(n.queue)
	<-n.done
}

func (n *Notifier) deliver(note Notification) {
	if err := n.mailer.Send(note.To, note.Subject, note.Body); err != nil {
		n.log.Error("Failed to deliver notification",
			zap.Error(err),
			zap.String("to", note.To),
			zap.String("subject", note.Subject),
		)
		return
	}

	n.log.Info("Notification delivered",
		zap.String("to", note.To),
		zap.String("subject", note.Subject),
	)
}
