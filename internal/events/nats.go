// Package events republishes store transitions on NATS.
package events

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/Pranav210905/fin/internal/store"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// SubjectPrefix is prepended to the event kind, e.g. finchat.post.liked.
const SubjectPrefix = "finchat."

var ErrClosed = errors.New("event bridge closed")

// Publisher is the part of *nats.Conn the bridge uses.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Connect dials the NATS server at url.
func Connect(url string, logger *zap.Logger) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("finchat"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
}

// Message is the payload published for each transition.
type Message struct {
	store.Event
	Timestamp string `json:"timestamp"`
}

func Subject(kind store.EventKind) string {
	return SubjectPrefix + string(kind)
}

// Bridge forwards store events to a Publisher from a single worker
// goroutine. Store listeners run under the store's writer lock, so events
// are queued without blocking and dropped when the queue is full.
type Bridge struct {
	pub    Publisher
	logger *zap.Logger
	now    func() time.Time

	queue chan store.Event
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
	unsubs []func()
}

func NewBridge(pub Publisher, logger *zap.Logger, buffer int) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	if buffer <= 0 {
		buffer = 256
	}
	b := &Bridge{
		pub:    pub,
		logger: logger,
		now:    time.Now,
		queue:  make(chan store.Event, buffer),
	}
	b.wg.Add(1)
	go b.run()
	return b
}

// Attach starts forwarding every transition of st.
func (b *Bridge) Attach(st *store.Store) error {
	// enqueue takes b.mu under the store lock, so subscribe without b.mu held.
	unsub := st.Subscribe(func(ev store.Event, _ *store.Snapshot) {
		b.enqueue(ev)
	})

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		unsub()
		return ErrClosed
	}
	b.unsubs = append(b.unsubs, unsub)
	b.mu.Unlock()
	return nil
}

func (b *Bridge) enqueue(ev store.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	select {
	case b.queue <- ev:
	default:
		b.logger.Warn("Event queue full, dropping event", zap.String("kind", string(ev.Kind)))
	}
}

func (b *Bridge) run() {
	defer b.wg.Done()
	for ev := range b.queue {
		data, err := json.Marshal(Message{Event: ev, Timestamp: b.now().UTC().Format(time.RFC3339)})
		if err != nil {
			b.logger.Error("Failed to encode event", zap.Error(err))
			continue
		}
		if err := b.pub.Publish(Subject(ev.Kind), data); err != nil {
			b.logger.Error("Failed to publish event", zap.String("kind", string(ev.Kind)), zap.Error(err))
		}
	}
}

// Close detaches from every store and waits until queued events are
// published.
func (b *Bridge) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	unsubs := b.unsubs
	b.unsubs = nil
	close(b.queue)
	b.mu.Unlock()

	for _, fn := range unsubs {
		fn()
	}
	b.wg.Wait()
}
