package auditlog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-AdPlacementService/internal/lifecycle"
)

// DefaultQueue очередь заметок аудита
const DefaultQueue = "subscription.audit"

// Publisher публикует заметки аудита в RabbitMQ
// Доставка не влияет на переходы: ошибки возвращаются вызывающему только для логирования
type Publisher struct {
	url   string
	queue string
	dial  Dialer
	log   Logger

	mu      sync.Mutex
	ch      Channel
	closeFn func() error
}

// NewPublisher создает издателя; подключение устанавливается при первой публикации
func NewPublisher(url, queue string, log Logger) *Publisher {
	return newPublisher(url, queue, DialAMQP, log)
}

func newPublisher(url, queue string, dial Dialer, log Logger) *Publisher {
	if queue == "" {
		queue = DefaultQueue
	}
	return &Publisher{url: url, queue: queue, dial: dial, log: log}
}

// DialAMQP подключается к брокеру и объявляет durable очередь
func DialAMQP(url, queue string) (Channel, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}

	return ch, conn.Close, nil
}

// AppendNote публикует заметку о подписке
func (p *Publisher) AppendNote(ctx context.Context, note lifecycle.Note) error {
	createdAt := note.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	body, err := json.Marshal(Message{
		ID:             uuid.NewString(),
		SubscriptionID: note.SubscriptionID,
		AuthorID:       note.AuthorID,
		Body:           note.Body,
		CreatedAt:      createdAt,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		ch, closeFn, err := p.dial(p.url, p.queue)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrConnect, err)
		}
		p.ch, p.closeFn = ch, closeFn
	}

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    createdAt,
		Body:         body,
	})
	if err != nil {
		// канал после ошибки не переиспользуем, переподключимся при следующей заметке
		p.resetLocked()
		return fmt.Errorf("%w: subscription_id=%d: %v", ErrPublish, note.SubscriptionID, err)
	}

	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
}

func (p *Publisher) resetLocked() {
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			p.log.Warn("auditlog: failed to close channel: %v", err)
		}
	}
	if p.closeFn != nil {
		if err := p.closeFn(); err != nil {
			p.log.Warn("auditlog: failed to close connection: %v", err)
		}
	}
	p.ch, p.closeFn = nil, nil
}

// Nop отбрасывает заметки, используется при выключенном RabbitMQ
type Nop struct{}

func (Nop) AppendNote(context.Context, lifecycle.Note) error { return nil }
