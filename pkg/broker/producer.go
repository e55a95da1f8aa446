package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Producer publishes invoice lifecycle events. Delivery is async and
// fire-and-forget; a lost event never fails the request that produced it.
type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type InvoiceCreatedEvent struct {
	InvoiceID  string          `json:"invoice_id,omitempty"`
	PackageKey string          `json:"package_key"`
	Deposit    decimal.Decimal `json:"deposit"`
	Mode       string          `json:"mode"`
}

func (p *Producer) SendInvoiceCreated(ctx context.Context, invoiceID, packageKey string, deposit decimal.Decimal, mode string) {
	event := InvoiceCreatedEvent{
		InvoiceID:  invoiceID,
		PackageKey: packageKey,
		Deposit:    deposit,
		Mode:       mode,
	}

	p.send(ctx, event)
}

func (p *Producer) send(ctx context.Context, event InvoiceCreatedEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	key := event.InvoiceID
	if key == "" {
		key = uuid.Must(uuid.NewV4()).String()
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// NoopProducer stands in when no brokers are configured.
type NoopProducer struct{}

func (NoopProducer) SendInvoiceCreated(_ context.Context, _, _ string, _ decimal.Decimal, _ string) {}

type infoLogger struct {
	l *slog.Logger
}

func (il *infoLogger) Printf(format string, args ...any) {
	il.l.Info(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (el *errorLogger) Printf(format string, args ...any) {
	el.l.Error(fmt.Sprintf(format, args...))
}
