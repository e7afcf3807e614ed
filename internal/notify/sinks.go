package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/segmentio/kafka-go"
)

// Sink одна точка пересылки заказа
type Sink interface {
	Name() string
	Send(ctx context.Context, p OrderPayload) error
}

func postJSON(ctx context.Context, client *http.Client, url string, p OrderPayload) (*http.Response, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return client.Do(req)
}

// spreadsheetSink posts to a spreadsheet script endpoint. Those endpoints answer with
// redirects and opaque statuses, so only transport errors count.
type spreadsheetSink struct {
	client *http.Client
	url    string
}

func (s *spreadsheetSink) Name() string { return "spreadsheet-bridge" }

func (s *spreadsheetSink) Send(ctx context.Context, p OrderPayload) error {
	resp, err := postJSON(ctx, s.client, s.url, p)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// webhookSink treats every non-2xx answer as a failure.
type webhookSink struct {
	client *http.Client
	url    string
}

func (s *webhookSink) Name() string { return "generic-webhook" }

func (s *webhookSink) Send(ctx context.Context, p OrderPayload) error {
	resp, err := postJSON(ctx, s.client, s.url, p)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook answered %d", resp.StatusCode)
	}
	return nil
}

// KafkaWriter the part of *kafka.Writer the sink needs.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publishes the payload keyed by order id.
type KafkaSink struct {
	writer KafkaWriter
}

func NewKafkaSink(w KafkaWriter) *KafkaSink { return &KafkaSink{writer: w} }

// NewKafkaWriter builds a synchronous writer for the orders topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
}

func (k *KafkaSink) Name() string { return "kafka" }

func (k *KafkaSink) Send(ctx context.Context, p OrderPayload) error {
	value, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(p.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte("order.placed")},
		},
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (k *KafkaSink) Close() error { return k.writer.Close() }
