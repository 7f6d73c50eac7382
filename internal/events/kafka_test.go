package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestPublishWritesKeyedJSON(t *testing.T) {
	writer := &recordingWriter{}
	publisher := NewKafkaPublisher(writer, testLogger())

	event := Event{ID: "ORD-1", Name: "OrderCreated", Data: map[string]any{"currency": "USD"}}
	if err := publisher.Publish(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(writer.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(writer.messages))
	}
	msg := writer.messages[0]
	if string(msg.Key) != "ORD-1" {
		t.Fatalf("expected key ORD-1, got %s", msg.Key)
	}

	var decoded Event
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if decoded.Name != "OrderCreated" || decoded.Data["currency"] != "USD" {
		t.Fatalf("unexpected payload %+v", decoded)
	}
}

func TestPublishWrapsWriterError(t *testing.T) {
	writer := &recordingWriter{err: errors.New("broker down")}
	publisher := NewKafkaPublisher(writer, testLogger())

	err := publisher.Publish(context.Background(), Event{ID: "1", Name: "OrderCreated"})
	if err == nil || !errors.Is(err, writer.err) {
		t.Fatalf("expected wrapped writer error, got %v", err)
	}
}
