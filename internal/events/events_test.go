package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

type payload struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
}

func TestNew(t *testing.T) {
	evt, err := New(TypeBookingApproved, "42", payload{BookingID: 42, Status: "APPROVED"})
	require.NoError(t, err)

	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, Source, evt.Source)
	assert.Equal(t, "42", evt.Key)

	var got payload
	require.NoError(t, json.Unmarshal(evt.Data, &got))
	assert.Equal(t, payload{BookingID: 42, Status: "APPROVED"}, got)
}

func TestKafkaPublisher(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("WritesKeyedMessage", func(t *testing.T) {
		w := &recordingWriter{}
		p := &KafkaPublisher{writer: w, logger: &logger}

		evt, err := New(TypeBookingCreated, "7", payload{BookingID: 7, Status: "WAITING"})
		require.NoError(t, err)
		require.NoError(t, p.Publish(ctx, evt))

		require.Len(t, w.msgs, 1)
		msg := w.msgs[0]
		assert.Equal(t, []byte("7"), msg.Key)
		assert.Contains(t, msg.Headers, kafka.Header{Key: "ce_type", Value: []byte(TypeBookingCreated)})

		var decoded Event
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		assert.Equal(t, evt.ID, decoded.ID)
		assert.Equal(t, TypeBookingCreated, decoded.Type)

		require.NoError(t, p.Close())
		assert.True(t, w.closed)
	})

	t.Run("WriteFailure", func(t *testing.T) {
		w := &recordingWriter{err: errors.New("broker down")}
		p := &KafkaPublisher{writer: w, logger: &logger}

		evt, err := New(TypeBookingRejected, "7", payload{BookingID: 7})
		require.NoError(t, err)
		assert.ErrorContains(t, p.Publish(ctx, evt), "broker down")
	})
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	p := NewLogPublisher(&logger)

	evt, err := New(TypeBookingCreated, "1", payload{BookingID: 1, Status: "WAITING"})
	require.NoError(t, err)
	require.NoError(t, p.Publish(context.Background(), evt))

	assert.Contains(t, buf.String(), `"type":"booking.created"`)
	assert.Contains(t, buf.String(), `"bookingId":1`)
}
