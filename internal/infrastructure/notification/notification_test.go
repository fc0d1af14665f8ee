package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/bikeshop-api/pkg/logger"
)

// ─── SMTP ─────────────────────────────────────────────────────────────────────

type fakeSender struct {
	err   error
	delay time.Duration
	sent  []*gomail.Message
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	time.Sleep(f.delay)
	f.sent = append(f.sent, m...)
	return f.err
}

func TestSMTPNotifier_Send(t *testing.T) {
	fs := &fakeSender{}
	n := &SMTPNotifier{dialer: fs, from: "shop@example.com"}

	err := n.Send(context.Background(), "john@example.com", "Welcome to our Shop!", "Hello John")
	require.NoError(t, err)
	require.Len(t, fs.sent, 1)
	assert.Equal(t, []string{"john@example.com"}, fs.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"shop@example.com"}, fs.sent[0].GetHeader("From"))
	assert.Equal(t, []string{"Welcome to our Shop!"}, fs.sent[0].GetHeader("Subject"))
}

func TestSMTPNotifier_ErrorDelServidor(t *testing.T) {
	n := &SMTPNotifier{dialer: &fakeSender{err: errors.New("535 auth failed")}}
	err := n.Send(context.Background(), "a@b.com", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "535")
}

func TestSMTPNotifier_Timeout(t *testing.T) {
	n := &SMTPNotifier{dialer: &fakeSender{delay: 200 * time.Millisecond}}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := n.Send(ctx, "a@b.com", "s", "b")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ─── Kafka ────────────────────────────────────────────────────────────────────

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaNotifier_Send(t *testing.T) {
	fw := &fakeWriter{}
	n := &KafkaNotifier{w: fw}

	require.NoError(t, n.Send(context.Background(), "john@example.com", "Welcome", "Hello"))
	require.Len(t, fw.msgs, 1)
	assert.Equal(t, []byte("john@example.com"), fw.msgs[0].Key)

	var ev WelcomeEvent
	require.NoError(t, json.Unmarshal(fw.msgs[0].Value, &ev))
	assert.Equal(t, "john@example.com", ev.To)
	assert.Equal(t, "Welcome", ev.Subject)
	assert.Equal(t, "Hello", ev.Body)

	require.NoError(t, n.Close())
	assert.True(t, fw.closed)
}

func TestKafkaNotifier_Error(t *testing.T) {
	n := &KafkaNotifier{w: &fakeWriter{err: errors.New("broker down")}}
	err := n.Send(context.Background(), "a@b.com", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

// ─── Log ──────────────────────────────────────────────────────────────────────

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logger.New(logger.Config{Env: "production", Level: "info", Output: &buf}))

	require.NoError(t, n.Send(context.Background(), "john@example.com", "Welcome", "Hello"))
	assert.Contains(t, buf.String(), "john@example.com")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Send(ctx, "a@b.com", "s", "b"), context.Canceled)
}
