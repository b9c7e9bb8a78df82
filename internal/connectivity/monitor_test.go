package connectivity

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

type switchDialer struct {
	up atomic.Bool
}

func (d *switchDialer) dial(context.Context, string, string) (net.Conn, error) {
	if !d.up.Load() {
		return nil, errors.New("connect: connection refused")
	}
	client, server := net.Pipe()
	_ = server.Close()
	return client, nil
}

func TestHostPort(t *testing.T) {
	tests := map[string]string{
		"https://n8n.example.com/webhook/booking": "n8n.example.com:443",
		"http://n8n.example.com/webhook/booking":  "n8n.example.com:80",
		"http://127.0.0.1:5678/webhook/booking":   "127.0.0.1:5678",
		"https://[::1]:8443/webhook/check-spots":  "[::1]:8443",
	}
	for raw, expected := range tests {
		got, err := hostPort(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, expected, got)
	}

	_, err := hostPort("/relative/path")
	assert.Error(t, err)
}

func TestMonitor_TransitionsAndNotifies(t *testing.T) {
	dialer := &switchDialer{}
	dialer.up.Store(true)

	m, err := NewMonitor("https://n8n.example.com/webhook", time.Minute, time.Second, nopLogger{})
	require.NoError(t, err)
	m.WithDialer(dialer.dial)

	notified := make(chan struct{}, 1)
	m.OnOnline(func() { notified <- struct{}{} })

	assert.True(t, m.IsOnline())
	assert.True(t, m.Check(context.Background()))

	dialer.up.Store(false)
	assert.False(t, m.Check(context.Background()))
	assert.False(t, m.IsOnline())

	select {
	case <-notified:
		t.Fatal("no notification expected while going offline")
	default:
	}

	dialer.up.Store(true)
	assert.True(t, m.Check(context.Background()))

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("expected online notification")
	}
}

func TestMonitor_RealListener(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	m, err := NewMonitor("http://"+l.Addr().String()+"/webhook", time.Minute, time.Second, nopLogger{})
	require.NoError(t, err)
	assert.True(t, m.Check(context.Background()))

	addr := l.Addr().String()
	require.NoError(t, l.Close())

	m2, err := NewMonitor("http://"+addr+"/webhook", time.Minute, time.Second, nopLogger{})
	require.NoError(t, err)
	assert.False(t, m2.Check(context.Background()))
}
