package fluentlogger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresTagPrefix(t *testing.T) {
	_, err := NewClient(Config{Host: "127.0.0.1", Port: 24224})
	assert.EqualError(t, err, "fluentd tag prefix is required")
}

func TestNewClient_AsyncDoesNotDial(t *testing.T) {
	client, err := NewClient(Config{
		Host:      "127.0.0.1",
		Port:      1,
		TagPrefix: "reveal-contact-service",
		Timeout:   100 * time.Millisecond,
		Async:     true,
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	_ = client.Close()
}
