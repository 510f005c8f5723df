package probe_test

import (
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paxscan/internal/probe"
)

func TestAlways(t *testing.T) {
	assert.True(t, probe.Always(true).IsAvailable())
	assert.False(t, probe.Always(false).IsAvailable())
}

func TestDialProbe_ReachableEndpoint(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	p := probe.NewDialProbe(fmt.Sprintf("http://%s/v1/chat/completions", ln.Addr()))
	assert.True(t, p.IsAvailable())
}

func TestDialProbe_UnreachableEndpoint(t *testing.T) {
	// Grab a free port and close the listener so nothing answers there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	p := probe.NewDialProbe("http://" + addr)
	assert.False(t, p.IsAvailable())
}
