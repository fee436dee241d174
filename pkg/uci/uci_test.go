package uci_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/arjunp/corvid/pkg/engine"
	"github.com/arjunp/corvid/pkg/uci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startDriver(t *testing.T) (chan<- string, <-chan string, *uci.Driver) {
	t.Helper()
	in := make(chan string, 10)
	d, out := uci.NewDriver(context.Background(), engine.New(), in, nil)
	return in, out, d
}

func collectUntil(t *testing.T, out <-chan string, prefix string, timeout time.Duration) []string {
	t.Helper()
	var lines []string
	deadline := time.After(timeout)
	for {
		select {
		case line, ok := <-out:
			if !ok {
				t.Fatalf("output closed before seeing %q", prefix)
			}
			lines = append(lines, line)
			if strings.HasPrefix(line, prefix) {
				return lines
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q, got: %v", prefix, lines)
		}
	}
}

func TestHandshakeSendsIdentityAndUciOK(t *testing.T) {
	_, out, _ := startDriver(t)
	lines := collectUntil(t, out, "uciok", time.Second)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "id name corvid")
	assert.Contains(t, joined, "id author")
}

func TestIsReadyRespondsReadyOK(t *testing.T) {
	in, out, _ := startDriver(t)
	collectUntil(t, out, "uciok", time.Second)

	in <- "isready"
	collectUntil(t, out, "readyok", time.Second)
}

func TestGoDepthProducesBestMove(t *testing.T) {
	in, out, _ := startDriver(t)
	collectUntil(t, out, "uciok", time.Second)

	in <- "position startpos"
	in <- "go depth 2"
	lines := collectUntil(t, out, "bestmove", 5*time.Second)

	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "bestmove "))
}

func TestQuitClosesOutput(t *testing.T) {
	in, out, d := startDriver(t)
	collectUntil(t, out, "uciok", time.Second)

	in <- "quit"
	<-d.Closed()

	_, ok := <-out
	assert.False(t, ok)
}
