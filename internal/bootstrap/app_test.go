package bootstrap

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightbook/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Data: config.DataConfig{
			FlightsFile:   filepath.Join(dir, "flights.txt"),
			CustomersFile: filepath.Join(dir, "customers.txt"),
			BookingsFile:  filepath.Join(dir, "bookings.txt"),
		},
		Logging: config.LoggingConfig{Level: "error"},
	}
}

func TestRun_ExitFlushesData(t *testing.T) {
	cfg := testConfig(t)
	in := strings.NewReader("addcustomer Jo 123\nexit\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), cfg, in, &out))

	assert.Contains(t, out.String(), "Customer #1 added.")
	data, err := os.ReadFile(cfg.Data.CustomersFile)
	require.NoError(t, err)
	assert.Equal(t, "1::Jo::123::::\n", string(data))
}

func TestRun_EOFFlushesData(t *testing.T) {
	cfg := testConfig(t)
	in := strings.NewReader("addcustomer Jo 123\n")

	require.NoError(t, Run(context.Background(), cfg, in, io.Discard))

	data, err := os.ReadFile(cfg.Data.CustomersFile)
	require.NoError(t, err)
	assert.Equal(t, "1::Jo::123::::\n", string(data))
}

// Cancellation must interrupt a session blocked on input and still reach
// the final flush.
func TestRun_CancellationInterruptsBlockedInput(t *testing.T) {
	cfg := testConfig(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, cfg, pr, io.Discard)
	}()

	// Give the session time to block on the pipe, then cancel.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop on cancellation")
	}

	// The flush ran: the data files exist even though nothing was typed.
	_, err := os.Stat(cfg.Data.BookingsFile)
	assert.NoError(t, err)
}

func TestRun_RejectsAdminCommandForAgent(t *testing.T) {
	cfg := testConfig(t)
	cfg.Users = []config.UserConfig{
		{Username: "agent", Password: "pass", Role: "agent"},
	}
	in := strings.NewReader("agent\npass\ndeleteflight 1\nexit\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), cfg, in, &out))
	assert.Contains(t, out.String(), "deleteflight requires the admin role")
}

func TestRun_BadLoginFails(t *testing.T) {
	cfg := testConfig(t)
	cfg.Users = []config.UserConfig{
		{Username: "admin", Password: "secret", Role: "admin"},
	}
	in := strings.NewReader("admin\nwrong\n")

	err := Run(context.Background(), cfg, in, io.Discard)
	require.Error(t, err)
}
