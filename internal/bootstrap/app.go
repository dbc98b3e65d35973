// Package bootstrap wires configuration, storage, the registry, and the
// interactive session together, and guarantees the final persistence flush
// on the way out.
package bootstrap

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"flightbook/config"
	"flightbook/internal/auth"
	"flightbook/internal/cli"
	"flightbook/internal/command"
	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	// stdout belongs to the interactive session.
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.EncoderConfig.TimeKey = "timestamp"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}

// Run loads the data files, authenticates when users are configured, runs
// the read-eval loop until "exit" or context cancellation, and stores all
// data files before returning.
func Run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	log, err := NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	store := storage.New(cfg.Data)
	if err := store.EnsureFiles(); err != nil {
		return err
	}

	sys := registry.New()
	if err := store.LoadAll(sys); err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	log.Info("data loaded",
		zap.Int("flights", len(sys.Flights())),
		zap.Int("customers", len(sys.Customers())))

	reader := bufio.NewScanner(in)

	users := auth.FromConfig(cfg.Users)
	var user *auth.User
	if len(users) > 0 {
		user, err = login(reader, out, users)
		if err != nil {
			return err
		}
		log.Info("user logged in", zap.String("username", user.Username), zap.String("role", user.Role))
	}

	dispatcher := command.NewDispatcher(sys, store, log)

	fmt.Fprintln(out, "----- FLIGHT BOOKING SYSTEM -----")
	fmt.Fprintln(out, "Enter 'help' to see a list of available commands.")

	// Input is read on its own goroutine so a signal can interrupt a
	// session blocked on stdin and still reach the final flush.
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		for reader.Scan() {
			select {
			case lines <- reader.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- reader.Err()
	}()

loop:
	for {
		fmt.Fprint(out, "> ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			break loop
		case text, ok := <-lines:
			if !ok {
				break loop
			}
			line = strings.TrimSpace(text)
		}

		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}

		cmd, err := cli.Parse(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if cli.RequiresAdmin(cmd) && user != nil && !user.IsAdmin() {
			fmt.Fprintf(out, "%s requires the admin role\n", cmd.Name())
			continue
		}

		res, err := dispatcher.Dispatch(ctx, cmd)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, res.Render())
	}
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	default:
	}

	if err := store.StoreAll(sys); err != nil {
		return fmt.Errorf("store data: %w", err)
	}
	log.Info("data stored")
	return nil
}

func login(reader *bufio.Scanner, out io.Writer, users []auth.User) (*auth.User, error) {
	fmt.Fprint(out, "Username: ")
	if !reader.Scan() {
		return nil, fmt.Errorf("login aborted: %w", auth.ErrInvalidCredentials)
	}
	username := strings.TrimSpace(reader.Text())

	fmt.Fprint(out, "Password: ")
	if !reader.Scan() {
		return nil, fmt.Errorf("login aborted: %w", auth.ErrInvalidCredentials)
	}
	password := strings.TrimSpace(reader.Text())

	return auth.Authenticate(users, username, password)
}
