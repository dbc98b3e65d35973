package command

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"flightbook/internal/registry"
	"flightbook/internal/storage"
)

// Dispatcher runs commands one at a time. A single mutex guards the whole
// execute-and-persist sequence, so the registry needs no locking of its
// own even when commands are dispatched from more than one goroutine.
type Dispatcher struct {
	mu    sync.Mutex
	sys   *registry.FlightBookingSystem
	store *storage.Storage
	log   *zap.Logger
}

func NewDispatcher(sys *registry.FlightBookingSystem, store *storage.Storage, log *zap.Logger) *Dispatcher {
	return &Dispatcher{sys: sys, store: store, log: log}
}

func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (*Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fields := []zap.Field{
		zap.String("invocation_id", uuid.NewString()),
		zap.String("command", cmd.Name()),
	}

	start := time.Now()
	res, err := cmd.Execute(ctx, d.sys, d.store)
	fields = append(fields, zap.Duration("took", time.Since(start)))

	if err != nil {
		d.log.Error("command failed", append(fields, zap.Error(err))...)
		return nil, err
	}
	d.log.Info("command executed", fields...)
	return res, nil
}

// System exposes the registry for read-only callers such as renderers.
func (d *Dispatcher) System() *registry.FlightBookingSystem {
	return d.sys
}
