package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/cockroachdb/pebble"
	"github.com/parkerdavis/gmaps"
	"github.com/parkerdavis/gmaps/internal/usage"
	"github.com/parkerdavis/gmaps/internal/usage/store"
	"github.com/parkerdavis/gmaps/internal/usage/store/memory"
	pebbleStore "github.com/parkerdavis/gmaps/internal/usage/store/pebble"
	"github.com/spf13/cobra"
)

// DefaultLedgerPath is the default location of the persistent usage ledger,
// a pebble-backed database in the user's home directory.
var DefaultLedgerPath = cmp.Or(os.Getenv("HOME"), os.Getenv("USERPROFILE")) + "/.gmaps-usage-ledger"

type stderrLoggerAndTracer struct{}

func (l *stderrLoggerAndTracer) Infof(format string, args ...interface{}) {}
func (l *stderrLoggerAndTracer) Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func (l *stderrLoggerAndTracer) Eventf(ctx context.Context, format string, args ...interface{}) {}
func (l *stderrLoggerAndTracer) IsTracingEnabled(ctx context.Context) bool {
	return false
}

// openTracker opens the usage ledger and wraps it in a tracker. The returned
// close function flushes the store; callers defer it.
func openTracker(cmd *cobra.Command) (*usage.Tracker, func(), error) {
	var ledger store.Store[usage.Call]

	if temporary, _ := cmd.Flags().GetBool("temporary"); temporary {
		ledger = memory.NewStore[usage.Call]()
	} else {
		opts := &pebble.Options{
			LoggerAndTracer: &stderrLoggerAndTracer{},
		}

		var err error
		ledger, err = pebbleStore.NewStore(DefaultLedgerPath, opts, &store.JSONCodec[usage.Call]{})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open usage ledger: %w", err)
		}
	}

	closeLedger := func() {
		if err := ledger.Close(context.Background()); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	return usage.NewTracker(ledger, nil), closeLedger, nil
}

// recordCall adds the outcome of one billable API call to the ledger.
// Requests rejected before the network (validation, missing credential) are
// not recorded because nothing was spent. A failed destination write still
// records a billed success: the API already returned the image.
func recordCall(ctx context.Context, tracker *usage.Tracker, api string, err error) {
	if errors.Is(err, gmaps.ErrInvalidRequest) || errors.Is(err, gmaps.ErrCredentialRequired) {
		return
	}

	success := err == nil || errors.Is(err, gmaps.ErrWriteFailed)

	status := 0
	if success {
		status = http.StatusOK
	}

	var apiErr *gmaps.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
	}

	if _, recErr := tracker.Record(ctx, api, success, status); recErr != nil {
		fmt.Fprintln(os.Stderr, recErr)
	}
}
