package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/casafin/household-ledger/internal/core/events"
	"github.com/casafin/household-ledger/pkg/logger"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start background workers",
}

// Event audit worker: subscribes to every ledger event type and writes an
// audit line per event. Useful for watching ledger traffic in development.
var eventWorkerCmd = &cobra.Command{
	Use:   "events",
	Short: "Start the ledger event audit worker",
	Run: func(cmd *cobra.Command, args []string) {
		startEventWorker()
	},
}

func startEventWorker() {
	lg := logger.L()
	bus := events.NewEventBus(lg)

	audit := func(_ context.Context, event events.Event) error {
		lg.Info("ledger event",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}

	for _, eventType := range []string{
		events.EventTypeExpenseCreated,
		events.EventTypeExpenseUpdated,
		events.EventTypeExpenseDeleted,
		events.EventTypeSettlementRecorded,
		events.EventTypeBudgetUpserted,
	} {
		bus.Subscribe(eventType, audit)
	}

	lg.Info("event audit worker started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	lg.Info("event audit worker stopping", "signal", sig)
}

func init() {
	workerCmd.AddCommand(eventWorkerCmd)
	rootCmd.AddCommand(workerCmd)
}
