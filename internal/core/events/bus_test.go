package events_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/casafin/household-ledger/internal/core/events"
)

func TestEvents(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Events Suite")
}

var _ = Describe("EventBus", func() {
	var bus *events.EventBus

	BeforeEach(func() {
		bus = events.NewEventBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	Describe("PublishSync", func() {
		It("runs every handler before returning", func() {
			var seen []string
			bus.Subscribe(events.EventTypeExpenseCreated, func(ctx context.Context, e events.Event) error {
				seen = append(seen, "first")
				return nil
			})
			bus.Subscribe(events.EventTypeExpenseCreated, func(ctx context.Context, e events.Event) error {
				seen = append(seen, "second")
				return nil
			})

			err := bus.PublishSync(context.Background(), events.NewExpenseCreatedEvent("hh-1", "exp-1", 50))
			Expect(err).ToNot(HaveOccurred())
			Expect(seen).To(Equal([]string{"first", "second"}))
		})

		It("stops at the first failing handler and surfaces the error", func() {
			var ranSecond bool
			bus.Subscribe(events.EventTypeSettlementRecorded, func(ctx context.Context, e events.Event) error {
				return errors.New("cache drop failed")
			})
			bus.Subscribe(events.EventTypeSettlementRecorded, func(ctx context.Context, e events.Event) error {
				ranSecond = true
				return nil
			})

			err := bus.PublishSync(context.Background(), events.NewSettlementRecordedEvent("hh-1", "set-1", 120))
			Expect(err).To(HaveOccurred())
			Expect(ranSecond).To(BeFalse())
		})

		It("is a no-op when nothing subscribed to the event type", func() {
			err := bus.PublishSync(context.Background(), events.NewExpenseDeletedEvent("hh-1", "exp-9"))
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Describe("ledger change events", func() {
		It("carry the household they belong to", func() {
			e := events.NewExpenseUpdatedEvent("hh-7", "exp-3", 80)

			var scoped events.HouseholdScoped = e
			Expect(scoped.Household()).To(Equal("hh-7"))
			Expect(e.EventType()).To(Equal(events.EventTypeExpenseUpdated))
			Expect(e.EventID()).ToNot(BeEmpty())
		})
	})
})
