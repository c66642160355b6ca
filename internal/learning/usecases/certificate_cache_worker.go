package usecases

import (
	"context"
	"log/slog"

	"edudb-server/internal/infra/async"
	"edudb-server/internal/infra/cache"
)

func NewCertificateCacheWorker(broker async.InternalBroker, cache cache.Cache) *CertificateCacheWorker {
	return &CertificateCacheWorker{
		broker: broker,
		cache:  cache,
		stop:   make(chan struct{}),
	}
}

var _ async.Worker = (*CertificateCacheWorker)(nil)

// CertificateCacheWorker drops cached certificates whenever the database is
// created or reset, since either may replace the certificates table.
type CertificateCacheWorker struct {
	broker async.InternalBroker
	cache  cache.Cache
	stop   chan struct{}
}

func (w *CertificateCacheWorker) Run(ctx context.Context, done func()) {
	defer done()

	subscription, err := w.broker.Subscribe(async.StoreEventsTopic)
	if err != nil {
		slog.Error("subscribing to topic", slog.String("error", err.Error()))
		return
	}
	defer func() {
		if err := w.broker.Unsubscribe(async.StoreEventsTopic, subscription); err != nil {
			slog.Debug("unsubscribing from topic", slog.String("error", err.Error()))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("certificate cache worker cancelled")
			return
		case <-w.stop:
			return
		case msg, ok := <-subscription.Receiver:
			if !ok {
				return
			}
			w.handle(msg)
			msg.Ack()
		}
	}
}

func (w *CertificateCacheWorker) handle(msg async.BrokerMessage) {
	switch msg.Event {
	case async.DatabaseCreatedEvent, async.DatabaseResetEvent:
		w.cache.Clear()
		slog.Info("certificate cache cleared", slog.String("event", msg.Event))
	default:
		slog.Warn("event not supported", slog.String("event", msg.Event))
	}
}

// Shutdown stops Run. It must be called at most once.
func (w *CertificateCacheWorker) Shutdown() {
	close(w.stop)
}
