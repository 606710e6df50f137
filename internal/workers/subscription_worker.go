package workers

import (
	"context"
	"time"

	"supermock_backend/internal/logger"
	"supermock_backend/internal/services"
)

// SubscriptionWorker периодически переводит просроченные подписки в
// EXPIRED. Запросные пути не полагаются на эту зачистку: активность
// подписки всегда проверяется по end_date.
type SubscriptionWorker struct {
	subscriptionService services.SubscriptionService
	interval            time.Duration
}

func NewSubscriptionWorker(subscriptionService services.SubscriptionService, interval time.Duration) *SubscriptionWorker {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	return &SubscriptionWorker{
		subscriptionService: subscriptionService,
		interval:            interval,
	}
}

// Start запускает фоновую зачистку; первый проход выполняется сразу
func (w *SubscriptionWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *SubscriptionWorker) run(ctx context.Context) {
	w.sweep()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Subscription worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *SubscriptionWorker) sweep() {
	count, err := w.subscriptionService.ExpireStale(time.Now())
	if err != nil {
		logger.WorkerLog("subscription", "expire stale", err)
		return
	}
	if count > 0 {
		logger.Info("Marked subscriptions as expired", "count", count)
	}
}
