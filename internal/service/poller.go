package service

import (
	"context"
	"log/slog"
	"time"
)

// Poller периодически вызывает refresh, пока жив контекст экрана.
// Задача останавливается детерминированно при отмене контекста:
// после выхода из Run ни одного вызова refresh не будет.
type Poller struct {
	log      *slog.Logger
	interval time.Duration
}

func NewPoller(log *slog.Logger, interval time.Duration) *Poller {
	return &Poller{
		log:      log,
		interval: interval,
	}
}

// Run блокирует до отмены контекста. Первичную загрузку экран делает сам,
// Run отвечает только за периодические обновления.
func (p *Poller) Run(ctx context.Context, refresh func(ctx context.Context)) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Debug("poller stopped", slog.Any("reason", ctx.Err()))
			return
		case <-ticker.C:
			refresh(ctx)
		}
	}
}
