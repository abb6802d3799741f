package processor

import (
	"context"
	"log"

	"communityhub/internal/app/portal/service"

	"github.com/robfig/cron/v3"
)

// StatsWarmer периодически пересчитывает статистику по категориям
// и обновляет кеш, чтобы запросы статистики не упирались в сканирование
type StatsWarmer struct {
	cron     *cron.Cron
	statsSvc service.StatsServiceInterface
}

func NewStatsWarmer(statsSvc service.StatsServiceInterface) *StatsWarmer {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &StatsWarmer{
		cron:     c,
		statsSvc: statsSvc,
	}
}

func (s *StatsWarmer) Start(ctx context.Context, schedule string) error {
	log.Printf("Starting stats warmer with schedule: %s", schedule)

	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.statsSvc.RefreshCategoryStatsCache(ctx); err != nil {
			log.Printf("ERROR: Failed to refresh category stats cache: %v", err)
		}
	})

	if err != nil {
		return err
	}

	s.cron.Start()

	// Первичный прогрев, чтобы кеш был тёплым сразу после старта
	if err := s.statsSvc.RefreshCategoryStatsCache(ctx); err != nil {
		log.Printf("WARNING: Failed initial category stats warmup: %v", err)
	}

	return nil
}

func (s *StatsWarmer) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Stats warmer stopped")
}
