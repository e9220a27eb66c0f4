package services

import (
	"context"
	"log"
	"time"

	"mycloth-atelier/internal/adapters/persistence/repositories"
	"mycloth-atelier/internal/core/domain"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled housekeeping: a daily low-stock digest and
// a nightly purge of expired logout tombstones.
type CronService struct {
	productRepo repositories.ProductRepository
	tokenRepo   repositories.TokenRepository
	scheduler   *cron.Cron
}

// NewCronService creates a new cron service. tokenRepo may be nil in
// local storage mode.
func NewCronService(productRepo repositories.ProductRepository, tokenRepo repositories.TokenRepository) *CronService {
	return &CronService{
		productRepo: productRepo,
		tokenRepo:   tokenRepo,
		scheduler:   cron.New(),
	}
}

// Start registers the jobs and launches the scheduler
func (s *CronService) Start() {
	// Low-stock digest at 08:30 daily
	s.scheduler.AddFunc("30 8 * * *", s.logLowStockDigest)

	// Purge expired tombstones at 03:00 daily
	if s.tokenRepo != nil {
		s.scheduler.AddFunc("0 3 * * *", s.purgeExpiredTokens)
	}

	s.scheduler.Start()
	log.Println("🚀 CronService started")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.scheduler.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

func (s *CronService) logLowStockDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := s.productRepo.List(ctx)
	if err != nil {
		log.Printf("❌ Low-stock digest query error: %v", err)
		return
	}

	low := 0
	for _, p := range products {
		if p.Stock < domain.LowStockThreshold {
			log.Printf("⚠️ Low stock: %s (%s) has %d left", p.Name, p.ID, p.Stock)
			low++
		}
	}
	if low == 0 {
		log.Println("✅ Low-stock digest: all products sufficiently stocked")
	}
}

func (s *CronService) purgeExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.tokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("❌ Token purge error: %v", err)
		return
	}
	log.Println("🗑️ Purged expired logout tombstones")
}
