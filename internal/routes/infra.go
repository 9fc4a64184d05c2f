package routes

import (
	"log"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	"github.com/BruksfildServices01/hirely-api/internal/config"
	"github.com/BruksfildServices01/hirely-api/internal/infra/cache"
	"github.com/BruksfildServices01/hirely-api/internal/infra/mailer"
	"github.com/BruksfildServices01/hirely-api/internal/infra/payment"
	infraRepo "github.com/BruksfildServices01/hirely-api/internal/infra/repository"
	"github.com/BruksfildServices01/hirely-api/internal/infra/storage"
)

// Infra holds the long-lived collaborators shared by routes and the
// scheduler. Optional integrations are nil when not configured.
type Infra struct {
	Cache    cache.Cache
	Audit    *audit.Dispatcher
	Notifier *mailer.Notifier
	Uploader storage.Uploader
	Payments payment.Gateway

	redis *cache.RedisCache
}

func NewInfra(cfg *config.Config, db *gorm.DB) *Infra {
	in := &Infra{
		Cache: cache.Noop{},
		Audit: audit.NewDispatcher(audit.New(db)),
		Notifier: mailer.NewNotifier(
			mailer.NewSender(cfg),
			infraRepo.NewUserGormRepository(db),
		),
	}

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Printf("redis unavailable, caching disabled: %v", err)
		} else {
			in.Cache = rc
			in.redis = rc
		}
	}

	if cfg.StorageEnabled() {
		in.Uploader = storage.NewS3(cfg)
	}

	if cfg.PaymentsEnabled() {
		mp, err := payment.NewMercadoPago(cfg.MercadoPagoToken, cfg.PaymentCurrency)
		if err != nil {
			log.Printf("mercado pago unavailable, checkout disabled: %v", err)
		} else {
			in.Payments = mp
		}
	}

	return in
}

// Close drains the audit and mail queues. Call it after the HTTP server
// has stopped accepting requests.
func (in *Infra) Close() {
	in.Audit.Close()
	in.Notifier.Close()

	if in.redis != nil {
		if err := in.redis.Close(); err != nil {
			log.Printf("redis close: %v", err)
		}
	}
}
