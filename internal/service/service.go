package service

import (
	"github.com/redis/go-redis/v9"

	"github.com/GlebRadaev/pointledger/internal/cache"
	"github.com/GlebRadaev/pointledger/internal/config"
	"github.com/GlebRadaev/pointledger/internal/handlers/operator"
	"github.com/GlebRadaev/pointledger/internal/metrics"
	"github.com/GlebRadaev/pointledger/internal/notify"
	"github.com/GlebRadaev/pointledger/internal/pg"
	"github.com/GlebRadaev/pointledger/internal/repo"
	"github.com/GlebRadaev/pointledger/internal/service/authservice"
	"github.com/GlebRadaev/pointledger/internal/service/pointservice"
	"github.com/GlebRadaev/pointledger/pkg/auth"
	"github.com/GlebRadaev/pointledger/pkg/lock"
)

// Deps are the collaborators of the ledger. Members, Cache and Publisher
// are optional.
type Deps struct {
	Repos     *repo.Repositories
	TXManager pg.TXManager
	Locker    pointservice.Locker
	Members   pointservice.MemberDirectory
	Cache     *cache.BalanceCache
	Publisher notify.Publisher
}

type Services struct {
	Ledger      pointservice.Ledger
	AuthService operator.TokenService
	JWTService  auth.JWTServiceInterface
	Dispatcher  *notify.Dispatcher
}

func New(cfg *config.Config, deps Deps) *Services {
	var invalidator notify.Invalidator
	if deps.Cache != nil {
		invalidator = deps.Cache
	}
	dispatcher := notify.NewDispatcher(invalidator, deps.Publisher, cfg.NotifyWorkers)

	core := pointservice.New(
		deps.Repos.EventRepo,
		deps.Repos.DetailRepo,
		deps.TXManager,
		deps.Locker,
		deps.Members,
		dispatcher,
		LedgerConfig(cfg),
	)

	var ledger pointservice.Ledger = metrics.Instrument(core)
	if deps.Cache != nil {
		ledger = cache.Wrap(ledger, deps.Cache)
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	return &Services{
		Ledger:      ledger,
		AuthService: authservice.New(cfg.OperatorKeyHash, auth.KeyHasher{}, jwtService, cfg.TokenTTL),
		JWTService:  jwtService,
		Dispatcher:  dispatcher,
	}
}

func LedgerConfig(cfg *config.Config) pointservice.Config {
	return pointservice.Config{
		PageSize:        cfg.AllocatorPageSize,
		AcquireTimeout:  cfg.LockAcquireTimeout,
		HoldTimeout:     cfg.LockHoldTimeout,
		SweepLockHold:   cfg.SweepLockHold,
		RetentionMonths: cfg.RetentionMonths,
		SweepWorkers:    cfg.SweepWorkers,
	}
}

// NewLocker shares locks through Redis when a client is given and falls
// back to an in-process locker for single-instance deployments.
func NewLocker(client redis.UniversalClient) pointservice.Locker {
	if client == nil {
		return lock.NewLocalLocker()
	}
	return lock.NewRedisLocker(client)
}
