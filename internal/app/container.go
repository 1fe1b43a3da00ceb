package app

import (
	"fmt"
	"log"
	"os"

	"clmi/internal/auth"
	"clmi/internal/config"
	"clmi/internal/domain/user"
	"clmi/internal/facets"
	"clmi/internal/infrastructure/cache"
	"clmi/internal/infrastructure/persistence/postgres"
	"clmi/internal/marketdata"
	"clmi/internal/pkg/token"
	"clmi/internal/refresh"
	"clmi/internal/session"
	"clmi/internal/usecase"
	"clmi/internal/ws"

	"github.com/google/uuid"
)

// Container owns every long-lived dependency and the wiring between
// them. Close releases them in reverse order of construction.
type Container struct {
	Config config.Config
	Logger *log.Logger

	Cache    *cache.Redis
	Sessions session.Store
	DB       *postgres.DB

	Upstream  *marketdata.Client
	Snapshots *usecase.Snapshots

	Jobs         usecase.JobListUsecase
	Skills       usecase.SkillListUsecase
	Universities usecase.UniversityListUsecase

	Tokens  token.Service
	AuthSvc *auth.Service

	Hub       *ws.Hub
	Scheduler *refresh.Scheduler

	closers []func() error
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c := &Container{Config: cfg, Logger: logger}

	c.Cache = cache.NewRedis(logger)
	c.closers = append(c.closers, c.Cache.Close)

	sessions, err := c.buildSessionStore(cfg.Session)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Sessions = sessions

	c.Upstream = marketdata.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger)

	var snapshotCache usecase.SnapshotCache
	if c.Cache.Available() {
		snapshotCache = c.Cache
	}
	c.Snapshots = usecase.NewSnapshots(c.Upstream, snapshotCache, cfg.Listing.SnapshotTTL, logger)

	mode := usecase.ParseMode(cfg.Listing.Mode)
	facetCfg := facets.Config{
		DemandHighMin:   cfg.Facets.DemandHighMin,
		DemandMediumMin: cfg.Facets.DemandMediumMin,
	}

	c.Jobs = usecase.NewJobListUsecase(c.Upstream, c.Snapshots, mode, logger)
	c.Skills = usecase.NewSkillListUsecase(c.Upstream, c.Snapshots, mode, facetCfg, logger)
	c.Universities = usecase.NewUniversityListUsecase(c.Upstream, c.Snapshots, mode, logger)

	directory, err := c.buildDirectory(cfg)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	secret := cfg.Auth.TokenSecret
	if secret == "" {
		// Demo tokens only need to hold within one process lifetime.
		secret = uuid.NewString()
	}
	c.Tokens = token.NewHMACService(secret, cfg.Auth.TokenExpiresIn)
	c.AuthSvc = auth.NewService(directory, c.Sessions, c.Tokens, logger)

	c.Hub = ws.NewHub(logger)
	ws.SetDefaultHub(c.Hub)

	c.Scheduler = refresh.NewScheduler(c.Snapshots, cfg.Upstream.Timeout*4, logger)

	return c, nil
}

func (c *Container) buildSessionStore(cfg config.SessionConfig) (session.Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return session.NewMemoryStore(), nil
	case "redis":
		if !c.Cache.Available() {
			return nil, fmt.Errorf("session backend redis requires a reachable redis")
		}
		return session.NewRedisStore(c.Cache), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}

func (c *Container) buildDirectory(cfg config.Config) (user.Directory, error) {
	switch cfg.Auth.Directory {
	case "", "mock":
		return auth.NewMockDirectory(), nil
	case "memory":
		return auth.NewMemoryDirectory(), nil
	case "postgres":
		db, err := postgres.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db
		c.closers = append(c.closers, db.Close)

		dir, err := postgres.NewUserDirectory(db)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, dir.Close)
		return dir, nil
	default:
		return nil, fmt.Errorf("unknown auth directory %q", cfg.Auth.Directory)
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
