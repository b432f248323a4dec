package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"portail-rse/internal/audit"
	auditStore "portail-rse/internal/audit/store"
	csrdService "portail-rse/internal/csrd/service"
	csrdStore "portail-rse/internal/csrd/store"
	entrepriseService "portail-rse/internal/entreprise/service"
	entrepriseStore "portail-rse/internal/entreprise/store"
	httpapi "portail-rse/internal/http"
	"portail-rse/internal/platform/config"
	"portail-rse/internal/platform/kafka"
	"portail-rse/internal/platform/postgres"
	"portail-rse/internal/platform/redis"
	reglementationService "portail-rse/internal/reglementation/service"
	reglementationStore "portail-rse/internal/reglementation/store"
)

// infra holds the stores chosen from configuration. Every external
// dependency is optional and falls back to memory when unset.
type infra struct {
	entreprises entrepriseService.Store
	reports     csrdService.Store
	simulations reglementationService.SimulationCache
	audit       *audit.Publisher
	health      []httpapi.HealthCheck

	closers []func()
}

func openInfra(ctx context.Context, cfg config.Server, log *slog.Logger) (_ *infra, err error) {
	in := &infra{}
	defer func() {
		if err != nil {
			in.Close()
		}
	}()

	if cfg.Postgres.URL != "" {
		if err := in.openPostgres(ctx, cfg.Postgres); err != nil {
			return nil, err
		}
		log.Info("using postgres stores")
	} else {
		in.entreprises = entrepriseStore.NewInMemory()
		in.reports = csrdStore.NewInMemory()
		log.Warn("DATABASE_URL is empty, using in-memory stores")
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	if redisClient != nil {
		in.closers = append(in.closers, func() { _ = redisClient.Close() })
		in.health = append(in.health, httpapi.HealthCheck{Name: "redis", Check: redisClient.Health})
		in.simulations = reglementationStore.NewRedisCache(redisClient.Client)
	} else {
		in.simulations = reglementationStore.NewInMemory()
	}

	kafkaClient, err := kafka.NewClient(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	var sink audit.Store = auditStore.NewInMemoryStore()
	if kafkaClient != nil {
		in.closers = append(in.closers, kafkaClient.Close)
		if err := kafka.EnsureTopic(ctx, kafkaClient, cfg.Kafka.AuditTopic); err != nil {
			return nil, err
		}
		in.health = append(in.health, httpapi.HealthCheck{Name: "kafka", Check: kafkaPing(kafkaClient)})
		sink = auditStore.NewKafkaStore(kafkaClient, cfg.Kafka.AuditTopic)
	}
	in.audit = audit.NewPublisher(sink, audit.WithLogger(log))
	return in, nil
}

func (in *infra) openPostgres(ctx context.Context, cfg config.PostgresConfig) error {
	db, err := postgres.OpenDB(ctx, cfg)
	if err != nil {
		return err
	}
	in.closers = append(in.closers, func() { _ = db.Close() })
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	pool, err := postgres.OpenPool(ctx, cfg)
	if err != nil {
		return err
	}
	in.closers = append(in.closers, pool.Close)

	in.entreprises = entrepriseStore.NewPostgres(pool)
	in.reports = csrdStore.NewPostgres(db)
	in.health = append(in.health,
		httpapi.HealthCheck{Name: "postgres", Check: pool.Ping},
		httpapi.HealthCheck{Name: "database_sql", Check: db.PingContext},
	)
	return nil
}

func kafkaPing(client *kgo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx); err != nil {
			return fmt.Errorf("kafka ping: %w", err)
		}
		return nil
	}
}

// Close releases resources in reverse opening order.
func (in *infra) Close() {
	for i := len(in.closers) - 1; i >= 0; i-- {
		in.closers[i]()
	}
}
