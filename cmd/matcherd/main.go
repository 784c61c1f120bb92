package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	matcherv1 "github.com/nordstaff/consultant-matcher/gen/matcher/v1"
	"github.com/nordstaff/consultant-matcher/internal/canonical"
	"github.com/nordstaff/consultant-matcher/internal/common"
	"github.com/nordstaff/consultant-matcher/internal/embedding"
	"github.com/nordstaff/consultant-matcher/internal/ingest"
	"github.com/nordstaff/consultant-matcher/internal/matching"
	"github.com/nordstaff/consultant-matcher/internal/repository"
	"github.com/nordstaff/consultant-matcher/internal/scheduler"
	"github.com/nordstaff/consultant-matcher/internal/scoring"
	"github.com/nordstaff/consultant-matcher/internal/search"
	"github.com/nordstaff/consultant-matcher/internal/server"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entClient, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer repository.Close(entClient, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second); err != nil {
		log.Fatalf("database health failed: %v", err)
	}
	log.Infow("database health OK")

	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("parsing REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opt)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			// The cache is an optimization; run without it.
			logger.Warn("redis unreachable, embedding cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	jobs := repository.NewJobRepository(entClient, logger)
	candidates := repository.NewCandidateRepository(entClient, logger)
	orgs := repository.NewOrganizationRepository(entClient, logger)
	terms := repository.NewTermAliasRepository(entClient, logger)
	matches := repository.NewMatchRepository(entClient, logger)
	embeddings := repository.NewEmbeddingRepository(pool, logger)

	embedder := embedding.BuildEmbedder(cfg.Embedding, rdb, cfg.Redis.CacheTTL, logger)
	embedSvc := embedding.NewService(embedder, embeddings, jobs, candidates, logger)
	queue := embedding.NewQueue(embedSvc, logger)

	profiles, err := scoring.LoadProfiles(cfg.Matching.ProfilesFile)
	if err != nil {
		log.Fatalf("loading weight profiles: %v", err)
	}
	filters, err := scoring.LoadFilters(cfg.Matching.ProfilesFile)
	if err != nil {
		log.Fatalf("loading filter sets: %v", err)
	}

	resolver := canonical.NewResolver(orgs, terms, logger)
	index := search.NewIndex(pool, logger)
	matcher := matching.NewService(jobs, candidates, embeddings, matches, index, embedSvc, profiles, filters, cfg.Matching, logger)
	ingestSvc := ingest.NewService(jobs, candidates, resolver, queue, logger)

	sched := scheduler.New(embedSvc, matcher, cfg.Embedding.ReembedSchedule, cfg.Matching.RescoreSchedule, logger)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("starting scheduler: %v", err)
	}

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewMatcherService(ingestSvc, matcher, matches, resolver, logger)
	matcherv1.RegisterMatcherServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	sched.Stop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(drainCtx)
	log.Info("stopped")
}
