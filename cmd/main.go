package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	grpcctx "github.com/dtroode/passguard/internal/api/grpc/context"
	"github.com/dtroode/passguard/internal/api/grpc/router"
	grpcServer "github.com/dtroode/passguard/internal/api/grpc/server"
	"github.com/dtroode/passguard/internal/breach"
	"github.com/dtroode/passguard/internal/config"
	"github.com/dtroode/passguard/internal/leaked"
	"github.com/dtroode/passguard/internal/logger"
	"github.com/dtroode/passguard/internal/model"
	"github.com/dtroode/passguard/internal/repository/postgres"
	"github.com/dtroode/passguard/internal/server"
	"github.com/dtroode/passguard/internal/service"
	storage "github.com/dtroode/passguard/internal/storage/minio"
	"github.com/dtroode/passguard/internal/strength"
	"github.com/dtroode/passguard/internal/token"
	"github.com/dtroode/passguard/internal/vaultcrypto"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	credentialRepo := postgres.NewCredentialRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)

	leakedSet := loadLeakedPasswords(ctx, cfg, logger)
	logger.Info("leaked passwords loaded", "count", leakedSet.Len())

	scorer := strength.NewScorer(leakedSet)
	checker := breach.NewChecker(leakedSet, breach.Config{
		BaseURL: cfg.Breach.APIURL,
		Host:    cfg.Breach.APIHost,
		APIKey:  cfg.Breach.APIKey,
		Timeout: cfg.Breach.Timeout,
	}, logger)
	if cfg.Breach.APIKey == "" {
		logger.Warn("breach API key is not set, leak checks use the local list only")
	}

	envelope := vaultcrypto.NewEnvelope(cfg.EncryptionKey)
	if err := envelope.Ready(); err != nil {
		logger.Warn("vault encryption is unavailable", "error", err)
	}
	verifier := vaultcrypto.NewVerifier(cfg.KDF.Iterations)

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	tokenService := service.NewTokenService(tokenManager, refreshTokenRepo, logger)
	authService := service.NewAuth(userRepo, verifier, tokenService, logger)
	vaultService := service.NewVault(credentialRepo, envelope, logger)
	analyzer := service.NewAnalyzer(scorer, checker, logger)
	generator := service.NewGenerator(nil, logger)
	ctxMgr := grpcctx.NewManager()

	r := router.New(authService, tokenService, vaultService, generator, analyzer, ctxMgr, logger)
	srv := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "tls", cfg.GRPC.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// loadLeakedPasswords reads the list from object storage when enabled, then
// from the local file. The built-in fallback is used when both fail.
func loadLeakedPasswords(ctx context.Context, cfg *config.Config, logger *logger.Logger) *leaked.Set {
	var sources []leaked.Source

	if cfg.Storage.Enabled {
		minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Warn("failed to create minio client", "error", err)
		} else if storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket); err != nil {
			logger.Warn("failed to initialize storage client", "error", err)
		} else {
			sources = append(sources, leaked.ObjectSource(storageClient, cfg.Storage.LeakedObject))
		}
	}
	sources = append(sources, leaked.FileSource(cfg.Leaked.PasswordsFile))

	set, err := leaked.Load(ctx, sources...)
	if err != nil {
		logger.Warn("failed to load leaked passwords, using fallback list", "error", err)
	}

	return set
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
