package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/passguard/internal/api/grpc/handler"
	"github.com/dtroode/passguard/internal/api/grpc/middleware"
	"github.com/dtroode/passguard/internal/api/grpc/rpc"
	"github.com/dtroode/passguard/internal/logger"
	"github.com/dtroode/passguard/internal/model"
	"github.com/dtroode/passguard/internal/service"
)

// Router registers passguard services on a gRPC server with logging,
// panic recovery and bearer authentication.
type Router struct {
	authService    *service.Auth
	tokenService   *service.TokenService
	vaultService   *service.Vault
	generator      *service.Generator
	analyzer       *service.Analyzer
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	authService *service.Auth,
	tokenService *service.TokenService,
	vaultService *service.Vault,
	generator *service.Generator,
	analyzer *service.Analyzer,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		tokenService:   tokenService,
		vaultService:   vaultService,
		generator:      generator,
		analyzer:       analyzer,
		contextManager: contextManager,
		logger:         logger,
	}
}

// requiresAuth reports whether a method needs a bearer token. Everything
// outside the Auth service does.
func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/"+rpc.AuthServiceName+"/")
}

// Register builds the gRPC server and registers every service on it.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	recoverer := recovery.WithRecoveryHandler(func(p any) error {
		r.logger.Error("gRPC handler panicked", "panic", p)
		return status.Error(codes.Internal, "internal server error")
	})

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recoverer),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoverer),
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerAuthRoutes(s)
	r.registerPasswordRoutes(s)
	r.registerVaultRoutes(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	rpc.RegisterAuthServer(server, handler.NewAuth(r.authService, r.tokenService, r.logger))
}

func (r *Router) registerPasswordRoutes(server *grpc.Server) {
	rpc.RegisterPasswordServer(server, handler.NewPassword(r.generator, r.analyzer, r.logger))
}

func (r *Router) registerVaultRoutes(server *grpc.Server) {
	rpc.RegisterVaultServer(server, handler.NewVault(r.vaultService, r.contextManager, r.logger))
}
