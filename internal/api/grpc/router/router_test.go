package router

import (
	"context"
	"net"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"

	grpccontext "github.com/dtroode/passguard/internal/api/grpc/context"
	"github.com/dtroode/passguard/internal/api/grpc/rpc"
	"github.com/dtroode/passguard/internal/breach"
	"github.com/dtroode/passguard/internal/leaked"
	"github.com/dtroode/passguard/internal/mocks"
	"github.com/dtroode/passguard/internal/model"
	"github.com/dtroode/passguard/internal/service"
	"github.com/dtroode/passguard/internal/strength"
	"github.com/dtroode/passguard/internal/testutil"
	"github.com/dtroode/passguard/internal/token"
	"github.com/dtroode/passguard/internal/vaultcrypto"
)

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	ctxMgr := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	r := New(nil, nil, nil, nil, nil, ctxMgr, lg)
	s := r.Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, rpc.AuthServiceName)
	assert.Contains(t, info, rpc.PasswordServiceName)
	assert.Contains(t, info, rpc.VaultServiceName)
}

func TestRequiresAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		want   bool
	}{
		{method: rpc.Auth_Login_FullMethodName, want: false},
		{method: rpc.Auth_Register_FullMethodName, want: false},
		{method: rpc.Password_Analyze_FullMethodName, want: true},
		{method: rpc.Vault_Get_FullMethodName, want: true},
	}

	for _, tt := range tests {
		meta := interceptors.NewServerCallMeta(tt.method, nil, nil)
		assert.Equal(t, tt.want, requiresAuth(context.Background(), meta), tt.method)
	}
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]model.User
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (m *memUsers) Create(_ context.Context, user model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Email]; ok {
		return model.User{}, model.ErrEmailTaken
	}
	m.users[user.Email] = user
	return user, nil
}

type memTokens struct {
	mu     sync.Mutex
	tokens map[string]model.RefreshToken
}

func (m *memTokens) Create(_ context.Context, rt model.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[rt.JTI] = rt
	return nil
}

func (m *memTokens) GetByJTI(_ context.Context, jti string) (model.RefreshToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rt, ok := m.tokens[jti]
	if !ok {
		return model.RefreshToken{}, model.ErrNotFound
	}
	return rt, nil
}

func (m *memTokens) RevokeByJTI(_ context.Context, jti string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rt, ok := m.tokens[jti]
	if !ok || rt.RevokedAt != nil {
		return model.ErrTokenRevoked
	}
	now := time.Now()
	rt.RevokedAt = &now
	m.tokens[jti] = rt
	return nil
}

func (m *memTokens) RevokeAllByUser(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for jti, rt := range m.tokens {
		if rt.UserID == userID {
			rt.RevokedAt = &now
			m.tokens[jti] = rt
		}
	}
	return nil
}

type memCredentials struct {
	mu      sync.Mutex
	records []model.CredentialRecord
}

func (m *memCredentials) Create(_ context.Context, r model.CredentialRecord) (model.CredentialRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return r, nil
}

func (m *memCredentials) Update(_ context.Context, r model.CredentialRecord) (model.CredentialRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.records {
		if existing.ID == r.ID && existing.OwnerID == r.OwnerID {
			m.records[i] = r
			return r, nil
		}
	}
	return model.CredentialRecord{}, model.ErrNotFound
}

func (m *memCredentials) GetByID(_ context.Context, ownerID, id uuid.UUID) (model.CredentialRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id && r.OwnerID == ownerID {
			return r, nil
		}
	}
	return model.CredentialRecord{}, model.ErrNotFound
}

func (m *memCredentials) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.CredentialRecord, error) {
	return m.ListByOwnerAndCategory(ctx, ownerID, "")
}

func (m *memCredentials) ListByOwnerAndCategory(_ context.Context, ownerID uuid.UUID, category string) ([]model.CredentialRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.CredentialRecord
	for _, r := range slices.Backward(m.records) {
		if r.OwnerID == ownerID && (category == "" || r.Category == category) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memCredentials) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.records {
		if r.ID == id && r.OwnerID == ownerID {
			m.records = slices.Delete(m.records, i, i+1)
			return nil
		}
	}
	return model.ErrNotFound
}

func startServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	set := leaked.New(leaked.Fallback...)

	tokenService := service.NewTokenService(token.NewJWT("test-secret"), &memTokens{tokens: map[string]model.RefreshToken{}}, lg)
	authService := service.NewAuth(&memUsers{users: map[string]model.User{}}, vaultcrypto.NewVerifier(vaultcrypto.MinIterations), tokenService, lg)
	vaultService := service.NewVault(&memCredentials{}, vaultcrypto.NewEnvelope("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"), lg)
	analyzer := service.NewAnalyzer(strength.NewScorer(set), breach.NewChecker(set, breach.Config{}, lg), lg)
	generator := service.NewGenerator(nil, lg)

	r := New(authService, tokenService, vaultService, generator, analyzer, grpccontext.NewManager(), lg)
	srv := r.Register()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func TestRouter_EndToEnd(t *testing.T) {
	conn := startServer(t)
	ctx := context.Background()

	auth := rpc.NewAuthClient(conn)
	passwords := rpc.NewPasswordClient(conn)
	vault := rpc.NewVaultClient(conn)

	_, err := vault.List(ctx, &rpc.ListRequest{})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	tokens, err := auth.Register(ctx, &rpc.RegisterRequest{Email: "user@example.com", Password: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)

	_, err = auth.Register(ctx, &rpc.RegisterRequest{Email: "user@example.com", Password: "correct horse"})
	require.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = auth.Login(ctx, &rpc.LoginRequest{Email: "user@example.com", Password: "wrong horse"})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	tokens, err = auth.Login(ctx, &rpc.LoginRequest{Email: "user@example.com", Password: "correct horse"})
	require.NoError(t, err)
	authed := withToken(ctx, tokens.AccessToken)

	gen, err := passwords.Generate(authed, &rpc.GenerateRequest{Letters: true, Numbers: true, SpecialChars: true, Length: 12})
	require.NoError(t, err)
	assert.Len(t, gen.Password, 12)

	_, err = passwords.Generate(authed, &rpc.GenerateRequest{Length: 12})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	analysis, err := passwords.Analyze(authed, &rpc.PasswordRequest{Password: "password1"})
	require.NoError(t, err)
	assert.True(t, analysis.Breach.IsCompromised)
	assert.Equal(t, "local", analysis.Breach.Source)
	assert.Equal(t, "Compromised", analysis.Strength.Strength)

	saved, err := vault.Save(authed, &rpc.SaveRequest{Title: "Example", Password: gen.Password, Category: "Other"})
	require.NoError(t, err)
	assert.Empty(t, saved.Credential.Password)

	list, err := vault.List(authed, &rpc.ListRequest{Category: "All"})
	require.NoError(t, err)
	require.Len(t, list.Credentials, 1)
	assert.Empty(t, list.Credentials[0].Password)

	list, err = vault.List(authed, &rpc.ListRequest{Query: "exam"})
	require.NoError(t, err)
	require.Len(t, list.Credentials, 1)

	list, err = vault.List(authed, &rpc.ListRequest{Query: "nothing"})
	require.NoError(t, err)
	assert.Empty(t, list.Credentials)

	got, err := vault.Get(authed, &rpc.GetRequest{ID: saved.Credential.ID})
	require.NoError(t, err)
	assert.Equal(t, gen.Password, got.Credential.Password)

	_, err = vault.Delete(authed, &rpc.DeleteRequest{ID: saved.Credential.ID})
	require.NoError(t, err)
	_, err = vault.Delete(authed, &rpc.DeleteRequest{ID: saved.Credential.ID})
	require.NoError(t, err)

	_, err = vault.Get(authed, &rpc.GetRequest{ID: saved.Credential.ID})
	assert.Equal(t, codes.NotFound, status.Code(err))

	refreshed, err := auth.Refresh(ctx, &rpc.RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	_, err = auth.Refresh(ctx, &rpc.RefreshRequest{RefreshToken: tokens.RefreshToken})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = auth.Logout(ctx, &rpc.LogoutRequest{RefreshToken: refreshed.RefreshToken})
	require.NoError(t, err)
}

func TestRouter_VaultIsolation(t *testing.T) {
	conn := startServer(t)
	ctx := context.Background()

	auth := rpc.NewAuthClient(conn)
	vault := rpc.NewVaultClient(conn)

	alice, err := auth.Register(ctx, &rpc.RegisterRequest{Email: "alice@example.com", Password: "alice-password"})
	require.NoError(t, err)
	bob, err := auth.Register(ctx, &rpc.RegisterRequest{Email: "bob@example.com", Password: "bob-password"})
	require.NoError(t, err)

	saved, err := vault.Save(withToken(ctx, alice.AccessToken), &rpc.SaveRequest{Title: "mail", Password: "s3cret!"})
	require.NoError(t, err)

	_, err = vault.Get(withToken(ctx, bob.AccessToken), &rpc.GetRequest{ID: saved.Credential.ID})
	assert.Equal(t, codes.NotFound, status.Code(err))

	list, err := vault.List(withToken(ctx, bob.AccessToken), &rpc.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Credentials)
}

func TestRouter_ConcurrentRefresh(t *testing.T) {
	conn := startServer(t)
	ctx := context.Background()
	auth := rpc.NewAuthClient(conn)

	tokens, err := auth.Register(ctx, &rpc.RegisterRequest{Email: "race@example.com", Password: "race-password"})
	require.NoError(t, err)

	const callers = 8
	var wg sync.WaitGroup
	got := make([]codes.Code, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := auth.Refresh(ctx, &rpc.RefreshRequest{RefreshToken: tokens.RefreshToken})
			got[i] = status.Code(err)
		}()
	}
	wg.Wait()

	// only one rotation of the same refresh token may win
	var ok, rejected int
	for _, c := range got {
		switch c {
		case codes.OK:
			ok++
		case codes.Unauthenticated:
			rejected++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, callers-1, rejected)
}
