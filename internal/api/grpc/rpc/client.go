package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// AuthClient calls the passguard.Auth service.
type AuthClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthClient(cc grpc.ClientConnInterface) *AuthClient {
	return &AuthClient{cc: cc}
}

func (c *AuthClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, Auth_Register_FullMethodName, in, opts)
}

func (c *AuthClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, Auth_Login_FullMethodName, in, opts)
}

func (c *AuthClient) Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, Auth_Refresh_FullMethodName, in, opts)
}

func (c *AuthClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, Auth_Logout_FullMethodName, in, opts)
}

// PasswordClient calls the passguard.Password service.
type PasswordClient struct {
	cc grpc.ClientConnInterface
}

func NewPasswordClient(cc grpc.ClientConnInterface) *PasswordClient {
	return &PasswordClient{cc: cc}
}

func (c *PasswordClient) Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error) {
	return invoke[GenerateResponse](ctx, c.cc, Password_Generate_FullMethodName, in, opts)
}

func (c *PasswordClient) Suggest(ctx context.Context, in *SuggestRequest, opts ...grpc.CallOption) (*SuggestResponse, error) {
	return invoke[SuggestResponse](ctx, c.cc, Password_Suggest_FullMethodName, in, opts)
}

func (c *PasswordClient) Score(ctx context.Context, in *PasswordRequest, opts ...grpc.CallOption) (*ScoreResponse, error) {
	return invoke[ScoreResponse](ctx, c.cc, Password_Score_FullMethodName, in, opts)
}

func (c *PasswordClient) CheckLeak(ctx context.Context, in *PasswordRequest, opts ...grpc.CallOption) (*CheckLeakResponse, error) {
	return invoke[CheckLeakResponse](ctx, c.cc, Password_CheckLeak_FullMethodName, in, opts)
}

func (c *PasswordClient) Analyze(ctx context.Context, in *PasswordRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error) {
	return invoke[AnalyzeResponse](ctx, c.cc, Password_Analyze_FullMethodName, in, opts)
}

// VaultClient calls the passguard.Vault service.
type VaultClient struct {
	cc grpc.ClientConnInterface
}

func NewVaultClient(cc grpc.ClientConnInterface) *VaultClient {
	return &VaultClient{cc: cc}
}

func (c *VaultClient) Save(ctx context.Context, in *SaveRequest, opts ...grpc.CallOption) (*CredentialResponse, error) {
	return invoke[CredentialResponse](ctx, c.cc, Vault_Save_FullMethodName, in, opts)
}

func (c *VaultClient) Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*CredentialResponse, error) {
	return invoke[CredentialResponse](ctx, c.cc, Vault_Update_FullMethodName, in, opts)
}

func (c *VaultClient) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	return invoke[ListResponse](ctx, c.cc, Vault_List_FullMethodName, in, opts)
}

func (c *VaultClient) Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*CredentialResponse, error) {
	return invoke[CredentialResponse](ctx, c.cc, Vault_Get_FullMethodName, in, opts)
}

func (c *VaultClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, Vault_Delete_FullMethodName, in, opts)
}
