package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/dtroode/passguard/internal/api/grpc/codec"
)

const (
	AuthServiceName     = "passguard.Auth"
	PasswordServiceName = "passguard.Password"
	VaultServiceName    = "passguard.Vault"
)

const (
	Auth_Register_FullMethodName = "/" + AuthServiceName + "/Register"
	Auth_Login_FullMethodName    = "/" + AuthServiceName + "/Login"
	Auth_Refresh_FullMethodName  = "/" + AuthServiceName + "/Refresh"
	Auth_Logout_FullMethodName   = "/" + AuthServiceName + "/Logout"

	Password_Generate_FullMethodName  = "/" + PasswordServiceName + "/Generate"
	Password_Suggest_FullMethodName   = "/" + PasswordServiceName + "/Suggest"
	Password_Score_FullMethodName     = "/" + PasswordServiceName + "/Score"
	Password_CheckLeak_FullMethodName = "/" + PasswordServiceName + "/CheckLeak"
	Password_Analyze_FullMethodName   = "/" + PasswordServiceName + "/Analyze"

	Vault_Save_FullMethodName   = "/" + VaultServiceName + "/Save"
	Vault_Update_FullMethodName = "/" + VaultServiceName + "/Update"
	Vault_List_FullMethodName   = "/" + VaultServiceName + "/List"
	Vault_Get_FullMethodName    = "/" + VaultServiceName + "/Get"
	Vault_Delete_FullMethodName = "/" + VaultServiceName + "/Delete"
)

// AuthServer is the server API for the passguard.Auth service.
type AuthServer interface {
	Register(context.Context, *RegisterRequest) (*TokenResponse, error)
	Login(context.Context, *LoginRequest) (*TokenResponse, error)
	Refresh(context.Context, *RefreshRequest) (*TokenResponse, error)
	Logout(context.Context, *LogoutRequest) (*Empty, error)
}

// PasswordServer is the server API for the passguard.Password service.
type PasswordServer interface {
	Generate(context.Context, *GenerateRequest) (*GenerateResponse, error)
	Suggest(context.Context, *SuggestRequest) (*SuggestResponse, error)
	Score(context.Context, *PasswordRequest) (*ScoreResponse, error)
	CheckLeak(context.Context, *PasswordRequest) (*CheckLeakResponse, error)
	Analyze(context.Context, *PasswordRequest) (*AnalyzeResponse, error)
}

// VaultServer is the server API for the passguard.Vault service.
type VaultServer interface {
	Save(context.Context, *SaveRequest) (*CredentialResponse, error)
	Update(context.Context, *UpdateRequest) (*CredentialResponse, error)
	List(context.Context, *ListRequest) (*ListResponse, error)
	Get(context.Context, *GetRequest) (*CredentialResponse, error)
	Delete(context.Context, *DeleteRequest) (*Empty, error)
}

var Auth_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unary(Auth_Register_FullMethodName, AuthServer.Register)},
		{MethodName: "Login", Handler: unary(Auth_Login_FullMethodName, AuthServer.Login)},
		{MethodName: "Refresh", Handler: unary(Auth_Refresh_FullMethodName, AuthServer.Refresh)},
		{MethodName: "Logout", Handler: unary(Auth_Logout_FullMethodName, AuthServer.Logout)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "passguard/auth",
}

var Password_ServiceDesc = grpc.ServiceDesc{
	ServiceName: PasswordServiceName,
	HandlerType: (*PasswordServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: unary(Password_Generate_FullMethodName, PasswordServer.Generate)},
		{MethodName: "Suggest", Handler: unary(Password_Suggest_FullMethodName, PasswordServer.Suggest)},
		{MethodName: "Score", Handler: unary(Password_Score_FullMethodName, PasswordServer.Score)},
		{MethodName: "CheckLeak", Handler: unary(Password_CheckLeak_FullMethodName, PasswordServer.CheckLeak)},
		{MethodName: "Analyze", Handler: unary(Password_Analyze_FullMethodName, PasswordServer.Analyze)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "passguard/password",
}

var Vault_ServiceDesc = grpc.ServiceDesc{
	ServiceName: VaultServiceName,
	HandlerType: (*VaultServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Save", Handler: unary(Vault_Save_FullMethodName, VaultServer.Save)},
		{MethodName: "Update", Handler: unary(Vault_Update_FullMethodName, VaultServer.Update)},
		{MethodName: "List", Handler: unary(Vault_List_FullMethodName, VaultServer.List)},
		{MethodName: "Get", Handler: unary(Vault_Get_FullMethodName, VaultServer.Get)},
		{MethodName: "Delete", Handler: unary(Vault_Delete_FullMethodName, VaultServer.Delete)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "passguard/vault",
}

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&Auth_ServiceDesc, srv)
}

func RegisterPasswordServer(s grpc.ServiceRegistrar, srv PasswordServer) {
	s.RegisterService(&Password_ServiceDesc, srv)
}

func RegisterVaultServer(s grpc.ServiceRegistrar, srv VaultServer) {
	s.RegisterService(&Vault_ServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodHandler.
func unary[S, Req, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
