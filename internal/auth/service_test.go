package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/ordersvc/order-service/internal/auth"
	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/internal/ports/mocks"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

const testToken = "tok-123"

func activePayload(role domain.UserRole) *domain.TokenPayload {
	return &domain.TokenPayload{
		UUID:     uuid.New().String(),
		Username: "alice",
		Role:     role,
		IsActive: true,
	}
}

func TestAuthenticate_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := auth.NewService(mocks.NewMockIdentityClient(ctrl), mocks.NewMockTokenStore(ctrl), noopLogger{})

	_, err := svc.Authenticate(context.Background(), "")
	if !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("want ErrAuthenticationFailed, got %v", err)
	}
}

func TestAuthenticate_CacheHit_NoRemoteCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIdentityClient(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)

	payload := activePayload(domain.RoleAdmin)
	tokens.EXPECT().Get(gomock.Any(), testToken).Return(payload, true, nil)
	client.EXPECT().Validate(gomock.Any(), gomock.Any()).Times(0)

	svc := auth.NewService(client, tokens, noopLogger{})

	principal, err := svc.Authenticate(context.Background(), testToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !principal.IsAdmin || principal.UserID.String() != payload.UUID {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestAuthenticate_CacheMiss_ValidatesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIdentityClient(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)

	payload := activePayload(domain.RoleUser)
	gomock.InOrder(
		tokens.EXPECT().Get(gomock.Any(), testToken).Return(nil, false, nil),
		client.EXPECT().Validate(gomock.Any(), testToken).Return(payload, nil),
		tokens.EXPECT().Set(gomock.Any(), testToken, payload).Return(nil),
	)

	svc := auth.NewService(client, tokens, noopLogger{})

	principal, err := svc.Authenticate(context.Background(), testToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal.IsAdmin {
		t.Fatalf("USER role must not be admin: %+v", principal)
	}
}

func TestAuthenticate_InactiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIdentityClient(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)

	payload := activePayload(domain.RoleUser)
	payload.IsActive = false
	tokens.EXPECT().Get(gomock.Any(), testToken).Return(payload, true, nil)

	svc := auth.NewService(client, tokens, noopLogger{})

	_, err := svc.Authenticate(context.Background(), testToken)
	if !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("want ErrAuthenticationFailed, got %v", err)
	}
}

func TestAuthenticate_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIdentityClient(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)

	tokens.EXPECT().Get(gomock.Any(), testToken).Return(nil, false, domain.ErrCacheUnavailable)

	svc := auth.NewService(client, tokens, noopLogger{})

	_, err := svc.Authenticate(context.Background(), testToken)
	if !errors.Is(err, domain.ErrCacheUnavailable) {
		t.Fatalf("want ErrCacheUnavailable, got %v", err)
	}
}

func TestAuthenticate_RemoteRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIdentityClient(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)

	gomock.InOrder(
		tokens.EXPECT().Get(gomock.Any(), testToken).Return(nil, false, nil),
		client.EXPECT().Validate(gomock.Any(), testToken).Return(nil, domain.ErrAuthenticationFailed),
	)

	svc := auth.NewService(client, tokens, noopLogger{})

	_, err := svc.Authenticate(context.Background(), testToken)
	if !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("want ErrAuthenticationFailed, got %v", err)
	}
}

func TestLogin_WarmsTokenCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIdentityClient(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)

	token := &domain.Token{AccessToken: testToken, TokenType: "bearer"}
	payload := activePayload(domain.RoleUser)

	gomock.InOrder(
		client.EXPECT().Login(gomock.Any(), "alice", "secret").Return(token, nil),
		client.EXPECT().Validate(gomock.Any(), testToken).Return(payload, nil),
		tokens.EXPECT().Set(gomock.Any(), testToken, payload).Return(nil),
	)

	svc := auth.NewService(client, tokens, noopLogger{})

	got, err := svc.Login(context.Background(), "alice", "secret")
	if err != nil || got.AccessToken != testToken {
		t.Fatalf("unexpected result err=%v token=%+v", err, got)
	}
}

func TestLogin_WarmupFailureNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIdentityClient(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)

	token := &domain.Token{AccessToken: testToken, TokenType: "bearer"}
	gomock.InOrder(
		client.EXPECT().Login(gomock.Any(), "alice", "secret").Return(token, nil),
		client.EXPECT().Validate(gomock.Any(), testToken).Return(nil, domain.ErrAuthServiceUnavailable),
	)

	svc := auth.NewService(client, tokens, noopLogger{})

	got, err := svc.Login(context.Background(), "alice", "secret")
	if err != nil || got == nil {
		t.Fatalf("login must survive warmup failure: err=%v", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIdentityClient(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)

	client.EXPECT().Login(gomock.Any(), "alice", "wrong").Return(nil, domain.ErrAuthenticationFailed)

	svc := auth.NewService(client, tokens, noopLogger{})

	_, err := svc.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("want ErrAuthenticationFailed, got %v", err)
	}
}
