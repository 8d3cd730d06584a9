package domain_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ordersvc/order-service/internal/domain"
)

func TestTokenPayload_Principal(t *testing.T) {
	uid := uuid.New()

	p := domain.TokenPayload{UUID: uid.String(), Username: "alice", Role: domain.RoleAdmin, IsActive: true}
	principal, err := p.Principal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal.UserID != uid || !principal.IsAdmin {
		t.Fatalf("unexpected principal: %+v", principal)
	}

	p.Role = domain.RoleUser
	principal, err = p.Principal()
	if err != nil || principal.IsAdmin {
		t.Fatalf("USER role must not be admin: %+v err=%v", principal, err)
	}
}

func TestTokenPayload_Principal_BadUUID(t *testing.T) {
	p := domain.TokenPayload{UUID: "not-a-uuid", Role: domain.RoleUser}
	if _, err := p.Principal(); !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("want ErrAuthenticationFailed, got %v", err)
	}
}
