package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	AccountIDKey contextKey = "account_id"
	RoleKey      contextKey = "role"
)

func GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	accountIDVal := ctx.Value(AccountIDKey)
	if accountIDVal == nil {
		return uuid.Nil, false
	}

	accountIDStr, ok := accountIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	accountID, err := uuid.Parse(accountIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return accountID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func SetAccountContext(ctx context.Context, accountID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, AccountIDKey, accountID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}
