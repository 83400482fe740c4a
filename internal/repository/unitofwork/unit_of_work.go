package unitofwork

import (
	"context"

	"nirogya-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatLogRepository() contract.ChatLogRepository
}
