package contract

import (
	"context"

	"nirogya-be/internal/entity"
	"nirogya-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatLogRepository interface {
	Create(ctx context.Context, log *entity.ChatLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByUsername(ctx context.Context, username string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
