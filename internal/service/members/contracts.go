package members

import (
	"context"

	"github.com/m04kA/PGC-BookingService/internal/domain"
)

// MemberRepository интерфейс репозитория участников клуба
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	GetByID(ctx context.Context, membershipNumber int64) (*domain.Member, error)
	GetAll(ctx context.Context) ([]*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, membershipNumber int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
