package list_members

import (
	"context"

	"github.com/m04kA/PGC-BookingService/internal/service/members/models"
)

type MemberService interface {
	GetAll(ctx context.Context) (*models.MemberListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
