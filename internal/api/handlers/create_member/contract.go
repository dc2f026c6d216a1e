package create_member

import (
	"context"

	"github.com/m04kA/PGC-BookingService/internal/service/members/models"
)

type MemberService interface {
	Create(ctx context.Context, req *models.CreateMemberRequest) (*models.MemberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
