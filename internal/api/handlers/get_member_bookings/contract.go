package get_member_bookings

import (
	"context"

	bookingModels "github.com/m04kA/PGC-BookingService/internal/service/bookings/models"
	memberModels "github.com/m04kA/PGC-BookingService/internal/service/members/models"
)

type BookingService interface {
	GetByMember(ctx context.Context, membershipNumber int64) (*bookingModels.BookingListResponse, error)
}

type MemberService interface {
	GetByID(ctx context.Context, membershipNumber int64) (*memberModels.MemberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
