package delete_member

import (
	"context"
)

type MemberService interface {
	Delete(ctx context.Context, membershipNumber int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
