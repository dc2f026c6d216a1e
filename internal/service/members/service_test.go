package members

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGC-BookingService/internal/domain"
	memberRepo "github.com/m04kA/PGC-BookingService/internal/infra/storage/member"
	"github.com/m04kA/PGC-BookingService/internal/service/members/models"
)

type mockMemberRepo struct {
	createFunc  func(ctx context.Context, m *domain.Member) (*domain.Member, error)
	getByIDFunc func(ctx context.Context, membershipNumber int64) (*domain.Member, error)
	getAllFunc  func(ctx context.Context) ([]*domain.Member, error)
	updateFunc  func(ctx context.Context, m *domain.Member) error
	deleteFunc  func(ctx context.Context, membershipNumber int64) error

	createCalls int
	deleteCalls int
}

func (m *mockMemberRepo) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, member)
	}
	created := *member
	created.MembershipNumber = 1
	return &created, nil
}

func (m *mockMemberRepo) GetByID(ctx context.Context, membershipNumber int64) (*domain.Member, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, membershipNumber)
	}
	return nil, memberRepo.ErrMemberNotFound
}

func (m *mockMemberRepo) GetAll(ctx context.Context) ([]*domain.Member, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, member)
	}
	return nil
}

func (m *mockMemberRepo) Delete(ctx context.Context, membershipNumber int64) error {
	m.deleteCalls++
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, membershipNumber)
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func createRequest() *models.CreateMemberRequest {
	return &models.CreateMemberRequest{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Gender:   "female",
		Handicap: 12,
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &mockMemberRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.MembershipNumber, "membership number is assigned by storage")
	assert.Equal(t, "Alice Smith", resp.Name)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCreate_ValidationFailures(t *testing.T) {
	repo := &mockMemberRepo{}
	svc := NewService(repo, nopLogger{})

	tests := []struct {
		name   string
		mutate func(req *models.CreateMemberRequest)
	}{
		{name: "empty name", mutate: func(r *models.CreateMemberRequest) { r.Name = "" }},
		{name: "empty email", mutate: func(r *models.CreateMemberRequest) { r.Email = "" }},
		{name: "malformed email", mutate: func(r *models.CreateMemberRequest) { r.Email = "not-an-email" }},
		{name: "empty gender", mutate: func(r *models.CreateMemberRequest) { r.Gender = "" }},
		{name: "negative handicap", mutate: func(r *models.CreateMemberRequest) { r.Handicap = -1 }},
		{name: "handicap above 54", mutate: func(r *models.CreateMemberRequest) { r.Handicap = 55 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Zero(t, repo.createCalls)
}

func TestCreate_HandicapBoundaries(t *testing.T) {
	svc := NewService(&mockMemberRepo{}, nopLogger{})

	for _, h := range []int{0, 54} {
		req := createRequest()
		req.Handicap = h

		_, err := svc.Create(context.Background(), req)
		assert.NoError(t, err, "handicap %d is within the allowed range", h)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&mockMemberRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockMemberRepo{
		updateFunc: func(ctx context.Context, m *domain.Member) error {
			return memberRepo.ErrMemberNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	req := &models.UpdateMemberRequest{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Gender:   "female",
		Handicap: 12,
	}

	_, err := svc.Update(context.Background(), 404, req)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestUpdate_ValidationFailure(t *testing.T) {
	svc := NewService(&mockMemberRepo{}, nopLogger{})

	req := &models.UpdateMemberRequest{
		Name:     "Alice Smith",
		Email:    "broken",
		Gender:   "female",
		Handicap: 12,
	}

	_, err := svc.Update(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockMemberRepo{
		deleteFunc: func(ctx context.Context, membershipNumber int64) error {
			return memberRepo.ErrMemberNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo := &mockMemberRepo{
		deleteFunc: func(ctx context.Context, membershipNumber int64) error {
			return nil
		},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.deleteCalls)
}
