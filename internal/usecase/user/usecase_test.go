package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	domain "rest-user-service/internal/domain/user"
	apperrors "rest-user-service/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, u *domain.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func setupTestUsecase(t *testing.T) (*Usecase, *MockRepository) {
	mockRepo := new(MockRepository)
	uc := New(mockRepo, zaptest.NewLogger(t))
	return uc, mockRepo
}

func TestCreateUser_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	req := CreateUserRequest{
		Name:  "John Doe",
		Email: "john@example.com",
	}

	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Name == req.Name && u.Email == req.Email
	})).Return(int64(1), nil)

	resp, err := uc.CreateUser(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.ID)

	mockRepo.AssertExpectations(t)
}

func TestCreateUser_ConstraintViolation(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	repoErr := apperrors.NewConstraintViolationError("users.email", errors.New("UNIQUE constraint failed"))
	mockRepo.On("Create", ctx, mock.Anything).Return(int64(0), repoErr)

	resp, err := uc.CreateUser(ctx, CreateUserRequest{Name: "John Doe", Email: "john@example.com"})

	assert.Error(t, err)
	assert.Nil(t, resp)

	// The typed error passes through untouched
	var cv *apperrors.ConstraintViolationError
	assert.ErrorAs(t, err, &cv)
}

func TestListUsers_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return([]domain.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
	}, nil)

	resp, err := uc.ListUsers(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, int64(1), resp.Users[0].ID)
	assert.Equal(t, "Jane Smith", resp.Users[1].Name)
}

func TestListUsers_Empty(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return([]domain.User{}, nil)

	resp, err := uc.ListUsers(ctx)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp.Users)
}

func TestGetUser_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{
		ID:    1,
		Name:  "John Doe",
		Email: "john@example.com",
	}, nil)

	resp, err := uc.GetUser(ctx, GetUserRequest{ID: 1})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "John Doe", resp.Name)
	assert.Equal(t, "john@example.com", resp.Email)
}

func TestGetUser_ZeroID_PassedToRepo(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	// 0 is numeric, so it reaches the store like any other id and comes
	// back as not-found rather than being rejected up front.
	notFound := apperrors.NewNotFoundError("user", "User not found")
	mockRepo.On("GetByID", ctx, int64(0)).Return(nil, notFound)

	resp, err := uc.GetUser(ctx, GetUserRequest{ID: 0})

	assert.Error(t, err)
	assert.Nil(t, resp)

	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
	mockRepo.AssertExpectations(t)
}

func TestGetUser_NotFound(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	notFound := apperrors.NewNotFoundError("user", "User not found")
	mockRepo.On("GetByID", ctx, int64(42)).Return(nil, notFound)

	resp, err := uc.GetUser(ctx, GetUserRequest{ID: 42})

	assert.Error(t, err)
	assert.Nil(t, resp)

	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestUpdateUser_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == 1 && u.Name == "Jane Doe"
	})).Return(int64(1), nil)

	resp, err := uc.UpdateUser(ctx, UpdateUserRequest{ID: 1, Name: "Jane Doe", Email: "john@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.Affected)
}

func TestUpdateUser_MissingID_ZeroAffected(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Update", ctx, mock.Anything).Return(int64(0), nil)

	resp, err := uc.UpdateUser(ctx, UpdateUserRequest{ID: 999, Name: "Nobody", Email: "nobody@example.com"})

	// 0 affected rows is not an error
	assert.NoError(t, err)
	assert.Equal(t, int64(0), resp.Affected)
}

func TestUpdateUser_ZeroID_ZeroAffected(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == 0
	})).Return(int64(0), nil)

	resp, err := uc.UpdateUser(ctx, UpdateUserRequest{ID: 0, Name: "x", Email: "x@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), resp.Affected)
	mockRepo.AssertExpectations(t)
}

func TestDeleteUser_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(1)).Return(int64(1), nil)

	resp, err := uc.DeleteUser(ctx, DeleteUserRequest{ID: 1})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.Affected)
}

func TestDeleteUser_NegativeID_ZeroAffected(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(-5)).Return(int64(0), nil)

	resp, err := uc.DeleteUser(ctx, DeleteUserRequest{ID: -5})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), resp.Affected)
	mockRepo.AssertExpectations(t)
}

func TestDeleteUser_RepoError(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(1)).Return(int64(0), errors.New("connection refused"))

	resp, err := uc.DeleteUser(ctx, DeleteUserRequest{ID: 1})

	assert.Error(t, err)
	assert.Nil(t, resp)
}
