package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/auth"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql/model"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Mock
// ---------------------------------------------------------------------------

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (auth.AuthResult, error)
	MeFunc       func(ctx context.Context) (domain.User, error)
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (auth.AuthResult, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (auth.AuthResult, error) {
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) Me(ctx context.Context) (domain.User, error) {
	return m.MeFunc(ctx)
}

// ---------------------------------------------------------------------------
// Mutation: register / login
// ---------------------------------------------------------------------------

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mock := &authServiceMock{
		RegisterFunc: func(_ context.Context, input auth.RegisterInput) (auth.AuthResult, error) {
			require.Equal(t, "maya@example.com", input.Email)
			require.Equal(t, "Maya", input.Name)
			return auth.AuthResult{
				AccessToken: "token-123",
				User:        domain.User{ID: userID, Email: input.Email, Name: input.Name, Role: domain.UserRoleUser},
			}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{auth: mock}}
	result, err := resolver.Register(context.Background(), model.RegisterInput{
		Email:    "maya@example.com",
		Name:     "Maya",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "token-123", result.AccessToken)
	assert.Equal(t, userID, result.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	mock := &authServiceMock{
		RegisterFunc: func(_ context.Context, _ auth.RegisterInput) (auth.AuthResult, error) {
			return auth.AuthResult{}, domain.ErrAlreadyExists
		},
	}

	resolver := &mutationResolver{&Resolver{auth: mock}}
	_, err := resolver.Register(context.Background(), model.RegisterInput{
		Email:    "maya@example.com",
		Name:     "Maya",
		Password: "hunter2hunter2",
	})

	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	mock := &authServiceMock{
		LoginFunc: func(_ context.Context, input auth.LoginInput) (auth.AuthResult, error) {
			return auth.AuthResult{
				AccessToken: "token-456",
				User:        domain.User{ID: uuid.New(), Email: input.Email},
			}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{auth: mock}}
	result, err := resolver.Login(context.Background(), model.LoginInput{
		Email:    "maya@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-456", result.AccessToken)
	assert.Equal(t, "maya@example.com", result.User.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	mock := &authServiceMock{
		LoginFunc: func(_ context.Context, _ auth.LoginInput) (auth.AuthResult, error) {
			return auth.AuthResult{}, domain.ErrUnauthorized
		},
	}

	resolver := &mutationResolver{&Resolver{auth: mock}}
	_, err := resolver.Login(context.Background(), model.LoginInput{
		Email:    "maya@example.com",
		Password: "wrong",
	})

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ---------------------------------------------------------------------------
// Query: me
// ---------------------------------------------------------------------------

func TestMe_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mock := &authServiceMock{
		MeFunc: func(_ context.Context) (domain.User, error) {
			return domain.User{ID: userID, Email: "maya@example.com", Role: domain.UserRoleUser}, nil
		},
	}

	resolver := &queryResolver{&Resolver{auth: mock}}
	ctx := ctxutil.WithUserID(context.Background(), userID)

	result, err := resolver.Me(ctx)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, userID, result.ID)
	assert.Equal(t, "maya@example.com", result.Email)
}

func TestMe_Unauthenticated(t *testing.T) {
	t.Parallel()

	mock := &authServiceMock{
		MeFunc: func(_ context.Context) (domain.User, error) {
			return domain.User{}, domain.ErrUnauthorized
		},
	}

	resolver := &queryResolver{&Resolver{auth: mock}}
	_, err := resolver.Me(context.Background())

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ---------------------------------------------------------------------------
// Field: User.role
// ---------------------------------------------------------------------------

func TestUserRole_Resolves(t *testing.T) {
	t.Parallel()

	resolver := &userResolver{&Resolver{}}
	role, err := resolver.Role(context.Background(), &domain.User{Role: domain.UserRoleAdmin})

	require.NoError(t, err)
	assert.Equal(t, "admin", role)
}
