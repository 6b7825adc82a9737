package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/arkv-lms/library-service/internal/errs"
	"github.com/arkv-lms/library-service/internal/model"
	"github.com/arkv-lms/library-service/internal/service"
	"github.com/arkv-lms/library-service/pkg/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	repo_mocks "github.com/arkv-lms/library-service/internal/repository/mocks"
)

const (
	testTokenTTL    = time.Hour
	testRoleTimeout = 50 * time.Millisecond
)

func TestAuthService_IsAdmin(t *testing.T) {
	t.Parallel()
	const userID = "u1"

	type mockBehavior func(r *repo_mocks.MockRepository)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		want         bool
	}{
		{
			name: "admin row grants admin",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserRole(gomock.Any(), userID).Return(auth.RoleAdmin, nil)
			},
			want: true,
		},
		{
			name: "member stays member",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserRole(gomock.Any(), userID).Return(auth.RoleMember, nil)
			},
			want: false,
		},
		{
			name: "lookup failure never grants admin",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserRole(gomock.Any(), userID).Return("", errors.New("db down"))
			},
			want: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo)
			svc := service.NewAuthService(repo, zap.NewExample(), testTokenTTL, testRoleTimeout)

			require.Equal(t, tt.want, svc.IsAdmin(context.Background(), userID))
		})
	}
}

func TestAuthService_IsAdmin_boundedLookup(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewAuthService(repo, zap.NewExample(), testTokenTTL, testRoleTimeout)

	// the lookup hangs until the deadline kills it
	repo.EXPECT().
		GetUserRole(gomock.Any(), "u1").
		DoAndReturn(func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	start := time.Now()
	isAdmin := svc.IsAdmin(context.Background(), "u1")
	require.False(t, isAdmin)
	require.Less(t, time.Since(start), time.Second)
}

func TestAuthService_Authorize(t *testing.T) {
	t.Parallel()
	const password = "secret123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := model.User{
		ID:           "u1",
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		PasswordHash: string(hash),
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewAuthService(repo, zap.NewExample(), testTokenTTL, testRoleTimeout)

		repo.EXPECT().GetUserByEmail(context.Background(), user.Email).Return(user, nil)
		repo.EXPECT().GetUserRole(gomock.Any(), user.ID).Return(auth.RoleAdmin, nil)

		resp, err := svc.Authorize(context.Background(), model.AuthRequest{Email: user.Email, Password: password})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)

		claims := &auth.Claims{}
		_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
			return auth.JWTKey, nil
		})
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Profile.UserID)
		require.Equal(t, user.Name, claims.Profile.Name)
		require.Equal(t, auth.RoleAdmin, claims.Profile.Role)
		require.Equal(t, user.Email, claims.Email)
	})

	t.Run("err. wrong password", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewAuthService(repo, zap.NewExample(), testTokenTTL, testRoleTimeout)

		repo.EXPECT().GetUserByEmail(context.Background(), user.Email).Return(user, nil)

		_, err := svc.Authorize(context.Background(), model.AuthRequest{Email: user.Email, Password: "nope-nope"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("err. unknown email maps to invalid credentials", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewAuthService(repo, zap.NewExample(), testTokenTTL, testRoleTimeout)

		repo.EXPECT().GetUserByEmail(context.Background(), "ghost@example.com").Return(model.User{}, errs.ErrNotFound)

		_, err := svc.Authorize(context.Background(), model.AuthRequest{Email: "ghost@example.com", Password: password})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewAuthService(repo, zap.NewExample(), testTokenTTL, testRoleTimeout)

	req := model.RegisterRequest{Name: "Asha Rao", Email: "asha@example.com", Password: "secret123", Admin: true}
	repo.EXPECT().
		CreateUser(context.Background(), req.Name, req.Email, gomock.Any(), auth.RoleAdmin).
		DoAndReturn(func(_ context.Context, name, email, passwordHash, _ string) (model.User, error) {
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)))
			return model.User{ID: "u1", Name: name, Email: email}, nil
		})

	user, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
}
