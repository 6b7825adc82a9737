package service

import (
	"context"
	"time"

	"github.com/arkv-lms/library-service/internal/errs"
	"github.com/arkv-lms/library-service/internal/model"
	"github.com/arkv-lms/library-service/internal/repository"
	"github.com/arkv-lms/library-service/pkg/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	log         *zap.Logger
	repo        repository.Repository
	tokenTTL    time.Duration
	roleTimeout time.Duration
}

func NewAuthService(repo repository.Repository, log *zap.Logger, tokenTTL, roleTimeout time.Duration) *AuthService {
	return &AuthService{
		log:         log.Named("auth"),
		repo:        repo,
		tokenTTL:    tokenTTL,
		roleTimeout: roleTimeout,
	}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}
	role := auth.RoleMember
	if req.Admin {
		role = auth.RoleAdmin
	}
	return s.repo.CreateUser(ctx, req.Name, req.Email, string(hash), role)
}

func (s *AuthService) Authorize(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(s.tokenTTL)
	claims := &auth.Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}
	claims.Profile.UserID = user.ID
	claims.Profile.Name = user.Name
	claims.Profile.Role = s.resolveRole(ctx, user.ID)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(auth.JWTKey)
	if err != nil {
		return model.AuthResponse{}, errors.Wrap(err, "sign token")
	}

	return model.AuthResponse{
		ExpiresIn:   int(expirationTime.Unix()),
		AccessToken: tokenString,
	}, nil
}

// IsAdmin re-resolves the role at the data-access boundary; the claim in the
// token is only a hint.
func (s *AuthService) IsAdmin(ctx context.Context, userID string) bool {
	return s.resolveRole(ctx, userID) == auth.RoleAdmin
}

// resolveRole classifies the user within a bounded wait. A slow, failed, or
// empty lookup yields member, never admin.
func (s *AuthService) resolveRole(ctx context.Context, userID string) string {
	ctx, cancel := context.WithTimeout(ctx, s.roleTimeout)
	defer cancel()

	type result struct {
		role string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		role, err := s.repo.GetUserRole(ctx, userID)
		ch <- result{role: role, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			s.log.Warn("role lookup failed, treating as member",
				zap.String("user_id", userID), zap.Error(res.err))
			return auth.RoleMember
		}
		if res.role != auth.RoleAdmin {
			return auth.RoleMember
		}
		return auth.RoleAdmin
	case <-ctx.Done():
		s.log.Warn("role lookup timed out, treating as member", zap.String("user_id", userID))
		return auth.RoleMember
	}
}
