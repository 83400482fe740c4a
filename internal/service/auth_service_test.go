package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"nirogya-be/internal/config"
	"nirogya-be/internal/dto"
	"nirogya-be/internal/entity"
	"nirogya-be/internal/repository/specification"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	mu         sync.Mutex
	users      []*entity.User
	findOneErr error
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepository) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func (r *fakeUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findOneErr != nil {
		return nil, r.findOneErr
	}
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByEmail:
			for _, u := range r.users {
				if u.Email == s.Email {
					return u, nil
				}
			}
		case specification.ByID:
			for _, u := range r.users {
				if u.Id == s.ID {
					return u, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.User(nil), r.users...), nil
}

func (r *fakeUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type fakeEmailService struct {
	mu      sync.Mutex
	welcome []string
}

func (s *fakeEmailService) SendWelcome(toEmail, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.welcome = append(s.welcome, toEmail)
	return nil
}

func (s *fakeEmailService) welcomed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.welcome...)
}

func testAuthService(t *testing.T) (IAuthService, *fakeUserRepository, *fakeEmailService) {
	t.Helper()
	repo := &fakeUserRepository{}
	mail := &fakeEmailService{}
	factory := &fakeRepositoryFactory{uow: &fakeUnitOfWork{userRepo: repo}}
	svc := NewAuthService(factory, mail, nil, config.AuthConfig{
		JWTSecret: "test_secret",
		TokenTTL:  7 * 24 * time.Hour,
	})
	return svc, repo, mail
}

func TestRegisterHashesPasswordAndSendsWelcome(t *testing.T) {
	svc, repo, mail := testAuthService(t)

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "asha", res.Username)
	assert.Equal(t, "asha@example.com", res.Email)

	stored, err := repo.FindOne(context.Background(), specification.ByEmail{Email: "asha@example.com"})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))

	assert.Eventually(t, func() bool {
		return len(mail.welcomed()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestRegisterPropagatesLookupFailure(t *testing.T) {
	svc, repo, _ := testAuthService(t)
	repo.findOneErr = errors.New("connection refused")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)

	repo.findOneErr = nil
	count, _ := repo.Count(context.Background())
	assert.Zero(t, count, "no row may be created when the duplicate check fails")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := testAuthService(t)

	req := &dto.RegisterRequest{Username: "asha", Email: "asha@example.com", Password: "secret123"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLoginIssuesTokenWithUserClaims(t *testing.T) {
	svc, _, _ := testAuthService(t)

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, reg.Id, res.User.Id)
	assert.Equal(t, "asha", res.User.Username)

	parsed, err := jwt.Parse(res.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, reg.Id.String(), claims["user_id"])
	assert.Equal(t, "asha@example.com", claims["email"])
	assert.Equal(t, "asha", claims["username"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(7*24*time.Hour).Unix(), int64(exp), 60)
}

func TestLoginSignsWithConfiguredSecret(t *testing.T) {
	// A stray JWT_SECRET in the environment must not override the
	// injected config, or signing and verification could diverge.
	t.Setenv("JWT_SECRET", "some_other_secret")
	svc, _, _ := testAuthService(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	parsed, err := jwt.Parse(res.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _, _ := testAuthService(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _, _ := testAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMeReturnsNotFoundForUnknownUser(t *testing.T) {
	svc, _, _ := testAuthService(t)

	_, err := svc.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
