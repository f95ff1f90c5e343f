package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/teacher-account-service/internal/auth"
	"github.com/spec-kit/teacher-account-service/internal/config"
	"github.com/spec-kit/teacher-account-service/internal/domain"
	"github.com/spec-kit/teacher-account-service/internal/events"
	"github.com/spec-kit/teacher-account-service/internal/repository"
	apperrors "github.com/spec-kit/teacher-account-service/pkg/util"
)

type stubTeacherRepo struct {
	createErr error
	created   *domain.Teacher

	teacher *domain.Teacher
	getErr  error

	updateRows int64
	updateErr  error
}

func (s *stubTeacherRepo) Create(_ context.Context, teacher *domain.Teacher) error {
	if s.createErr != nil {
		return s.createErr
	}
	teacher.ID = "teacher-1"
	s.created = teacher
	return nil
}

func (s *stubTeacherRepo) GetByEmail(context.Context, string) (*domain.Teacher, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.teacher, nil
}

func (s *stubTeacherRepo) GetByID(context.Context, string) (*domain.Teacher, error) {
	return s.teacher, s.getErr
}

func (s *stubTeacherRepo) GetProfile(context.Context, string) (*domain.Profile, error) {
	return nil, pgx.ErrNoRows
}

func (s *stubTeacherRepo) UpdateProfile(context.Context, string, domain.ProfileUpdate) (int64, error) {
	return s.updateRows, s.updateErr
}

type stubRefreshRepo struct {
	createErr error
	tokens    []string
}

func (s *stubRefreshRepo) Create(_ context.Context, token string) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.tokens = append(s.tokens, token)
	return nil
}

func newService(teachers *stubTeacherRepo, refresh *stubRefreshRepo, dispatcher events.Dispatcher) *AccountService {
	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 5
	cfg.Auth.RefreshTokenTTLHours = 1
	return NewAccountService(cfg, AccountDependencies{
		TeacherRepo:      teachers,
		RefreshTokenRepo: refresh,
	}, dispatcher, zap.NewNop())
}

func storedHash(t *testing.T) string {
	t.Helper()
	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)
	return hash
}

func TestRegisterHashesPasswordAndPublishes(t *testing.T) {
	teachers := &stubTeacherRepo{}
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventTeacherRegistered, func(_ context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})

	s := newService(teachers, &stubRefreshRepo{}, dispatcher)
	teacher, err := s.Register(context.Background(), RegisterInput{
		Name: "Ada", LastName: "Lovelace", Email: "ada@school.edu", Password: "pw",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "pw", teacher.PasswordHash)
	assert.NoError(t, auth.ComparePassword(teacher.PasswordHash, "pw"))

	require.Len(t, published, 1)
	assert.Equal(t, "teacher-1", published[0].TeacherID)
	assert.NotEmpty(t, published[0].ID)
}

func TestRegisterDuplicateEmailMapsToRepeatedCode(t *testing.T) {
	s := newService(&stubTeacherRepo{createErr: repository.ErrEmailTaken}, &stubRefreshRepo{}, nil)

	_, err := s.Register(context.Background(), RegisterInput{
		Name: "Ada", LastName: "Lovelace", Email: "ada@school.edu", Password: "pw",
	})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "signup.error.email.repeated", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestLoginPersistsRefreshToken(t *testing.T) {
	teachers := &stubTeacherRepo{teacher: &domain.Teacher{
		ID: "teacher-1", Name: "Ada", Email: "ada@school.edu", PasswordHash: storedHash(t),
	}}
	refresh := &stubRefreshRepo{}

	s := newService(teachers, refresh, nil)
	result, err := s.Login(context.Background(), "ada@school.edu", "pw")
	require.NoError(t, err)

	assert.Equal(t, "Ada", result.Name)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	require.Len(t, refresh.tokens, 1)
	assert.Equal(t, result.Tokens.RefreshToken, refresh.tokens[0])
}

func TestLoginUnknownEmail(t *testing.T) {
	s := newService(&stubTeacherRepo{getErr: pgx.ErrNoRows}, &stubRefreshRepo{}, nil)

	_, err := s.Login(context.Background(), "nobody@school.edu", "pw")
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "login.error.email.notExist", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestLoginWrongPassword(t *testing.T) {
	teachers := &stubTeacherRepo{teacher: &domain.Teacher{
		ID: "teacher-1", Name: "Ada", PasswordHash: storedHash(t),
	}}

	s := newService(teachers, &stubRefreshRepo{}, nil)
	_, err := s.Login(context.Background(), "ada@school.edu", "wrong")

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "login.error.password.incorrect", domainErr.Code)
	assert.Equal(t, http.StatusUnauthorized, domainErr.HTTPStatus)
}

func TestLoginAbortsWhenRefreshInsertFails(t *testing.T) {
	teachers := &stubTeacherRepo{teacher: &domain.Teacher{
		ID: "teacher-1", Name: "Ada", PasswordHash: storedHash(t),
	}}
	refresh := &stubRefreshRepo{createErr: errors.New("insert failed")}

	s := newService(teachers, refresh, nil)
	_, err := s.Login(context.Background(), "ada@school.edu", "pw")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, apperrors.CodeInternal, domainErr.Code)
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	s := newService(&stubTeacherRepo{updateErr: repository.ErrEmailTaken}, &stubRefreshRepo{}, nil)

	_, err := s.UpdateProfile(context.Background(), "teacher-1", domain.ProfileUpdate{})
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "profile.error.email.repeated", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestUpdateProfileReportsAffectedRows(t *testing.T) {
	s := newService(&stubTeacherRepo{updateRows: 1}, &stubRefreshRepo{}, nil)

	updated, err := s.UpdateProfile(context.Background(), "teacher-1", domain.ProfileUpdate{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated)
}
