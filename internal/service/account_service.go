package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/teacher-account-service/internal/auth"
	"github.com/spec-kit/teacher-account-service/internal/config"
	"github.com/spec-kit/teacher-account-service/internal/domain"
	"github.com/spec-kit/teacher-account-service/internal/events"
	"github.com/spec-kit/teacher-account-service/internal/repository"
	apperrors "github.com/spec-kit/teacher-account-service/pkg/util"
)

// RegisterInput carries a validated registration request.
type RegisterInput struct {
	Name            string
	LastName        string
	Email           string
	Password        string
	TeachingStage   *string
	SchoolType      *string
	SchoolLocation  *string
	Gender          *string
	ExperienceYears *string
	Community       *string
}

// LoginResult bundles the token pair with the account display name.
type LoginResult struct {
	Tokens domain.TokenPair
	Name   string
}

// AccountService coordinates registration, login and profile flows.
type AccountService struct {
	teachers   repository.TeacherRepository
	refresh    repository.RefreshTokenRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AccountDependencies encapsulates repo requirements for the account service.
type AccountDependencies struct {
	TeacherRepo      repository.TeacherRepository
	RefreshTokenRepo repository.RefreshTokenRepository
}

// NewAccountService builds the service.
func NewAccountService(cfg config.Config, deps AccountDependencies, dispatcher events.Dispatcher, logger *zap.Logger) *AccountService {
	return &AccountService{
		teachers:   deps.TeacherRepo,
		refresh:    deps.RefreshTokenRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes, cfg.Auth.RefreshTokenTTLHours),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Register creates a new teacher account. The email unique index is the
// single source of truth for duplicates; a violation surfaces as the
// repeated-email code.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*domain.Teacher, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	teacher := &domain.Teacher{
		Name:            input.Name,
		LastName:        input.LastName,
		Email:           input.Email,
		PasswordHash:    hash,
		TeachingStage:   input.TeachingStage,
		SchoolType:      input.SchoolType,
		SchoolLocation:  input.SchoolLocation,
		Gender:          input.Gender,
		ExperienceYears: input.ExperienceYears,
		Community:       input.Community,
	}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, apperrors.NewNotFound("email", "signup.error.email.repeated")
		}
		return nil, err
	}

	s.publish(ctx, events.EventTeacherRegistered, teacher.ID, events.TeacherRegisteredPayload{
		Email: teacher.Email,
		Name:  teacher.Name,
	})
	return teacher, nil
}

// Login authenticates a teacher and mints an access/refresh token pair.
// The refresh token is persisted before the pair is returned.
func (s *AccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	teacher, err := s.teachers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("email", "login.error.email.notExist")
		}
		return nil, err
	}

	if err := auth.ComparePassword(teacher.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("password", "login.error.password.incorrect")
	}

	// Username stays empty: accounts carry no username column.
	identity := domain.Claims{ID: teacher.ID, Role: domain.RoleTeacher}
	pair, err := s.tokenMgr.GeneratePair(identity)
	if err != nil {
		return nil, err
	}

	if err := s.refresh.Create(ctx, pair.RefreshToken); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTeacherLoggedIn, teacher.ID, events.TeacherLoggedInPayload{Email: teacher.Email})
	return &LoginResult{Tokens: pair, Name: teacher.Name}, nil
}

// Profile returns the attribute set for the authenticated account.
func (s *AccountService) Profile(ctx context.Context, teacherID string) (*domain.Profile, error) {
	return s.teachers.GetProfile(ctx, teacherID)
}

// UpdateProfile applies a partial update; nil fields preserve stored values.
func (s *AccountService) UpdateProfile(ctx context.Context, teacherID string, update domain.ProfileUpdate) (int64, error) {
	updated, err := s.teachers.UpdateProfile(ctx, teacherID, update)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return 0, apperrors.NewNotFound("email", "profile.error.email.repeated")
		}
		return 0, err
	}

	s.publish(ctx, events.EventProfileUpdated, teacherID, events.ProfileUpdatedPayload{UpdatedRows: updated})
	return updated, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AccountService) publish(ctx context.Context, eventType events.EventType, teacherID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		TeacherID: teacherID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.Warn("event publish failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}
