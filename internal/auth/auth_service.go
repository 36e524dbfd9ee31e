package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	autherrors "github.com/mirak10/PeopleIQ/internal/auth/errors"
	"github.com/mirak10/PeopleIQ/internal/domain"
	"github.com/mirak10/PeopleIQ/internal/employee"
	"github.com/mirak10/PeopleIQ/internal/shared/counter"
	"github.com/mirak10/PeopleIQ/internal/user"
	usererrors "github.com/mirak10/PeopleIQ/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenIssuer is satisfied by *token.Manager.
type TokenIssuer interface {
	Generate(userID string, role domain.Role) (string, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
}

type service struct {
	db        *sql.DB
	users     user.Repository
	employees employee.Repository
	counter   counter.Repository
	tokens    TokenIssuer
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	users user.Repository,
	employees employee.Repository,
	counter counter.Repository,
	tokens TokenIssuer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:        db,
		users:     users,
		employees: employees,
		counter:   counter,
		tokens:    tokens,
		logger:    l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	role := domain.RoleEmployee
	if strings.TrimSpace(req.Role) != "" {
		parsed, ok := domain.ParseRole(req.Role)
		if !ok {
			return AuthResponse{}, autherrors.ErrInvalidRole
		}
		role = parsed
	}

	email := user.NormalizeEmail(req.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return AuthResponse{}, usererrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("register email lookup failed", zap.Error(err))
		return AuthResponse{}, err
	}

	hashed, err := user.HashPassword(req.Password)
	if err != nil {
		return AuthResponse{}, err
	}

	account := &user.User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
		Role:     role,
	}

	var bundle *employee.Bundle
	if role == domain.RoleEmployee {
		next, err := s.counter.GetNextValue(ctx, counter.EmployeeCode)
		if err != nil {
			s.logger.Error("register generate employee code failed", zap.Error(err))
			return AuthResponse{}, err
		}
		b := employee.NewBundle(counter.FormatEmployeeCode(next), &account.ID, account.Name, account.Email, "", role.String())
		bundle = &b
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.Error(err))
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	if err := s.users.WithTx(tx).Create(ctx, account); err != nil {
		s.logger.Warn("register persist identity failed", zap.Error(err))
		return AuthResponse{}, user.MapRepositoryError(err)
	}
	if bundle != nil {
		if err := s.employees.WithTx(tx).CreateBundle(ctx, bundle); err != nil {
			s.logger.Error("register persist employee bundle failed", zap.Error(err))
			return AuthResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", account.ID.String()),
		zap.String("role", role.String()),
		zap.Bool("profile_created", bundle != nil),
	)
	return s.issue(account)
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	account, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
			return AuthResponse{}, err
		}
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.CheckPassword(account.Password, password) {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	return s.issue(account)
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}

	account, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return AuthResponse{}, user.MapRepositoryError(err)
	}

	return AuthResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role.String(),
	}, nil
}

func (s *service) issue(account *user.User) (AuthResponse, error) {
	signed, err := s.tokens.Generate(account.ID.String(), account.Role)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed.WithErr(err)
	}

	return AuthResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role.String(),
		Token: signed,
	}, nil
}
