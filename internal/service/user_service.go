// Package service implements the business logic layer.
package service

import (
	"context"
	"errors"

	"github.com/marcomarassi/note-keeper-service/internal/domain"
	"github.com/marcomarassi/note-keeper-service/internal/dto"
	"github.com/marcomarassi/note-keeper-service/internal/session"
	"github.com/marcomarassi/note-keeper-service/pkg/app"
	"github.com/marcomarassi/note-keeper-service/pkg/code"
	"github.com/marcomarassi/note-keeper-service/pkg/convert"
	"github.com/marcomarassi/note-keeper-service/pkg/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService handles registration, login and logout. Successful auth
// transitions are published to the session hub so the session
// controller can provision or tear down state.
type UserService interface {
	// Register creates the account and logs it straight in.
	Register(ctx context.Context, params *dto.UserRegisterRequest, clientIP string) (*dto.UserResponse, error)

	// Login verifies the credentials and issues a token.
	Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserResponse, error)

	// Logout announces the logout for uid.
	Logout(ctx context.Context, uid int64) error

	// GetInfo returns the account behind uid.
	GetInfo(ctx context.Context, uid int64) (*dto.UserResponse, error)
}

type userService struct {
	userRepo     domain.UserRepository
	tokenManager app.TokenManager
	hub          *session.Hub
	logger       *zap.Logger
	config       *ServiceConfig
}

func NewUserService(userRepo domain.UserRepository, tokenManager app.TokenManager, hub *session.Hub, logger *zap.Logger, config *ServiceConfig) UserService {
	return &userService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		hub:          hub,
		logger:       logger,
		config:       config,
	}
}

func (s *userService) domainToDTO(user *domain.User, token string) *dto.UserResponse {
	if user == nil {
		return nil
	}
	userDTO := &dto.UserResponse{Token: token}
	convert.StructAssign(user, userDTO)
	return userDTO
}

func (s *userService) publishLogin(user *domain.User) {
	s.hub.Publish(session.StateEvent{
		UID:  user.UID,
		User: &domain.SessionUser{UID: user.UID, Email: user.Email},
	})
}

func (s *userService) Register(ctx context.Context, params *dto.UserRegisterRequest, clientIP string) (*dto.UserResponse, error) {
	if s.config == nil || !s.config.User.RegisterIsEnable {
		return nil, code.ErrorRegisterDisabled
	}

	existing, err := s.userRepo.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.ErrorRegister.WithDetails(err.Error())
	}
	if existing != nil {
		return nil, code.ErrorUserEmailExists
	}

	password, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return nil, code.ErrorPasswordNotValid
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Email:    params.Email,
		Password: password,
	})
	if err != nil {
		return nil, code.ErrorRegister.WithDetails(err.Error())
	}

	token, err := s.tokenManager.Generate(user.UID, user.Email, clientIP)
	if err != nil {
		return nil, code.ErrorRegister.WithDetails(err.Error())
	}

	s.logger.Info("user registered", zap.Int64("uid", user.UID))

	// A fresh account starts a session immediately.
	s.publishLogin(user)

	return s.domainToDTO(user, token), nil
}

func (s *userService) Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorUserPasswordFailed
		}
		return nil, code.ErrorLogin.WithDetails(err.Error())
	}

	if !util.CheckPasswordHash(user.Password, params.Password) {
		return nil, code.ErrorUserPasswordFailed
	}

	token, err := s.tokenManager.Generate(user.UID, user.Email, clientIP)
	if err != nil {
		return nil, code.ErrorLogin.WithDetails(err.Error())
	}

	s.logger.Info("user logged in", zap.Int64("uid", user.UID))

	s.publishLogin(user)

	return s.domainToDTO(user, token), nil
}

func (s *userService) Logout(ctx context.Context, uid int64) error {
	s.logger.Info("user logged out", zap.Int64("uid", uid))
	s.hub.Publish(session.StateEvent{UID: uid, User: nil})
	return nil
}

func (s *userService) GetInfo(ctx context.Context, uid int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorUserNotFound
		}
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}
	return s.domainToDTO(user, ""), nil
}

var _ UserService = (*userService)(nil)
