package service

import (
	"errors"

	"rudasumbwa_backend/internal/model"
	"rudasumbwa_backend/internal/repository"
	"rudasumbwa_backend/internal/util"
	"rudasumbwa_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(role, search string, page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.List(role, search, page, limit)
}

func (s *UserService) ListPendingApprovals(page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.ListByStatus(model.AccountPending, page, limit)
}

// Approve moves a pending account to approved. Approving an already approved
// account is a no-op.
func (s *UserService) Approve(userID uint) error {
	if _, err := s.GetUser(userID); err != nil {
		return err
	}
	if err := s.UserRepo.SetStatus(userID, model.AccountApproved); err != nil {
		return err
	}
	logger.Log.Info("account approved", zap.Uint("userId", userID))
	return nil
}

func (s *UserService) Reject(userID uint) error {
	if _, err := s.GetUser(userID); err != nil {
		return err
	}
	if err := s.UserRepo.SetStatus(userID, model.AccountRejected); err != nil {
		return err
	}
	logger.Log.Info("account rejected", zap.Uint("userId", userID))
	return nil
}

func (s *UserService) SetDisabled(userID uint, disabled bool) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	user.Disabled = disabled
	return s.UserRepo.Update(user)
}

type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	ClassName *string `json:"className"`
	Avatar    *string `json:"avatar"`
	Password  *string `json:"password"`
}

func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ClassName != nil {
		user.ClassName = *req.ClassName
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(userID uint) error {
	if _, err := s.GetUser(userID); err != nil {
		return err
	}
	return s.UserRepo.Delete(userID)
}
