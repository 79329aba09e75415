package service

import (
	"context"
	"fmt"
	"time"

	"emerge-career-be/internal/dto"
	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/pkg/logger"
	"emerge-career-be/internal/repository/unitofwork"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// Login checks plaintext credentials and maintains the login streak. The
// email doubles as the username.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.GetByUsername(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != req.Password {
		return nil, fmt.Errorf("invalid email or password")
	}

	now := time.Now()
	newStreak, changed := nextStreak(user.StreakDays, user.LastLoginDate, now)
	if changed {
		user.StreakDays = newStreak
		user.LastLoginDate = &now
		if err := repo.Update(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("auth", "login streak updated", map[string]interface{}{
			"user_id": user.Id.String(),
			"streak":  newStreak,
		})
	}

	return &dto.LoginResponse{
		UserId:     user.Id,
		HasProfile: user.HasProfile(),
	}, nil
}

// nextStreak returns the streak after a login at now, plus whether the
// stored value needs updating. Consecutive-day logins increment, a gap
// resets to 1, a second login on the same day changes nothing.
func nextStreak(current int, lastLogin *time.Time, now time.Time) (int, bool) {
	if lastLogin == nil {
		return 1, true
	}

	today := startOfDay(now)
	last := startOfDay(*lastLogin)
	diffDays := int(today.Sub(last).Hours() / 24)

	switch {
	case diffDays == 0:
		return current, false
	case diffDays == 1:
		return current + 1, true
	default:
		return 1, true
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	existing, err := repo.GetByUsername(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	email := req.Email
	user := &entity.User{
		Username:      req.Email,
		Password:      req.Password,
		Email:         &email,
		Subjects:      []string{},
		ThinkingStyle: string(entity.ThinkingStylePlan),
		Level:         1,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user registered", map[string]interface{}{
		"user_id": user.Id.String(),
	})

	return &dto.RegisterResponse{UserId: user.Id}, nil
}
