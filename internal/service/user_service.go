package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"emerge-career-be/internal/dto"
	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/pkg/logger"
	"emerge-career-be/internal/repository/unitofwork"
	"emerge-career-be/pkg/advisor"
	"emerge-career-be/pkg/events"

	"github.com/google/uuid"
)

const defaultSurveyPassword = "password123"

type IUserService interface {
	SubmitSurvey(ctx context.Context, req *dto.SurveyRequest) (*dto.SurveyResponse, error)
	GetUser(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	advisor    *advisor.Advisor
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	adv *advisor.Advisor,
	publisher IPublisherService,
	log logger.ILogger,
) IUserService {
	return &userService{
		uowFactory: uowFactory,
		advisor:    adv,
		publisher:  publisher,
		logger:     log,
	}
}

// SubmitSurvey creates a profile when no user_id comes with the request and
// updates the existing profile otherwise. Goal seeding and the activity log
// are best effort: their failures never fail the submission.
func (s *userService) SubmitSurvey(ctx context.Context, req *dto.SurveyRequest) (*dto.SurveyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var user *entity.User
	var err error
	if req.UserId != nil {
		user, err = s.updateProfile(ctx, uow, *req.UserId, req)
	} else {
		user, err = s.createProfile(ctx, uow, req)
	}
	if err != nil {
		return nil, err
	}

	s.seedGoalsIfEmpty(ctx, uow, user)
	s.announceProfile(ctx, user)

	return &dto.SurveyResponse{UserId: user.Id}, nil
}

func (s *userService) updateProfile(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, req *dto.SurveyRequest) (*entity.User, error) {
	repo := uow.UserRepository()

	user, err := repo.GetById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Email != "" {
		email := req.Email
		user.Email = &email
	}
	if req.Avatar != "" {
		avatar := req.Avatar
		user.Avatar = &avatar
	}
	user.Subjects = req.Subjects
	user.Interests = req.Interests
	user.Skills = req.Skills
	user.Goal = req.Goal
	user.ThinkingStyle = thinkingStyleOrDefault(req.ThinkingStyle)
	user.ExtraInfo = req.ExtraInfo

	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, uow, user.Id, "Updated Career Profile")
	return user, nil
}

func (s *userService) createProfile(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.SurveyRequest) (*entity.User, error) {
	username := req.Username
	if username == "" {
		username = generateUsername(req.Email)
	}
	password := req.Password
	if password == "" {
		password = defaultSurveyPassword
	}

	user := &entity.User{
		Username:      username,
		Password:      password,
		Name:          req.Name,
		Subjects:      req.Subjects,
		Interests:     req.Interests,
		Skills:        req.Skills,
		Goal:          req.Goal,
		ThinkingStyle: thinkingStyleOrDefault(req.ThinkingStyle),
		ExtraInfo:     req.ExtraInfo,
		Level:         1,
	}
	if req.Email != "" {
		email := req.Email
		user.Email = &email
	}
	if req.Avatar != "" {
		avatar := req.Avatar
		user.Avatar = &avatar
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, uow, user.Id, "Joined Emerge Career Platform")
	return user, nil
}

// seedGoalsIfEmpty generates a starter goal for a profile that has subjects
// but no goals yet.
func (s *userService) seedGoalsIfEmpty(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) {
	if len(user.Subjects) == 0 {
		return
	}

	existing, err := uow.GoalRepository().GetByUserId(ctx, user.Id)
	if err != nil {
		s.logger.Warn("user", "could not list goals for seeding", map[string]interface{}{
			"user_id": user.Id.String(),
			"error":   err.Error(),
		})
		return
	}
	if len(existing) > 0 {
		return
	}

	for _, title := range s.advisor.SuggestGoals(ctx, user.Subjects, user.Skills, user.Interests, 1) {
		goal := &entity.Goal{
			UserId: user.Id,
			Title:  title,
		}
		if err := uow.GoalRepository().Create(ctx, goal); err != nil {
			s.logger.Warn("user", "could not seed goal", map[string]interface{}{
				"user_id": user.Id.String(),
				"error":   err.Error(),
			})
		}
	}
}

func (s *userService) recordActivity(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, title string) {
	activity := &entity.Activity{
		UserId:   userId,
		Type:     entity.ActivityTypeLesson,
		Title:    title,
		IsRecent: true,
	}
	if err := uow.ActivityRepository().Create(ctx, activity); err != nil {
		s.logger.Warn("user", "could not record activity", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
}

// announceProfile tells the background consumer to warm a video
// recommendation for the user's primary subject.
func (s *userService) announceProfile(ctx context.Context, user *entity.User) {
	if s.publisher == nil || len(user.Subjects) == 0 {
		return
	}

	evt := events.NewBaseEvent(events.TypeProfileSubmitted, map[string]interface{}{
		"user_id": user.Id.String(),
		"subject": user.PrimarySubject(),
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("user", "could not publish profile event", map[string]interface{}{
			"user_id": user.Id.String(),
			"error":   err.Error(),
		})
	}
}

func (s *userService) GetUser(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().GetById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	res := toUserResponse(user)
	return &res, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	avatar := ""
	if user.Avatar != nil {
		avatar = *user.Avatar
	}
	return dto.UserResponse{
		Id:            user.Id,
		Name:          user.Name,
		Username:      user.Username,
		Email:         email,
		Avatar:        avatar,
		Subjects:      user.Subjects,
		Interests:     user.Interests,
		Skills:        user.Skills,
		Goal:          user.Goal,
		ThinkingStyle: user.ThinkingStyle,
		ExtraInfo:     user.ExtraInfo,
		Level:         user.Level,
		Progress:      user.Progress,
		StreakDays:    user.StreakDays,
		HasProfile:    user.HasProfile(),
	}
}

func thinkingStyleOrDefault(style string) string {
	if style == "" {
		return string(entity.ThinkingStylePlan)
	}
	return style
}

// generateUsername derives a unique-enough username from the email local
// part when the survey does not supply one.
func generateUsername(email string) string {
	base := "user"
	if at := strings.Index(email, "@"); at > 0 {
		base = email[:at]
	}
	return fmt.Sprintf("%s%d", base, rand.Intn(10000))
}
