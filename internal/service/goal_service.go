package service

import (
	"context"
	"fmt"

	"emerge-career-be/internal/dto"
	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/pkg/logger"
	"emerge-career-be/internal/repository/unitofwork"
	"emerge-career-be/pkg/advisor"
	"emerge-career-be/pkg/events"

	"github.com/google/uuid"
)

type IGoalService interface {
	CreateGoal(ctx context.Context, req *dto.CreateGoalRequest) (*dto.GoalResponse, error)
	UpdateGoal(ctx context.Context, goalId uuid.UUID, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error)
	DeleteGoal(ctx context.Context, goalId uuid.UUID) error
	SuggestGoal(ctx context.Context, userId uuid.UUID) (*dto.SuggestGoalsResponse, error)
}

type goalService struct {
	uowFactory unitofwork.RepositoryFactory
	advisor    *advisor.Advisor
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewGoalService(uowFactory unitofwork.RepositoryFactory, adv *advisor.Advisor, publisher IPublisherService, log logger.ILogger) IGoalService {
	return &goalService{
		uowFactory: uowFactory,
		advisor:    adv,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *goalService) CreateGoal(ctx context.Context, req *dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().GetById(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	goal := &entity.Goal{
		UserId:    req.UserId,
		Title:     req.Title,
		Completed: req.Completed,
		Progress:  req.Progress,
	}
	if err := uow.GoalRepository().Create(ctx, goal); err != nil {
		return nil, err
	}

	res := toGoalResponse(goal)
	return &res, nil
}

// UpdateGoal applies the partial update. Marking a goal completed runs the
// one cross-entity rule in the system: bump the owner's progress by 10
// (levelling up on rollover), log a badge activity, then remove the goal.
// The progress update and the activity write are independent; a failure
// between them leaves the first in place.
func (s *goalService) UpdateGoal(ctx context.Context, goalId uuid.UUID, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	goal, err := uow.GoalRepository().GetById(ctx, goalId)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, fmt.Errorf("goal not found")
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Progress != nil {
		goal.Progress = *req.Progress
	}
	if req.Completed != nil {
		goal.Completed = *req.Completed
	}

	if err := uow.GoalRepository().Update(ctx, goal); err != nil {
		return nil, err
	}

	if req.Completed != nil && *req.Completed {
		if err := s.completeGoal(ctx, uow, goal); err != nil {
			return nil, err
		}
	}

	res := toGoalResponse(goal)
	return &res, nil
}

func (s *goalService) completeGoal(ctx context.Context, uow unitofwork.UnitOfWork, goal *entity.Goal) error {
	if _, err := uow.UserRepository().IncrementProgress(ctx, goal.UserId, 10); err != nil {
		return err
	}

	activity := &entity.Activity{
		UserId:   goal.UserId,
		Type:     entity.ActivityTypeBadge,
		Title:    fmt.Sprintf("Completed goal: %s", goal.Title),
		IsRecent: true,
	}
	if err := uow.ActivityRepository().Create(ctx, activity); err != nil {
		return err
	}

	// Completed goals do not linger; only the badge activity survives.
	if _, err := uow.GoalRepository().Delete(ctx, goal.Id); err != nil {
		return err
	}

	s.announceCompletion(ctx, goal)

	s.logger.Info("goal", "goal completed", map[string]interface{}{
		"goal_id": goal.Id.String(),
		"user_id": goal.UserId.String(),
	})
	return nil
}

// announceCompletion puts the completion on the bus. Best effort, like the
// profile announcement: a publish failure never fails the request.
func (s *goalService) announceCompletion(ctx context.Context, goal *entity.Goal) {
	if s.publisher == nil {
		return
	}

	evt := events.NewBaseEvent(events.TypeGoalCompleted, map[string]interface{}{
		"user_id": goal.UserId.String(),
		"title":   goal.Title,
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("goal", "could not publish completion event", map[string]interface{}{
			"goal_id": goal.Id.String(),
			"error":   err.Error(),
		})
	}
}

func (s *goalService) DeleteGoal(ctx context.Context, goalId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deleted, err := uow.GoalRepository().Delete(ctx, goalId)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("goal not found")
	}
	return nil
}

// SuggestGoal generates one fresh goal for the user and returns the full
// title list, existing goals included.
func (s *goalService) SuggestGoal(ctx context.Context, userId uuid.UUID) (*dto.SuggestGoalsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().GetById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	if len(user.Subjects) == 0 {
		return nil, fmt.Errorf("user profile incomplete")
	}

	suggestions := s.advisor.SuggestGoals(ctx, user.Subjects, user.Skills, user.Interests, 1)
	if len(suggestions) > 0 {
		goal := &entity.Goal{
			UserId: user.Id,
			Title:  suggestions[0],
		}
		if err := uow.GoalRepository().Create(ctx, goal); err != nil {
			return nil, err
		}
	}

	goals, err := uow.GoalRepository().GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(goals))
	for _, g := range goals {
		titles = append(titles, g.Title)
	}
	return &dto.SuggestGoalsResponse{Goals: titles}, nil
}

func toGoalResponse(goal *entity.Goal) dto.GoalResponse {
	return dto.GoalResponse{
		Id:        goal.Id,
		Title:     goal.Title,
		Completed: goal.Completed,
		Progress:  goal.Progress,
	}
}
