package service

import (
	"context"
	"fmt"

	"emerge-career-be/internal/dto"
	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IActivityService interface {
	CreateActivity(ctx context.Context, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	GetActivities(ctx context.Context, userId uuid.UUID) ([]dto.ActivityResponse, error)
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory) IActivityService {
	return &activityService{uowFactory: uowFactory}
}

func (s *activityService) CreateActivity(ctx context.Context, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().GetById(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	activity := &entity.Activity{
		UserId:   req.UserId,
		Type:     entity.ActivityType(req.Type),
		Title:    req.Title,
		IsRecent: req.IsRecent,
	}
	if err := uow.ActivityRepository().Create(ctx, activity); err != nil {
		return nil, err
	}

	res := toActivityResponse(activity)
	return &res, nil
}

func (s *activityService) GetActivities(ctx context.Context, userId uuid.UUID) ([]dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activities, err := uow.ActivityRepository().GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		responses = append(responses, toActivityResponse(a))
	}
	return responses, nil
}

func toActivityResponse(activity *entity.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		Id:       activity.Id,
		Type:     string(activity.Type),
		Title:    activity.Title,
		Time:     activity.Time,
		IsRecent: activity.IsRecent,
	}
}
