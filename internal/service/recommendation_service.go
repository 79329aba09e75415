package service

import (
	"context"
	"fmt"

	"emerge-career-be/internal/dto"
	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/pkg/logger"
	"emerge-career-be/internal/repository/unitofwork"
	"emerge-career-be/pkg/advisor"
	"emerge-career-be/pkg/content/news"
	"emerge-career-be/pkg/content/youtube"

	"github.com/google/uuid"
)

type IRecommendationService interface {
	GetVideoRecommendation(ctx context.Context, userId uuid.UUID) (*dto.VideoResponse, error)
	GetCourseRecommendation(ctx context.Context, userId uuid.UUID) (*dto.CourseResponse, error)
	GetCareerTrends(ctx context.Context, subject string) []news.Trend
}

type recommendationService struct {
	uowFactory unitofwork.RepositoryFactory
	advisor    *advisor.Advisor
	videos     *youtube.Client
	trends     *news.Client
	logger     logger.ILogger
}

func NewRecommendationService(
	uowFactory unitofwork.RepositoryFactory,
	adv *advisor.Advisor,
	videos *youtube.Client,
	trends *news.Client,
	log logger.ILogger,
) IRecommendationService {
	return &recommendationService{
		uowFactory: uowFactory,
		advisor:    adv,
		videos:     videos,
		trends:     trends,
		logger:     log,
	}
}

// GetVideoRecommendation fetches a fresh video for the user's primary
// subject and persists it, replacing any previously stored videos so the
// dashboard only ever shows the latest one. The fetch itself cannot fail,
// only the writes.
func (s *recommendationService) GetVideoRecommendation(ctx context.Context, userId uuid.UUID) (*dto.VideoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().GetById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil || len(user.Subjects) == 0 {
		return nil, fmt.Errorf("user or subjects not found")
	}

	video := s.videos.Search(ctx, user.PrimarySubject())

	stale, err := uow.RecommendationRepository().GetByUserId(ctx, userId, entity.RecommendationTypeVideo)
	if err != nil {
		return nil, err
	}
	for _, old := range stale {
		if _, err := uow.RecommendationRepository().Delete(ctx, old.Id); err != nil {
			return nil, err
		}
	}

	rec := &entity.Recommendation{
		UserId:      user.Id,
		Type:        entity.RecommendationTypeVideo,
		Title:       video.Title,
		Description: video.Description,
		Url:         video.Url,
		Metadata: map[string]interface{}{
			"thumbnailUrl": video.ThumbnailUrl,
			"channelTitle": video.ChannelTitle,
		},
	}
	if err := uow.RecommendationRepository().Create(ctx, rec); err != nil {
		return nil, err
	}

	return &dto.VideoResponse{
		Title:        video.Title,
		Description:  video.Description,
		Url:          video.Url,
		ThumbnailUrl: video.ThumbnailUrl,
		ChannelTitle: video.ChannelTitle,
	}, nil
}

// GetCourseRecommendation returns the most recent stored course for the
// user, generating and persisting one only when none exists yet.
func (s *recommendationService) GetCourseRecommendation(ctx context.Context, userId uuid.UUID) (*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().GetById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	existing, err := uow.RecommendationRepository().GetByUserId(ctx, userId, entity.RecommendationTypeCourse)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return toCourseResponse(existing[0]), nil
	}

	course := s.advisor.CourseRecommendation(ctx, user.Subjects)

	rec := &entity.Recommendation{
		UserId:      user.Id,
		Type:        entity.RecommendationTypeCourse,
		Title:       course.Title,
		Description: course.Description,
		Url:         course.Url,
		Metadata: map[string]interface{}{
			"duration": course.Duration,
			"level":    course.Level,
		},
	}
	if err := uow.RecommendationRepository().Create(ctx, rec); err != nil {
		return nil, err
	}

	return &dto.CourseResponse{
		Title:       course.Title,
		Description: course.Description,
		Url:         course.Url,
		Duration:    course.Duration,
		Level:       course.Level,
	}, nil
}

func (s *recommendationService) GetCareerTrends(ctx context.Context, subject string) []news.Trend {
	return s.trends.CareerTrends(ctx, subject)
}

func toCourseResponse(rec *entity.Recommendation) *dto.CourseResponse {
	duration := "8 weeks"
	level := "Beginner"
	if rec.Metadata != nil {
		if v, ok := rec.Metadata["duration"].(string); ok && v != "" {
			duration = v
		}
		if v, ok := rec.Metadata["level"].(string); ok && v != "" {
			level = v
		}
	}
	return &dto.CourseResponse{
		Title:       rec.Title,
		Description: rec.Description,
		Url:         rec.Url,
		Duration:    duration,
		Level:       level,
	}
}
