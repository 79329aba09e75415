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

	"github.com/google/uuid"
)

const dashboardActivityLimit = 5

type IDashboardService interface {
	GetDashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	advisor    *advisor.Advisor
	logger     logger.ILogger
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, adv *advisor.Advisor, log logger.ILogger) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		advisor:    adv,
		logger:     log,
	}
}

// GetDashboard assembles the aggregate view. A profiled user with no goals
// gets three generated on the fly so the dashboard never renders empty.
func (s *dashboardService) GetDashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().GetById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	goals, err := uow.GoalRepository().GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	activities, err := uow.ActivityRepository().GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	recommendations, err := uow.RecommendationRepository().GetByUserId(ctx, userId, "")
	if err != nil {
		return nil, err
	}

	if len(goals) == 0 && len(user.Subjects) > 0 {
		goals = s.autoGenerateGoals(ctx, uow, user)
	}

	goalResponses := make([]dto.GoalResponse, 0, len(goals))
	for _, g := range goals {
		goalResponses = append(goalResponses, toGoalResponse(g))
	}

	if len(activities) > dashboardActivityLimit {
		activities = activities[:dashboardActivityLimit]
	}
	activityResponses := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		activityResponses = append(activityResponses, toActivityResponse(a))
	}

	recResponses := make([]dto.RecommendationResponse, 0, len(recommendations))
	for _, r := range recommendations {
		recResponses = append(recResponses, dto.RecommendationResponse{
			Id:          r.Id,
			Type:        string(r.Type),
			Title:       r.Title,
			Description: r.Description,
			Url:         r.Url,
			Metadata:    r.Metadata,
		})
	}

	return &dto.DashboardResponse{
		User:            toUserResponse(user),
		Goals:           goalResponses,
		Activities:      activityResponses,
		Recommendations: recResponses,
		Trends:          dashboardTrends(user.PrimarySubject()),
		DailyChallenge: dto.DailyChallenge{
			Id:          "daily-1",
			Title:       "Complete one learning goal",
			Description: "Finish at least one of your set goals for today to earn extra XP.",
			Completed:   false,
			Xp:          50,
		},
	}, nil
}

func (s *dashboardService) autoGenerateGoals(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) []*entity.Goal {
	titles := s.advisor.SuggestGoals(ctx, user.Subjects, user.Skills, user.Interests, 3)

	goals := make([]*entity.Goal, 0, len(titles))
	for _, title := range titles {
		goal := &entity.Goal{
			UserId: user.Id,
			Title:  title,
		}
		if err := uow.GoalRepository().Create(ctx, goal); err != nil {
			s.logger.Warn("dashboard", "could not create generated goal", map[string]interface{}{
				"user_id": user.Id.String(),
				"error":   err.Error(),
			})
			continue
		}
		goals = append(goals, goal)
	}
	return goals
}

// dashboardTrends is the canned feed shown on the dashboard; the live feed
// backs the dedicated trends endpoint.
func dashboardTrends(subject string) []news.Trend {
	return []news.Trend{
		{
			Id:          "1",
			Title:       "The Growing Demand for Full-Stack Developers",
			Description: "Companies are increasingly looking for developers with both frontend and backend expertise.",
			Url:         "https://www.example.com/trends/fullstack",
			Type:        "post",
			Metrics: &news.TrendMetrics{
				LikeCount:    432,
				RetweetCount: 89,
				ReplyCount:   32,
			},
		},
		{
			Id:          "2",
			Title:       fmt.Sprintf("%s Jobs Projected to Grow 13%% by 2030", subject),
			Description: fmt.Sprintf("%s jobs are growing much faster than the average for all occupations.", subject),
			Url:         "https://www.bls.gov/ooh/computer-and-information-technology/home.htm",
			Type:        "article",
		},
	}
}
