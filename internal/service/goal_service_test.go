package service

import (
	"context"
	"testing"

	"emerge-career-be/internal/dto"
	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/repository/unitofwork"
	"emerge-career-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, factory unitofwork.RepositoryFactory, progress, level int) *entity.User {
	t.Helper()
	user := &entity.User{
		Username:  "goals@example.com",
		Password:  "pw",
		Subjects:  []string{"Biology"},
		Interests: "genetics",
		Progress:  progress,
		Level:     level,
	}
	uow := factory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.UserRepository().Create(context.Background(), user))
	return user
}

func TestCreateGoal(t *testing.T) {
	factory := newMemoryFactory()
	svc := NewGoalService(factory, newOfflineAdvisor(), nil, silentLogger{})
	ctx := context.Background()
	user := seedUser(t, factory, 0, 1)

	goal, err := svc.CreateGoal(ctx, &dto.CreateGoalRequest{UserId: user.Id, Title: "Read one paper"})
	require.NoError(t, err)
	assert.Equal(t, "Read one paper", goal.Title)
	assert.False(t, goal.Completed)

	_, err = svc.CreateGoal(ctx, &dto.CreateGoalRequest{UserId: uuid.New(), Title: "orphan"})
	assert.EqualError(t, err, "user not found")
}

func TestCompleteGoalSideEffects(t *testing.T) {
	factory := newMemoryFactory()
	svc := NewGoalService(factory, newOfflineAdvisor(), nil, silentLogger{})
	ctx := context.Background()
	user := seedUser(t, factory, 40, 1)

	created, err := svc.CreateGoal(ctx, &dto.CreateGoalRequest{UserId: user.Id, Title: "Finish tutorial"})
	require.NoError(t, err)

	completed := true
	_, err = svc.UpdateGoal(ctx, created.Id, &dto.UpdateGoalRequest{Completed: &completed})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)

	updated, err := uow.UserRepository().GetById(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Progress)
	assert.Equal(t, 1, updated.Level)

	activities, err := uow.ActivityRepository().GetByUserId(ctx, user.Id)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, entity.ActivityTypeBadge, activities[0].Type)
	assert.Equal(t, "Completed goal: Finish tutorial", activities[0].Title)

	// the completed goal is gone from storage
	remaining, err := uow.GoalRepository().GetByUserId(ctx, user.Id)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestCompleteGoalLevelsUpOnFullProgress(t *testing.T) {
	factory := newMemoryFactory()
	svc := NewGoalService(factory, newOfflineAdvisor(), nil, silentLogger{})
	ctx := context.Background()
	user := seedUser(t, factory, 95, 2)

	created, err := svc.CreateGoal(ctx, &dto.CreateGoalRequest{UserId: user.Id, Title: "Last push"})
	require.NoError(t, err)

	completed := true
	_, err = svc.UpdateGoal(ctx, created.Id, &dto.UpdateGoalRequest{Completed: &completed})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	updated, err := uow.UserRepository().GetById(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Level, "crossing 100 bumps the level")
	assert.Equal(t, 0, updated.Progress, "progress caps at 100 and wraps to 0")
}

func TestCompleteGoalPublishesCompletionEvent(t *testing.T) {
	factory := newMemoryFactory()
	publisher := &capturingPublisher{}
	svc := NewGoalService(factory, newOfflineAdvisor(), publisher, silentLogger{})
	ctx := context.Background()
	user := seedUser(t, factory, 10, 1)

	created, err := svc.CreateGoal(ctx, &dto.CreateGoalRequest{UserId: user.Id, Title: "Shadow an engineer"})
	require.NoError(t, err)

	completed := true
	_, err = svc.UpdateGoal(ctx, created.Id, &dto.UpdateGoalRequest{Completed: &completed})
	require.NoError(t, err)

	require.Len(t, publisher.published, 1)
	evt := publisher.published[0]
	assert.Equal(t, events.TypeGoalCompleted, evt.EventType())
	assert.Equal(t, user.Id.String(), evt.Payload()["user_id"])
	assert.Equal(t, "Shadow an engineer", evt.Payload()["title"])
}

func TestUpdateGoalNotFound(t *testing.T) {
	factory := newMemoryFactory()
	svc := NewGoalService(factory, newOfflineAdvisor(), nil, silentLogger{})

	completed := true
	_, err := svc.UpdateGoal(context.Background(), uuid.New(), &dto.UpdateGoalRequest{Completed: &completed})
	assert.EqualError(t, err, "goal not found")
}

func TestDeleteGoal(t *testing.T) {
	factory := newMemoryFactory()
	svc := NewGoalService(factory, newOfflineAdvisor(), nil, silentLogger{})
	ctx := context.Background()
	user := seedUser(t, factory, 0, 1)

	created, err := svc.CreateGoal(ctx, &dto.CreateGoalRequest{UserId: user.Id, Title: "Temp"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGoal(ctx, created.Id))
	assert.EqualError(t, svc.DeleteGoal(ctx, created.Id), "goal not found")
}

func TestSuggestGoalAppendsWithoutClearing(t *testing.T) {
	factory := newMemoryFactory()
	svc := NewGoalService(factory, newScriptedAdvisor(`["Interview a mentor"]`), nil, silentLogger{})
	ctx := context.Background()
	user := seedUser(t, factory, 0, 1)

	_, err := svc.CreateGoal(ctx, &dto.CreateGoalRequest{UserId: user.Id, Title: "Existing goal"})
	require.NoError(t, err)

	res, err := svc.SuggestGoal(ctx, user.Id)
	require.NoError(t, err)
	assert.Len(t, res.Goals, 2)
	assert.Contains(t, res.Goals, "Existing goal")
	assert.Contains(t, res.Goals, "Interview a mentor")
}

func TestSuggestGoalRequiresProfile(t *testing.T) {
	factory := newMemoryFactory()
	svc := NewGoalService(factory, newOfflineAdvisor(), nil, silentLogger{})
	ctx := context.Background()

	bare := &entity.User{Username: "bare@example.com", Password: "pw"}
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserRepository().Create(ctx, bare))

	_, err := svc.SuggestGoal(ctx, bare.Id)
	assert.EqualError(t, err, "user profile incomplete")

	_, err = svc.SuggestGoal(ctx, uuid.New())
	assert.EqualError(t, err, "user not found")
}
