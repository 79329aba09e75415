package memory

import (
	"context"
	"testing"
	"time"

	"emerge-career-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryMissReturnsNilNil(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user, err := repo.GetById(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.GetByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositoryCreateAssignsIdAndTimestamps(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{Username: "sam", Password: "pw"}
	require.NoError(t, repo.Create(ctx, user))

	assert.NotEqual(t, uuid.Nil, user.Id)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, 1, user.Level, "level starts at one")

	stored, err := repo.GetById(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, "sam", stored.Username)
}

func TestUserRepositoryClonesOnRead(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{Username: "sam", Password: "pw"}
	require.NoError(t, repo.Create(ctx, user))

	read, err := repo.GetById(ctx, user.Id)
	require.NoError(t, err)
	read.Username = "mutated"

	again, err := repo.GetById(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, "sam", again.Username, "mutating a read result must not touch the store")
}

func TestUserRepositoryUpdateRefreshesUpdatedAt(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{Username: "sam", Password: "pw"}
	require.NoError(t, repo.Create(ctx, user))
	created := user.UpdatedAt

	time.Sleep(time.Millisecond)
	user.Interests = "robotics"
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.GetById(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, "robotics", stored.Interests)
	assert.True(t, stored.UpdatedAt.After(created))
}

func TestUserRepositoryIncrementProgress(t *testing.T) {
	tests := []struct {
		name         string
		progress     int
		level        int
		wantProgress int
		wantLevel    int
	}{
		{name: "plain increment", progress: 40, level: 1, wantProgress: 50, wantLevel: 1},
		{name: "lands exactly on 100", progress: 90, level: 1, wantProgress: 0, wantLevel: 2},
		{name: "crosses 100", progress: 95, level: 3, wantProgress: 0, wantLevel: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewUserRepository()
			ctx := context.Background()

			user := &entity.User{Username: "sam", Password: "pw", Progress: tt.progress, Level: tt.level}
			require.NoError(t, repo.Create(ctx, user))

			updated, err := repo.IncrementProgress(ctx, user.Id, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.wantProgress, updated.Progress)
			assert.Equal(t, tt.wantLevel, updated.Level)
		})
	}
}

func TestGoalRepositoryScopesToUser(t *testing.T) {
	repo := NewGoalRepository()
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()
	require.NoError(t, repo.Create(ctx, &entity.Goal{UserId: alice, Title: "a1"}))
	time.Sleep(time.Millisecond)
	require.NoError(t, repo.Create(ctx, &entity.Goal{UserId: bob, Title: "b1"}))
	time.Sleep(time.Millisecond)
	require.NoError(t, repo.Create(ctx, &entity.Goal{UserId: alice, Title: "a2"}))

	goals, err := repo.GetByUserId(ctx, alice)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "a1", goals[0].Title, "oldest first")
	assert.Equal(t, "a2", goals[1].Title)
}

func TestGoalRepositoryDelete(t *testing.T) {
	repo := NewGoalRepository()
	ctx := context.Background()

	goal := &entity.Goal{UserId: uuid.New(), Title: "g"}
	require.NoError(t, repo.Create(ctx, goal))

	deleted, err := repo.Delete(ctx, goal.Id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, goal.Id)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete reports a miss")
}

func TestActivityRepositoryNewestFirst(t *testing.T) {
	repo := NewActivityRepository()
	ctx := context.Background()
	userId := uuid.New()

	base := time.Now()
	for i, title := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, repo.Create(ctx, &entity.Activity{
			UserId: userId,
			Type:   entity.ActivityTypeLesson,
			Title:  title,
			Time:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	activities, err := repo.GetByUserId(ctx, userId)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, "newest", activities[0].Title)
	assert.Equal(t, "oldest", activities[2].Title)
}

func TestChatMessageRepositoryAscendingOrder(t *testing.T) {
	repo := NewChatMessageRepository()
	ctx := context.Background()
	userId := uuid.New()

	base := time.Now()
	for i, text := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &entity.ChatMessage{
			UserId:    userId,
			Message:   text,
			Sender:    entity.ChatSenderUser,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}))
	}

	messages, err := repo.GetByUserId(ctx, userId)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Message)
	assert.Equal(t, "third", messages[2].Message)
}

func TestRecommendationRepositoryTypeFilter(t *testing.T) {
	repo := NewRecommendationRepository()
	ctx := context.Background()
	userId := uuid.New()

	base := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.Recommendation{
		UserId: userId, Type: entity.RecommendationTypeVideo, Title: "v1", CreatedAt: base,
	}))
	require.NoError(t, repo.Create(ctx, &entity.Recommendation{
		UserId: userId, Type: entity.RecommendationTypeCourse, Title: "c1", CreatedAt: base.Add(time.Minute),
	}))
	require.NoError(t, repo.Create(ctx, &entity.Recommendation{
		UserId: userId, Type: entity.RecommendationTypeCourse, Title: "c2", CreatedAt: base.Add(2 * time.Minute),
	}))

	courses, err := repo.GetByUserId(ctx, userId, entity.RecommendationTypeCourse)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "c2", courses[0].Title, "newest first")

	all, err := repo.GetByUserId(ctx, userId, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
