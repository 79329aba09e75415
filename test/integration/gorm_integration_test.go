package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/repository/unitofwork"
	"emerge-career-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.GoalRepository())
	assert.NotNil(t, uow.ActivityRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.RecommendationRepository())

	// Basic ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Roundtrip", func(t *testing.T) {
		ctx := context.Background()
		username := "integration-" + uuid.New().String() + "@example.com"

		user := &entity.User{
			Username:      username,
			Password:      "password123",
			Subjects:      []string{"Biology"},
			Interests:     "genetics",
			ThinkingStyle: string(entity.ThinkingStylePlan),
			Level:         1,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		found, err := uow.UserRepository().GetByUsername(ctx, username)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.Id, found.Id)
		assert.True(t, found.HasProfile())
	})

	t.Run("Check Transactional Goal Completion", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Username: "integration-tx-" + uuid.New().String() + "@example.com",
			Password: "password123",
			Level:    1,
			Progress: 40,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))
		defer txUow.Rollback()

		goal := &entity.Goal{
			UserId: user.Id,
			Title:  "Integration goal",
		}
		require.NoError(t, txUow.GoalRepository().Create(ctx, goal))

		updated, err := txUow.UserRepository().IncrementProgress(ctx, user.Id, 10)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 50, updated.Progress)

		require.NoError(t, txUow.ActivityRepository().Create(ctx, &entity.Activity{
			UserId: user.Id,
			Type:   entity.ActivityTypeBadge,
			Title:  "Completed goal: Integration goal",
		}))

		deleted, err := txUow.GoalRepository().Delete(ctx, goal.Id)
		require.NoError(t, err)
		assert.True(t, deleted)

		require.NoError(t, txUow.Commit())
		t.Log("Successfully completed a goal inside a transaction")
	})
}
