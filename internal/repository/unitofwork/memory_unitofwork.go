package unitofwork

import (
	"context"

	"emerge-career-be/internal/repository/contract"
	"emerge-career-be/internal/repository/memory"
)

// MemoryRepositoryFactory hands out units of work that all share one
// in-memory store, so state written in one request is visible in the next.
// Used by tests and by local runs without a database DSN.
type MemoryRepositoryFactory struct {
	users           contract.UserRepository
	goals           contract.GoalRepository
	activities      contract.ActivityRepository
	chatMessages    contract.ChatMessageRepository
	recommendations contract.RecommendationRepository
}

func NewMemoryRepositoryFactory() RepositoryFactory {
	return &MemoryRepositoryFactory{
		users:           memory.NewUserRepository(),
		goals:           memory.NewGoalRepository(),
		activities:      memory.NewActivityRepository(),
		chatMessages:    memory.NewChatMessageRepository(),
		recommendations: memory.NewRecommendationRepository(),
	}
}

func (f *MemoryRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &memoryUnitOfWork{factory: f}
}

type memoryUnitOfWork struct {
	factory *MemoryRepositoryFactory
}

// No transactional backing; Begin/Commit/Rollback are accepted and ignored.
func (u *memoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memoryUnitOfWork) Commit() error                   { return nil }
func (u *memoryUnitOfWork) Rollback() error                 { return nil }

func (u *memoryUnitOfWork) UserRepository() contract.UserRepository {
	return u.factory.users
}

func (u *memoryUnitOfWork) GoalRepository() contract.GoalRepository {
	return u.factory.goals
}

func (u *memoryUnitOfWork) ActivityRepository() contract.ActivityRepository {
	return u.factory.activities
}

func (u *memoryUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return u.factory.chatMessages
}

func (u *memoryUnitOfWork) RecommendationRepository() contract.RecommendationRepository {
	return u.factory.recommendations
}
