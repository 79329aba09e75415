package unitofwork

import (
	"context"

	"emerge-career-be/internal/repository/contract"
)

// UnitOfWork bundles the per-request repository set. Begin/Commit/Rollback
// are available for callers that need transactional writes; most handlers in
// this system issue independent writes and never open a transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	GoalRepository() contract.GoalRepository
	ActivityRepository() contract.ActivityRepository
	ChatMessageRepository() contract.ChatMessageRepository
	RecommendationRepository() contract.RecommendationRepository
}

type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
