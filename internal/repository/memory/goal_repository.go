package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/repository/contract"

	"github.com/google/uuid"
)

type GoalRepository struct {
	mu    sync.RWMutex
	goals map[uuid.UUID]*entity.Goal
}

func NewGoalRepository() contract.GoalRepository {
	return &GoalRepository{
		goals: make(map[uuid.UUID]*entity.Goal),
	}
}

func (r *GoalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if goal.Id == uuid.Nil {
		goal.Id = uuid.New()
	}
	now := time.Now()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	clone := *goal
	r.goals[goal.Id] = &clone
	return nil
}

func (r *GoalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	goal.UpdatedAt = time.Now()
	clone := *goal
	r.goals[goal.Id] = &clone
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.goals[id]; !ok {
		return false, nil
	}
	delete(r.goals, id)
	return true, nil
}

func (r *GoalRepository) GetById(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.goals[id]
	if !ok {
		return nil, nil
	}
	clone := *g
	return &clone, nil
}

func (r *GoalRepository) GetByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var goals []*entity.Goal
	for _, g := range r.goals {
		if g.UserId == userId {
			clone := *g
			goals = append(goals, &clone)
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
	return goals, nil
}
