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

type ActivityRepository struct {
	mu         sync.RWMutex
	activities []*entity.Activity
}

func NewActivityRepository() contract.ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if activity.Id == uuid.Nil {
		activity.Id = uuid.New()
	}
	if activity.Time.IsZero() {
		activity.Time = time.Now()
	}

	clone := *activity
	r.activities = append(r.activities, &clone)
	return nil
}

func (r *ActivityRepository) GetByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var activities []*entity.Activity
	for _, a := range r.activities {
		if a.UserId == userId {
			clone := *a
			activities = append(activities, &clone)
		}
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Time.After(activities[j].Time)
	})
	return activities, nil
}
