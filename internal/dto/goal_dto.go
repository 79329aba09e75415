package dto

import "github.com/google/uuid"

type CreateGoalRequest struct {
	UserId    uuid.UUID `json:"user_id" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Completed bool      `json:"completed"`
	Progress  int       `json:"progress" validate:"min=0,max=100"`
}

// UpdateGoalRequest carries only the fields the client wants to change.
// Setting Completed to true triggers the progress/level/activity side
// effects and removes the goal.
type UpdateGoalRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Progress  *int    `json:"progress" validate:"omitempty,min=0,max=100"`
}

type GoalResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Progress  int       `json:"progress"`
}

type SuggestGoalsResponse struct {
	Goals []string `json:"goals"`
}
