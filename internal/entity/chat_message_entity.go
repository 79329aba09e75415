package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

type ChatMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Message   string
	Sender    string
	Timestamp time.Time
}
