package domain

import "time"

// Chat is a conversation between a tool's owner and a prospective consumer,
// scoped to one tool. At most one chat exists per unordered participant pair
// and tool.
type Chat struct {
	ID         int32     `json:"id"`
	OwnerID    int32     `json:"owner_id"`
	ConsumerID int32     `json:"consumer_id"`
	ToolID     int32     `json:"tool_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// HasParticipant reports whether the user takes part in the chat.
func (c *Chat) HasParticipant(userID int32) bool {
	return c.OwnerID == userID || c.ConsumerID == userID
}

// Message belongs to a chat. A nil SenderID marks a system-generated note.
type Message struct {
	ID        int32     `json:"id"`
	ChatID    int32     `json:"chat_id"`
	SenderID  *int32    `json:"sender_id,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
