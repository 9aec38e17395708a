// Package session holds the append-only conversation log. Messages are
// immutable once appended; sessions are created lazily and live for the
// process lifetime only.
package session

import (
	"time"

	"github.com/google/uuid"

	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
)

type MessageType string

const (
	MessageUser       MessageType = "user"
	MessageAssistant  MessageType = "assistant"
	MessageToolCall   MessageType = "tool-call"
	MessageToolResult MessageType = "tool-result"
)

// Message is one entry in a session log. Tool, when set, references a
// catalog tool id; Context carries opaque display metadata for the UI.
type Message struct {
	ID        string           `json:"id"`
	Type      MessageType      `json:"type"`
	Content   string           `json:"content"`
	Tool      contractx.ToolID `json:"tool,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Context   map[string]any   `json:"context,omitempty"`
}

func NewMessage(msgType MessageType, content string, now time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Type:      msgType,
		Content:   content,
		Timestamp: now.UTC(),
	}
}

// Session is one conversation: an ordered, insertion-order message log.
type Session struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
}
