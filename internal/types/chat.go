package types

import "encoding/json"

// ChatTranscript is a saved chat session. Messages are kept opaque; the
// frontend owns their shape. The archive key is chats/{user_id}_{timestamp}.json.
type ChatTranscript struct {
	UserID    string            `json:"user_id"`
	Timestamp string            `json:"timestamp"`
	Messages  []json.RawMessage `json:"messages"`
}

// ChatID returns the composite identifier used to address the archived blob
func (t ChatTranscript) ChatID() string {
	return t.UserID + "_" + t.Timestamp
}
