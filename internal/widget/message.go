package widget

import "time"

// Sender identifies who a transcript entry belongs to.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderBot    Sender = "bot"
	SenderError  Sender = "error"
	SenderTyping Sender = "typing"
)

// Message is one transcript entry. IDs are assigned from a per-widget
// counter; wall-clock time is informational only and never used for
// uniqueness or ordering.
type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
