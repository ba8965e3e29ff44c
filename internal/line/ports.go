package line

import "context"

// Event — one user action delivered through the webhook. The concrete types
// below are the full set; dispatch is a type switch over them.
type Event interface {
	Token() string
}

// TextEvent — user sent a text message.
type TextEvent struct {
	ReplyToken string
	Text       string
}

func (e TextEvent) Token() string { return e.ReplyToken }

// ImageEvent — user sent an image; ContentID retrieves the bytes from the
// platform's data endpoint.
type ImageEvent struct {
	ReplyToken string
	ContentID  string
}

func (e ImageEvent) Token() string { return e.ReplyToken }

// Outbound — the LINE Messaging API, as seen by the pipeline.
type Outbound interface {
	Reply(ctx context.Context, replyToken string, text string) error
	FetchContent(ctx context.Context, contentID string) ([]byte, error)
}

// Service — per-event orchestration. Errors never propagate past it: the
// reply channel is the only feedback path to the user.
type Service interface {
	HandleEvent(ctx context.Context, ev Event)
}
