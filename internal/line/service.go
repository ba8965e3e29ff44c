package line

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"

	"github.com/linyuchieh/line-psy-bridge/internal/advice"
	"github.com/linyuchieh/line-psy-bridge/internal/ai"
)

type service struct {
	gen      *advice.Generator
	outbound Outbound
}

func NewService(gen *advice.Generator, outbound Outbound) Service {
	return &service{
		gen:      gen,
		outbound: outbound,
	}
}

// HandleEvent runs one event through extraction → generation → reply.
// Every failure past this point turns into a canned reply or a log line;
// the webhook response is already decided.
func (s *service) HandleEvent(ctx context.Context, ev Event) {
	switch e := ev.(type) {
	case TextEvent:
		log.Printf("[svc] text event, len=%d", len(e.Text))
		s.reply(ctx, e.ReplyToken, s.gen.Analyze(ctx, ai.Input{Text: e.Text}))

	case ImageEvent:
		log.Printf("[svc] image event, contentId=%s", e.ContentID)
		input, ok := s.extractImage(ctx, e.ContentID)
		if !ok {
			s.reply(ctx, e.ReplyToken, advice.ReplyCannotReadImage)
			return
		}
		s.reply(ctx, e.ReplyToken, s.gen.Analyze(ctx, input))

	default:
		log.Printf("[svc] unhandled event type %T", ev)
	}
}

// extractImage fetches and validates the attached image. Bytes that do not
// decode never reach the generator.
func (s *service) extractImage(ctx context.Context, contentID string) (ai.Input, bool) {
	data, err := s.outbound.FetchContent(ctx, contentID)
	if err != nil {
		log.Printf("[svc] content fetch failed: %v", err)
		return ai.Input{}, false
	}

	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("[svc] image decode failed: %v", err)
		return ai.Input{}, false
	}

	return ai.Input{Image: data, ImageMIME: "image/" + format}, true
}

func (s *service) reply(ctx context.Context, replyToken, text string) {
	if err := s.outbound.Reply(ctx, replyToken, text); err != nil {
		// Terminal: the reply token is the only channel back to the user.
		log.Printf("[svc] reply delivery failed: %v", err)
	}
}
