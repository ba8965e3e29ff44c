package advice

import (
	"context"
	"log"
	"strings"

	"github.com/linyuchieh/line-psy-bridge/internal/ai"
)

// Generator turns extracted content into a reply string. It holds no
// per-call state: same input against a deterministic client, same reply.
type Generator struct {
	ai ai.AI
}

func NewGenerator(aiClient ai.AI) *Generator {
	return &Generator{ai: aiClient}
}

// The model is told not to emit markup, but it leaks through often enough
// that the response gets a second pass here. Longer tokens first so "###"
// is not half-eaten by "##".
var markupStripper = strings.NewReplacer(
	"###", "",
	"**", "",
	"##", "",
	"---", "",
)

// Analyze runs one generation and maps every outcome to a user-facing
// string. Nothing here returns an error: the reply channel is the only
// feedback path, so every failure becomes a canned reply.
func (g *Generator) Analyze(ctx context.Context, input ai.Input) string {
	res := g.ai.Generate(ctx, AnalysisPrompt, input)

	switch res.State {
	case ai.StateBlocked:
		return ReplySensitive
	case ai.StateEmpty:
		return ReplyEmpty
	case ai.StateError:
		log.Printf("[advice] generation failed: kind=%d err=%v", res.Kind, res.Err)
		switch res.Kind {
		case ai.KindInvalidArgument:
			return ReplyConfigError
		case ai.KindUnauthenticated:
			return ReplyAuthError
		case ai.KindRateLimited:
			return ReplyBusy
		default:
			return ReplyUnknownError
		}
	}

	return markupStripper.Replace(res.Text)
}
