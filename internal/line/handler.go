package line

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
)

type Handler struct {
	svc    Service
	secret string
}

func NewHandler(svc Service, channelSecret string) *Handler {
	return &Handler{svc: svc, secret: channelSecret}
}

// HandleCallback — the webhook entry point. Signature mismatch is the only
// failure the platform gets to see; once the body parses, the answer is
// 200 "OK" no matter what the pipeline does with the events.
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB max
	if err != nil {
		http.Error(w, "cannot read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if !verifySignature(body, h.secret, r.Header.Get("X-Line-Signature")) {
		log.Println("[line] invalid signature")
		http.Error(w, "invalid signature", http.StatusBadRequest)
		return
	}

	events, err := parseEvents(body)
	if err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	for _, ev := range events {
		h.svc.HandleEvent(r.Context(), ev)
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// parseEvents extracts the events this bridge reacts to. Non-message
// events (follow, unfollow, ...) and message types other than text/image
// are dropped silently.
func parseEvents(body []byte) ([]Event, error) {
	var payload struct {
		Events []struct {
			Type       string `json:"type"`
			ReplyToken string `json:"replyToken"`
			Message    struct {
				Type string `json:"type"`
				ID   string `json:"id"`
				Text string `json:"text"`
			} `json:"message"`
		} `json:"events"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	var out []Event
	for _, e := range payload.Events {
		if e.Type != "message" {
			continue
		}
		switch e.Message.Type {
		case "text":
			out = append(out, TextEvent{ReplyToken: e.ReplyToken, Text: e.Message.Text})
		case "image":
			out = append(out, ImageEvent{ReplyToken: e.ReplyToken, ContentID: e.Message.ID})
		}
	}
	return out, nil
}
