package line

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// LineOutbound talks to the LINE Messaging API. Replies go to the api host;
// message content (media bytes) is served from the separate api-data host.
type LineOutbound struct {
	apiBase  string
	dataBase string
	token    string // channel access token
	client   *http.Client
}

func NewLineOutbound(channelToken string) *LineOutbound {
	return &LineOutbound{
		apiBase:  "https://api.line.me",
		dataBase: "https://api-data.line.me",
		token:    channelToken,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Reply delivers text into the originating conversation. The reply token is
// single-use; there is no second chance if this fails.
func (c *LineOutbound) Reply(ctx context.Context, replyToken string, text string) error {
	return c.post(ctx, "/v2/bot/message/reply", map[string]any{
		"replyToken": replyToken,
		"messages": []map[string]any{
			{"type": "text", "text": text},
		},
	})
}

// FetchContent retrieves the raw bytes of an attached media message.
func (c *LineOutbound) FetchContent(ctx context.Context, contentID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.dataBase+"/v2/bot/message/"+contentID+"/content",
		nil,
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, errors.New(
			"line content api error: " +
				resp.Status +
				" body=" + string(respBody),
		)
	}

	return io.ReadAll(resp.Body)
}

func (c *LineOutbound) post(ctx context.Context, path string, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.apiBase+path,
		bytes.NewReader(b),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return errors.New(
			"line api error: " +
				resp.Status +
				" body=" + string(respBody),
		)
	}

	return nil
}
