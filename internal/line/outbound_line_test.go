package line

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testOutbound(apiURL, dataURL string) *LineOutbound {
	return &LineOutbound{
		apiBase:  apiURL,
		dataBase: dataURL,
		token:    "test-token",
		client:   &http.Client{Timeout: 2 * time.Second},
	}
}

func TestReply_RequestShape(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		json.Unmarshal(b, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testOutbound(srv.URL, srv.URL)
	if err := c.Reply(context.Background(), "rt-9", "你好"); err != nil {
		t.Fatalf("reply: %v", err)
	}

	if gotPath != "/v2/bot/message/reply" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
	if gotBody["replyToken"] != "rt-9" {
		t.Errorf("unexpected replyToken: %v", gotBody["replyToken"])
	}
	msgs, ok := gotBody["messages"].([]any)
	if !ok || len(msgs) != 1 {
		t.Fatalf("unexpected messages: %v", gotBody["messages"])
	}
	msg := msgs[0].(map[string]any)
	if msg["type"] != "text" || msg["text"] != "你好" {
		t.Errorf("unexpected message: %v", msg)
	}
}

func TestReply_APIErrorCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid reply token"}`))
	}))
	defer srv.Close()

	c := testOutbound(srv.URL, srv.URL)
	err := c.Reply(context.Background(), "stale", "text")
	if err == nil {
		t.Fatal("expected error on 400")
	}
}

func TestFetchContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/bot/message/content-7/content" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	}))
	defer srv.Close()

	c := testOutbound(srv.URL, srv.URL)
	data, err := c.FetchContent(context.Background(), "content-7")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(data) != 4 || data[0] != 0x89 {
		t.Errorf("unexpected bytes: %v", data)
	}
}

func TestFetchContent_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := testOutbound(srv.URL, srv.URL)
	if _, err := c.FetchContent(context.Background(), "gone"); err == nil {
		t.Fatal("expected error on 404")
	}
}
