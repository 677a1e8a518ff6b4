package cryptotrack

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const newsPayload = `{
  "Type": 100,
  "Message": "News list successfully returned",
  "Data": [
    {"id": "1", "title": "Bitcoin breaks out", "url": "https://example.com/1", "body": "Up only.", "source_info": {"name": "CoinDesk"}},
    {"id": "2", "title": "", "url": "https://example.com/skip", "body": "untitled", "source_info": {"name": "Nobody"}},
    {"id": "3", "title": "ETH upgrade shipped", "url": "https://example.com/3", "body": "Finally.", "source_info": {"name": "The Block"}},
    {"id": "4", "title": "Altcoin season", "url": "https://example.com/4", "body": "Maybe.", "source_info": {"name": "CoinDesk"}}
  ]
}`

func TestLatestNews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(newsPayload))
	}))
	defer srv.Close()

	items, err := LatestNews(context.Background(), srv.URL, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	// untitled entries are skipped, not counted against the limit.
	if items[0].Title != "Bitcoin breaks out" || items[1].Title != "ETH upgrade shipped" {
		t.Errorf("items = %+v", items)
	}
	if items[0].Source != "CoinDesk" {
		t.Errorf("Source = %q, want CoinDesk", items[0].Source)
	}
}

func TestLatestNewsNoLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(newsPayload))
	}))
	defer srv.Close()

	items, err := LatestNews(context.Background(), srv.URL, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Errorf("len = %d, want all 3 titled items", len(items))
	}
}

func TestLatestNewsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := LatestNews(context.Background(), srv.URL, 5)
	if !errors.Is(err, ErrFetch) {
		t.Errorf("err = %v, want ErrFetch", err)
	}
}

func TestLatestNewsMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Message": "ok"}`))
	}))
	defer srv.Close()

	_, err := LatestNews(context.Background(), srv.URL, 5)
	if !errors.Is(err, ErrFetch) {
		t.Errorf("err = %v, want ErrFetch", err)
	}
}
