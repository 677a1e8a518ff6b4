package cryptotrack

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// NewsItem is one headline from the news provider.
type NewsItem struct {
	Title  string
	URL    string
	Body   string
	Source string
}

// DefaultNewsURL is the public, unauthenticated news endpoint.
const DefaultNewsURL = "https://min-api.cryptocompare.com/data/v2/news/?lang=EN"

/*
	{
	    "Type": 100,
	    "Message": "News list successfully returned",
	    "Data": [
	        {
	            "id": "7622329",
	            "title": "...",
	            "url": "https://...",
	            "body": "...",
	            "source_info": { "name": "CoinDesk" }
	        }
	    ]
	}
*/
func fetchNews(ctx context.Context, client *http.Client, addr string, limit int) ([]NewsItem, error) {
	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get("$.Data[:]", jobj)
	if err != nil {
		return nil, fmt.Errorf("%w: unexpected news payload: %v", ErrFetch, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected news payload", ErrFetch)
	}

	str := func(item any, path string) string {
		v, err := jsonpath.Get(path, item)
		if err != nil {
			return ""
		}
		s, _ := v.(string)
		return s
	}

	var items []NewsItem
	for _, jitem := range jlist {
		if limit > 0 && len(items) >= limit {
			break
		}
		item := NewsItem{
			Title:  str(jitem, "$.title"),
			URL:    str(jitem, "$.url"),
			Body:   str(jitem, "$.body"),
			Source: str(jitem, "$.source_info.name"),
		}
		if item.Title == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// LatestNews returns up to limit headlines from the news provider at addr
// (DefaultNewsURL for the live service).
func LatestNews(ctx context.Context, addr string, limit int) ([]NewsItem, error) {
	return fetchNews(ctx, NewHTTPClient(), addr, limit)
}
