package jsearch

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	apiURL  = "https://jsearch.p.rapidapi.com"
	apiHost = "jsearch.p.rapidapi.com"
	// Single page keeps one search within one request; JSearch expands
	// num_pages server side.
	defaultNumPages = "1"
)

type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	apiKey     string
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
	APIHost    string
}

func New(ctx context.Context, logger *zap.Logger, apiKey string) *Client {
	return &Client{
		ctx:    ctx,
		apiKey: apiKey,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:  logger,
		APIHost: apiHost,
	}
}

// Search fetches one page of postings for the given parameters. Every call
// re-fetches; there is no caching and no retry.
func (c *Client) Search(params *SearchParams) (*Postings, error) {
	return c.search(params)
}
