package sources

import (
	"context"
	"fmt"
	"time"

	resty "gopkg.in/resty.v1"
)

type HTTPSource struct {
	url    string
	client *resty.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/xml, text/xml")
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) Name() string {
	return s.url
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, NewSourceError(s.url, err)
	}
	if resp.IsError() {
		return nil, NewSourceError(s.url, fmt.Errorf("unexpected status %s", resp.Status()))
	}
	return resp.Body(), nil
}
