package sources

import (
	"context"
	"strings"
	"time"
)

// Source yields the raw bytes of one response document. Name is the
// identifier reported as the response's filename option.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return e.Source + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func NewSourceError(source string, err error) *SourceError {
	return &SourceError{
		Source: source,
		Err:    err,
	}
}

// Resolve picks an HTTP source for http(s) URLs and a file source otherwise.
func Resolve(name string, httpTimeout time.Duration) Source {
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPSource(name, httpTimeout)
	}
	return NewFileSource(name)
}
