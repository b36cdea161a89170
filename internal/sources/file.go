package sources

import (
	"context"
	"os"
)

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return s.path
}

func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewSourceError(s.path, err)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, NewSourceError(s.path, err)
	}
	return data, nil
}

// BytesSource serves an in-memory document, e.g. an uploaded request body.
type BytesSource struct {
	name string
	data []byte
}

func NewBytesSource(name string, data []byte) *BytesSource {
	return &BytesSource{name: name, data: data}
}

func (s *BytesSource) Name() string {
	return s.name
}

func (s *BytesSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewSourceError(s.name, err)
	}
	return s.data, nil
}
