package aggregator

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dharmasatrya/fareparse/internal/cache"
	"github.com/dharmasatrya/fareparse/internal/models"
	"github.com/dharmasatrya/fareparse/internal/parser"
	"github.com/dharmasatrya/fareparse/internal/sources"
)

type Config struct {
	Timeout time.Duration
	Parser  parser.Options
}

// Loader turns sources into parsed responses. Loads of the same key run
// at most once at a time; concurrent callers share the result.
type Loader struct {
	cache  cache.Cache
	config Config
	group  singleflight.Group
}

func NewLoader(c cache.Cache, config Config) *Loader {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	return &Loader{
		cache:  c,
		config: config,
	}
}

func (l *Loader) Load(ctx context.Context, src sources.Source) (*models.Response, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	key := cache.Key(src.Name(), data, l.config.Parser.Strict)
	if resp, found := l.cache.Get(ctx, key); found {
		log.Printf("Cache hit for %s", src.Name())
		return resp, nil
	}

	v, err, shared := l.group.Do(key, func() (interface{}, error) {
		resp, err := parser.Parse(src.Name(), data, l.config.Parser)
		if err != nil {
			return nil, err
		}
		if err := l.cache.Set(ctx, key, resp); err != nil {
			log.Printf("Failed to cache %s: %v", src.Name(), err)
		}
		return resp, nil
	})
	if err != nil {
		return nil, sources.NewSourceError(src.Name(), err)
	}
	if shared {
		log.Printf("Shared parse result for %s", src.Name())
	}

	return v.(*models.Response), nil
}

// LoadAll loads every source concurrently under the configured timeout.
// Results keep the order of srcs; the first failure fails the call.
func (l *Loader) LoadAll(ctx context.Context, srcs ...sources.Source) ([]*models.Response, error) {
	loadCtx := ctx
	if l.config.Timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, l.config.Timeout)
		defer cancel()
	}

	type loadResult struct {
		index int
		resp  *models.Response
		err   error
	}

	resultCh := make(chan loadResult, len(srcs))
	var wg sync.WaitGroup

	for i, s := range srcs {
		wg.Add(1)
		go func(index int, src sources.Source) {
			defer wg.Done()
			resp, err := l.Load(loadCtx, src)
			resultCh <- loadResult{index: index, resp: resp, err: err}
		}(i, s)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	responses := make([]*models.Response, len(srcs))
	var firstErr error
	for lr := range resultCh {
		if lr.err != nil {
			log.Printf("Source %s failed: %v", srcs[lr.index].Name(), lr.err)
			if firstErr == nil {
				firstErr = lr.err
			}
			continue
		}
		responses[lr.index] = lr.resp
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return responses, nil
}
