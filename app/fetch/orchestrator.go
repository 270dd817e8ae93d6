package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lysyi3m/coronactl/app/cache"
	"github.com/lysyi3m/coronactl/app/outbreak"
	"github.com/lysyi3m/coronactl/app/parser"
)

// Options configures one fetch attempt.
type Options struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
	// Offline skips the network entirely and serves from cache.
	Offline bool
}

// Result is what the orchestrator hands back on success.
type Result struct {
	Snapshot *outbreak.Snapshot
	// Stale is true when the snapshot came from the cache rather than a
	// fresh fetch; Snapshot.FetchedAt carries the original timestamp.
	Stale bool
}

// Orchestrator drives one invocation's fetch lifecycle: a single online
// attempt with a cache fallback, or cache-only in offline mode. The caller
// always ends with a usable snapshot or a terminal error; there are no
// retries.
type Orchestrator struct {
	client      *http.Client
	store       *cache.Store
	tableParser *parser.TableParser
	newsParser  *parser.NewsParser
	opts        Options
	now         func() time.Time
}

func NewOrchestrator(store *cache.Store, opts Options) *Orchestrator {
	return &Orchestrator{
		client:      &http.Client{Timeout: opts.Timeout},
		store:       store,
		tableParser: parser.NewTableParser(),
		newsParser:  parser.NewNewsParser(),
		opts:        opts,
		now:         time.Now,
	}
}

// Run performs the fetch. A transport-level failure falls back to the
// cache; a parse or assembly failure is fatal and caches nothing, since it
// means the source format changed incompatibly.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	if o.opts.Offline {
		return o.loadCached()
	}

	data, err := o.fetchPage(ctx)
	if err != nil {
		slog.Debug("Network fetch failed, falling back to cache", "error", err)
		result, cacheErr := o.loadCached()
		if cacheErr != nil {
			return nil, fmt.Errorf("online fetch failed (%v), and %w", err, cacheErr)
		}
		return result, nil
	}

	snapshot, err := o.buildSnapshot(data)
	if err != nil {
		return nil, err
	}

	if err := o.store.Save(snapshot); err != nil {
		return nil, fmt.Errorf("failed to cache snapshot: %w", err)
	}

	return &Result{Snapshot: snapshot}, nil
}

// fetchPage performs the single GET. Only transport errors are failures
// here: a response with a non-2xx status is still handed to the parsers,
// which surface structural problems on their own.
func (o *Orchestrator) fetchPage(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.opts.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", o.opts.UserAgent)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", o.opts.URL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	slog.Debug("Fetched statistics page", "status", resp.StatusCode, "bytes", len(data))
	return data, nil
}

func (o *Orchestrator) buildSnapshot(data []byte) (*outbreak.Snapshot, error) {
	records, err := o.tableParser.Run(data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract statistics table: %w", err)
	}

	table, err := outbreak.NewAssembler().Run(records)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble outbreak table: %w", err)
	}

	news, err := o.newsParser.Run(data, o.now())
	if err != nil {
		return nil, fmt.Errorf("failed to extract news: %w", err)
	}

	return &outbreak.Snapshot{
		FetchedAt: o.now().Format(outbreak.TimeLayout),
		News:      news,
		Table:     table,
	}, nil
}

func (o *Orchestrator) loadCached() (*Result, error) {
	snapshot, err := o.store.Load()
	if err != nil {
		return nil, fmt.Errorf("no usable cached data: %w", err)
	}
	return &Result{Snapshot: snapshot, Stale: true}, nil
}
