package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lysyi3m/coronactl/app/cache"
	"github.com/lysyi3m/coronactl/app/cfg"
	"github.com/lysyi3m/coronactl/app/fetch"
	"github.com/lysyi3m/coronactl/app/outbreak"
	"github.com/lysyi3m/coronactl/app/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	appCfg, err := cfg.Load()
	if err != nil {
		if errors.Is(err, cfg.ErrUsage) {
			// message already on stderr
			return 2
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	if appCfg == nil {
		// help or version output already handled
		return 0
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	store, err := cache.NewStore(appCfg.CacheDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	orchestrator := fetch.NewOrchestrator(store, fetch.Options{
		URL:       appCfg.URL,
		UserAgent: appCfg.UserAgent,
		Timeout:   time.Duration(appCfg.Timeout) * time.Second,
		Offline:   appCfg.Offline,
	})

	result, err := orchestrator.Run(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	if result.Stale {
		fmt.Fprintf(os.Stderr, "Showing cached data from %s.\n", result.Snapshot.FetchedAt)
	}

	renderer := render.NewRenderer(os.Stdout, !appCfg.NoColor)
	snapshot := result.Snapshot

	switch {
	case appCfg.News:
		showNews(renderer, snapshot, appCfg)
	case appCfg.TableView:
		showTable(renderer, snapshot, appCfg)
	default:
		rec := lookupEntity(snapshot.Table, appCfg.Country)
		if appCfg.FieldsSelected() {
			renderer.Fields(rec, render.Selection{
				Latest:    appCfg.Latest,
				Closed:    appCfg.Closed,
				Active:    appCfg.Active,
				Recovered: appCfg.Recovered,
				Dead:      appCfg.Dead,
				Serious:   appCfg.Serious,
			})
		} else {
			renderer.Overview(rec)
		}
	}

	return 0
}

func showNews(renderer *render.Renderer, snapshot *outbreak.Snapshot, appCfg *cfg.Cfg) {
	items := snapshot.News
	if appCfg.AlertsOnly {
		alerts := make([]outbreak.NewsItem, 0, len(items))
		for _, item := range items {
			if item.Alert {
				alerts = append(alerts, item)
			}
		}
		items = alerts
	}
	lo, hi := appCfg.Range.Slice(len(items))
	renderer.News(items[lo:hi])
}

func showTable(renderer *render.Renderer, snapshot *outbreak.Snapshot, appCfg *cfg.Cfg) {
	// SortField went through go-flags choice validation already
	field, err := outbreak.ParseSortField(appCfg.SortField)
	if err != nil {
		field = outbreak.SortCases
	}

	records := snapshot.Table.Sorted(outbreak.SortSpec{
		Field:      field,
		Descending: !appCfg.Ascending,
	})
	lo, hi := appCfg.Range.Slice(len(records))
	renderer.Table(records[lo:hi])
}

// lookupEntity resolves the requested country, degrading to the global
// total with a warning instead of failing when the name is unknown.
func lookupEntity(table *outbreak.Table, country string) outbreak.Record {
	if country == "" {
		return table.Total()
	}
	rec, ok := table.Lookup(country)
	if !ok {
		fmt.Fprintf(os.Stderr, "Country %q not found, showing global stats instead.\n", country)
		return table.Total()
	}
	return rec
}
