package parser

import (
	"bytes"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/lysyi3m/coronactl/app/outbreak"
)

// noiseMarker matches the bracketed citation and video markers the source
// appends to announcements, e.g. "[source]" or "[ video ]".
var noiseMarker = regexp.MustCompile(`\[\s*(?i:source|video)\s*\]`)

// NewsParser extracts the announcement list published for a given calendar
// day from the statistics page.
type NewsParser struct{}

func NewNewsParser() *NewsParser {
	return &NewsParser{}
}

// Run returns the announcements for the given UTC day, in publication
// order. A page without a fragment for that day yields an empty list, not
// an error: the source may simply have published nothing yet.
func (p *NewsParser) Run(data []byte, day time.Time) ([]outbreak.NewsItem, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page HTML: %w", err)
	}

	fragment := doc.Find("#newsdate" + day.UTC().Format("2006-01-02"))
	if fragment.Length() == 0 {
		slog.Debug("No news fragment for today")
		return nil, nil
	}

	var items []outbreak.NewsItem
	fragment.Find("div.news_post").Each(func(_ int, post *goquery.Selection) {
		text := cleanNewsText(post.Text())
		if text == "" {
			return
		}
		items = append(items, outbreak.NewsItem{
			Text:  text,
			Alert: isAlertPost(post),
		})
	})

	slog.Debug("Extracted news", "items", len(items))
	return items, nil
}

// cleanNewsText strips the known noise from an announcement: citation and
// video markers, runs of whitespace, and the stray space the source leaves
// before sentence periods. The alert prefix is presentation and is not
// added here.
func cleanNewsText(raw string) string {
	s := noiseMarker.ReplaceAllString(raw, "")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, " .", ".")
	return s
}

func isAlertPost(post *goquery.Selection) bool {
	if strings.Contains(post.AttrOr("class", ""), "alert") {
		return true
	}
	return post.Find(".alert_news").Length() > 0
}
