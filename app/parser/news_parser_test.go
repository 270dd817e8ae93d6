package parser

import (
	"testing"
	"time"
)

const newsHTML = `<html><body>
<div id="newsdate2020-03-28">
  <div class="news_post alert">
    New country reports its  first case . <a href="#">[source]</a>
  </div>
  <div class="news_post">
    1,024 new cases reported today. [video] <a href="#">[source]</a>
  </div>
</div>
</body></html>`

func TestNewsParserRun(t *testing.T) {
	day := time.Date(2020, 3, 28, 12, 0, 0, 0, time.UTC)
	items, err := NewNewsParser().Run([]byte(newsHTML), day)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got: %d", len(items))
	}

	if !items[0].Alert {
		t.Error("Expected first item to be flagged as alert")
	}
	if items[0].Text != "New country reports its first case." {
		t.Errorf("Expected cleaned alert text, got: %q", items[0].Text)
	}

	if items[1].Alert {
		t.Error("Expected second item not to be flagged as alert")
	}
	if items[1].Text != "1,024 new cases reported today." {
		t.Errorf("Expected cleaned text, got: %q", items[1].Text)
	}
}

func TestNewsParserOtherDay(t *testing.T) {
	day := time.Date(2020, 3, 29, 0, 30, 0, 0, time.UTC)
	items, err := NewNewsParser().Run([]byte(newsHTML), day)
	if err != nil {
		t.Fatalf("Expected no error when today's fragment is missing, got: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no items, got: %d", len(items))
	}
}

func TestCleanNewsText(t *testing.T) {
	tests := map[string]string{
		"plain text":                        "plain text",
		"double  spaces   collapse":         "double spaces collapse",
		"trailing marker [source]":          "trailing marker",
		"video marker [ video ] mid-text .": "video marker mid-text.",
	}
	for raw, want := range tests {
		if got := cleanNewsText(raw); got != want {
			t.Errorf("Expected %q for %q, got: %q", want, raw, got)
		}
	}
}
