package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// ErrUsage marks user-input errors (bad flags, malformed ranges). The
// message has already been written to stderr when it is returned.
var ErrUsage = errors.New("usage error")

const (
	defaultURL     = "https://www.worldometers.info/coronavirus/"
	defaultTimeout = 30 // seconds

	// The source serves a reduced page to unrecognized clients, so requests
	// identify as a desktop browser, same as the earlier revisions did.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/70.0.3538.77 Safari/537.36"
)

type rawCfg struct {
	Latest    bool `short:"l" long:"latest" description:"Today's new cases and deaths"`
	Closed    bool `short:"c" long:"closed" description:"Cases closed either by recovery or by death"`
	Active    bool `short:"a" long:"active" description:"Patients currently in treatment"`
	Recovered bool `short:"r" long:"recovered" description:"Recovered patients"`
	Dead      bool `short:"d" long:"dead" description:"Deaths, in total and today"`
	Serious   bool `short:"s" long:"serious" description:"Patients in serious or critical condition"`

	News       bool   `short:"n" long:"news" description:"Today's announcements"`
	AlertsOnly bool   `long:"alerts" description:"With --news, show only alert-flagged announcements"`
	TableView  bool   `short:"t" long:"table" description:"Full statistics table"`
	SortField  string `long:"sort" default:"cases" choice:"cases" choice:"new-cases" choice:"deaths" choice:"new-deaths" choice:"recovered" choice:"active" choice:"serious" choice:"cases-per-1m" choice:"deaths-per-1m" choice:"tests" choice:"tests-per-1m" description:"Sort field for --table"`
	Ascending  bool   `long:"asc" description:"Sort ascending (default: descending)"`
	Range      string `long:"range" description:"Half-open M:N slice applied to --table and --news"`

	Offline    bool   `short:"o" long:"offline" description:"Use cached data only, skip the network"`
	ConfigFile string `long:"config" env:"CORONACTL_CONFIG" description:"Path to a YAML config file"`
	URL        string `long:"url" env:"CORONACTL_URL" description:"Statistics page URL"`
	UserAgent  string `long:"user-agent" env:"CORONACTL_USER_AGENT" description:"User agent string for HTTP requests"`
	CacheDir   string `long:"cache-dir" env:"CORONACTL_CACHE_DIR" description:"Cache directory (default: per-user cache dir)"`
	Timeout    int    `long:"timeout" env:"CORONACTL_TIMEOUT" description:"HTTP timeout in seconds"`

	NoColor     bool `long:"no-color" description:"Disable ANSI colors"`
	Debug       bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
	ShowVersion bool `short:"V" long:"version" description:"Print version and exit"`

	Args struct {
		Country string `positional-arg-name:"country" description:"Country to show data of; global stats when omitted"`
	} `positional-args:"yes"`
}

// Load parses flags and environment, layers in the optional config file,
// and validates everything that can be checked before any network call.
// Returns (nil, nil) when help or version output already handled the
// invocation.
func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		// go-flags already printed the message
		return nil, ErrUsage
	}

	if raw.ShowVersion {
		fmt.Printf("coronactl %s\n", GetVersion())
		return nil, nil
	}

	file, err := loadFile(raw.ConfigFile)
	if err != nil {
		return nil, err
	}

	cfg := &Cfg{
		Latest:    raw.Latest,
		Closed:    raw.Closed,
		Active:    raw.Active,
		Recovered: raw.Recovered,
		Dead:      raw.Dead,
		Serious:   raw.Serious,

		News:       raw.News,
		AlertsOnly: raw.AlertsOnly,
		TableView:  raw.TableView,
		SortField:  raw.SortField,
		Ascending:  raw.Ascending,

		Country: raw.Args.Country,

		Offline:   raw.Offline,
		URL:       cmp.Or(raw.URL, file.URL, defaultURL),
		UserAgent: cmp.Or(raw.UserAgent, file.UserAgent, defaultUserAgent),
		CacheDir:  cmp.Or(raw.CacheDir, file.CacheDir),
		Timeout:   cmp.Or(raw.Timeout, file.Timeout, defaultTimeout),

		NoColor: raw.NoColor,
		Debug:   raw.Debug,
		Version: GetVersion(),
	}

	if raw.Range != "" {
		r, err := ParseRange(raw.Range)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil, ErrUsage
		}
		cfg.Range = r
	}

	return cfg, nil
}

// loadFile reads the YAML config file. A missing file is an error only when
// the path was given explicitly; the default location is optional.
func loadFile(path string) (fileCfg, error) {
	explicit := path != ""
	if !explicit {
		base, err := os.UserConfigDir()
		if err != nil {
			return fileCfg{}, nil
		}
		path = filepath.Join(base, "coronactl", "config.yml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return fileCfg{}, nil
		}
		return fileCfg{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var file fileCfg
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fileCfg{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if file.Timeout < 0 {
		return fileCfg{}, fmt.Errorf("invalid config file %s: timeout must be non-negative", path)
	}

	return file, nil
}
