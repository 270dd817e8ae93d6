package cfg

// Cfg is the resolved runtime configuration: command-line flags layered
// over environment variables, the optional YAML config file, and built-in
// defaults.
type Cfg struct {
	// Field selectors for the single-entity view
	Latest    bool
	Closed    bool
	Active    bool
	Recovered bool
	Dead      bool
	Serious   bool

	// Alternate views
	News       bool
	AlertsOnly bool
	TableView  bool
	SortField  string
	Ascending  bool
	Range      *Range

	Country string

	// Data source and cache
	Offline   bool
	URL       string
	UserAgent string
	CacheDir  string
	Timeout   int // seconds

	// Presentation and diagnostics
	NoColor bool
	Debug   bool
	Version string
}

// FieldsSelected reports whether any single-field selector flag was given;
// when none is, the full overview is shown.
func (c *Cfg) FieldsSelected() bool {
	return c.Latest || c.Closed || c.Active || c.Recovered || c.Dead || c.Serious
}

// fileCfg is the optional YAML config file. Values act as defaults under
// flags and environment variables.
type fileCfg struct {
	URL       string `yaml:"url"`
	UserAgent string `yaml:"user_agent"`
	CacheDir  string `yaml:"cache_dir"`
	Timeout   int    `yaml:"timeout"`
}
