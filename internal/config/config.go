package config

import "github.com/dmitrijs2005/techmarket/internal/cryptox"

// KDF mirrors cryptox.KDFParams with env tags.
type KDF struct {
	Time      uint32 `env:"TIME"`
	MemoryKiB uint32 `env:"MEMORY_KIB"`
	Threads   uint8  `env:"THREADS"`
}

func (k KDF) Params() cryptox.KDFParams {
	return cryptox.KDFParams{Time: k.Time, MemoryKiB: k.MemoryKiB, Threads: k.Threads}
}

type Config struct {
	DBPath       string `env:"DB_PATH"`
	CatalogFile  string `env:"CATALOG_FILE"`
	LogLevel     string `env:"LOG_LEVEL"`
	LogFormat    string `env:"LOG_FORMAT"`
	SeedDemoUser bool   `env:"SEED_DEMO_USER"`
	KDF          KDF    `envPrefix:"KDF_"`
}

// LoadDefaults populates c with sensible defaults. An empty CatalogFile
// selects the embedded catalog.
func (c *Config) LoadDefaults() {
	d := cryptox.DefaultKDFParams()

	c.DBPath = "techmarket.db"
	c.CatalogFile = ""
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.SeedDemoUser = true
	c.KDF = KDF{Time: d.Time, MemoryKiB: d.MemoryKiB, Threads: d.Threads}
}

// LoadConfig applies defaults, then JSON, environment and flags. Later
// sources take precedence. It panics on malformed input, like the flag
// package does with flag.PanicOnError.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
