package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/techmarket/internal/flagx"
)

// JsonConfig is the DTO for the optional JSON file. Pointer fields tell
// "absent" apart from zero values so a partial file only overrides what it
// names.
type JsonConfig struct {
	DBPath       *string  `json:"db_path"`
	CatalogFile  *string  `json:"catalog_file"`
	LogLevel     *string  `json:"log_level"`
	LogFormat    *string  `json:"log_format"`
	SeedDemoUser *bool    `json:"seed_demo_user"`
	KDF          *JsonKDF `json:"kdf"`
}

type JsonKDF struct {
	Time      *uint32 `json:"time"`
	MemoryKiB *uint32 `json:"memory_kib"`
	Threads   *uint8  `json:"threads"`
}

// parseJson overlays cfg with the file named by -c/-config. Panics on read
// or decode errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIf(&cfg.DBPath, jc.DBPath)
	setIf(&cfg.CatalogFile, jc.CatalogFile)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.SeedDemoUser, jc.SeedDemoUser)
	if jc.KDF != nil {
		setIf(&cfg.KDF.Time, jc.KDF.Time)
		setIf(&cfg.KDF.MemoryKiB, jc.KDF.MemoryKiB)
		setIf(&cfg.KDF.Threads, jc.KDF.Threads)
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
