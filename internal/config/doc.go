// Package config loads runtime configuration for the TechMarket terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with TECHMARKET_.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-d string   path to the SQLite database (":memory:" for no persistence)
//	-f string   catalog file (YAML, or JSON when the name ends in .json)
//	-l string   log level: debug, info, warn, error
//
// # Environment
//
//	TECHMARKET_DB_PATH, TECHMARKET_CATALOG_FILE, TECHMARKET_LOG_LEVEL,
//	TECHMARKET_LOG_FORMAT, TECHMARKET_SEED_DEMO_USER,
//	TECHMARKET_KDF_TIME, TECHMARKET_KDF_MEMORY_KIB, TECHMARKET_KDF_THREADS
//
// # JSON schema
//
//	{
//	  "db_path": "techmarket.db",
//	  "catalog_file": "products.yaml",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "seed_demo_user": true,
//	  "kdf": {"time": 1, "memory_kib": 65536, "threads": 4}
//	}
package config
