package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration. Flags in main override it.
type Config struct {
	GRPCAddr   string `env:"WORKSHEET_GRPC_ADDR"     envDefault:":50051"`
	WebAddr    string `env:"WORKSHEET_WEB_ADDR"      envDefault:":8081"`
	OutDir     string `env:"WORKSHEET_OUT_DIR"       envDefault:"./output"`
	PageSize   string `env:"WORKSHEET_PDF_PAGE_SIZE" envDefault:"A4"`
	FontFamily string `env:"WORKSHEET_PDF_FONT"      envDefault:"Helvetica"`
	Author     string `env:"WORKSHEET_AUTHOR"        envDefault:"Shuvam"`
	Seed       uint64 `env:"WORKSHEET_SEED"`
}

// Load reads the given .env files (".env" when none are named), then the
// environment. Missing .env files are ignored; variables already set in the
// environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
