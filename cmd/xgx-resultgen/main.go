// Command xgx-resultgen generates an error trait from a YAML code catalog.
//
//	xgx-resultgen --catalog storage.yaml --out storage_codes_gen.go
//
// Typical use is a go:generate directive next to the catalog:
//
//	//go:generate go run github.com/xgx-io/xgx-result/cmd/xgx-resultgen -c codes.yaml -o codes_gen.go
package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/xgx-io/xgx-result/catalog"
	"github.com/xgx-io/xgx-result/internal/config"
	"github.com/xgx-io/xgx-result/internal/gen"
	"github.com/xgx-io/xgx-result/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := config.FlagSet(filepath.Base(os.Args[0]))
	fs.SetOutput(stderr)
	cfg, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		log := logger.New(stderr, false, false)
		log.Error().Err(err).Msg("invalid arguments")
		return 1
	}

	log := logger.New(stderr, cfg.Debug, cfg.Verbose)
	log.Debug().Interface("config", cfg).Msg("config loaded")

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		log.Error().Err(err).Str("catalog", cfg.Catalog).Msg("failed to load catalog")
		return 1
	}
	log.Info().Str("catalog", cfg.Catalog).Int("codes", len(cat.Entries())).Msg("catalog loaded")

	src, err := gen.Generate(cat, gen.Options{
		Package:    cfg.Package,
		Type:       cfg.Type,
		Underlying: cfg.Underlying,
		Source:     filepath.Base(cfg.Catalog),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate trait")
		return 1
	}

	if cfg.Out == "" {
		if _, err := stdout.Write(src); err != nil {
			log.Error().Err(err).Msg("failed to write output")
			return 1
		}
		return 0
	}
	if err := os.WriteFile(cfg.Out, src, 0o644); err != nil {
		log.Error().Err(err).Str("out", cfg.Out).Msg("failed to write output")
		return 1
	}
	log.Info().Str("out", cfg.Out).Msg("trait generated")
	return 0
}
