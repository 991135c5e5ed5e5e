// Command confluxdump loads a layered configuration and prints its digest
// and masked tree. It demonstrates the standard pipeline: command-line
// arguments override environment variables, which override a config file
// whose path can itself come from --config or CONFLUX_CONFIG.
//
// Usage:
//
//	confluxdump [--config path] [--key value ...]
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"conflux"
	"conflux/sources"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	args := os.Args[1:]
	file := &sources.File{
		PathOption:    "config",
		IgnoreMissing: true,
		Decoder:       sources.JSONDecoder{},
	}
	if path := sources.Discover(sources.DefaultDiscoveryOptions("conflux"), args); path != "" {
		file.DefaultPath = path
		file.Decoder = sources.DecoderFor(path)
		log.Debug().Str("path", path).Msg("discovered config file")
	}

	cfg, err := conflux.NewBuilder().
		AppendSource(sources.NewArgs(args)).
		AppendSource(&sources.Env{DefaultPrefix: "CONFLUX_"}).
		AppendSource(file).
		WithSealSuffix("_sealed_").
		Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Info().Str("hash", cfg.Hash()).Msg("configuration loaded")
	fmt.Println(cfg.Dump())
}
