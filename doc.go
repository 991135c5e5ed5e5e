// Package conflux aggregates configuration data from multiple ordered
// sources (files in various formats, environment variables, command-line
// arguments, in-memory values) into one merged, typed-queryable tree.
//
// Features:
//   - Ordered sources with earliest-wins precedence: the first appended
//     source wins key conflicts, later sources only fill gaps
//   - Sources can read values produced by earlier sources (e.g. a config
//     file path discovered from a command-line flag)
//   - Case-sensitive or case-insensitive key merging, auto-detected from
//     the sources or forced
//   - Secret sealing: keys marked with a suffix are masked in rendered
//     output without affecting programmatic access
//   - BLAKE2b content digest over the merged tree for equality, ordering
//     and change detection
//   - Typed access via mapstructure with automatic conversions
//
// Quick Start:
//
//	cfg, err := conflux.NewBuilder().
//	    AppendSource(sources.NewArgs(os.Args[1:])).
//	    AppendSource(&sources.Env{DefaultPrefix: "MYAPP_"}).
//	    AppendSource(sources.NewJSONFile("config.json")).
//	    WithSealSuffix("_sealed_").
//	    Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	host, _ := cfg.String("server:host")
//	port, _ := cfg.Int64("server:port")
//
// Reloading is caller-invoked via Config.Reload and rebuilds the tree
// from scratch; a failed reload leaves the previous state untouched.
package conflux
