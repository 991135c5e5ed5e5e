package sources

import "conflux"

// Quick builds the common three-layer pipeline: command-line arguments
// win over environment variables, which win over a config file. The file
// path defaults to configFile and can be overridden with a --config flag
// or a <envPrefix>CONFIG variable; a missing file is not an error.
func Quick(configFile, envPrefix string, args []string) (*conflux.Config, error) {
	file := &File{
		DefaultPath:   configFile,
		PathOption:    "config",
		IgnoreMissing: true,
		Decoder:       DecoderFor(configFile),
	}
	return conflux.NewBuilder().
		AppendSource(NewArgs(args)).
		AppendSource(&Env{DefaultPrefix: envPrefix}).
		AppendSource(file).
		Load()
}
