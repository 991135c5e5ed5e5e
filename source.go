package conflux

// Source is one configuration source: a file, the environment, command
// line arguments, or anything else that can produce a tree.
//
// Parse receives the tree accumulated from the sources appended before
// it, so a source may resolve its own parameters from earlier results
// (e.g. a file source reading its path from a command-line flag). The
// returned tree is owned by the caller; sources that memoize must return
// a clone.
type Source interface {
	// Parse produces this source's tree, possibly consulting the
	// accumulated tree from earlier sources.
	Parse(accumulated *Value) (*Value, error)

	// IsCaseSensitive reports whether the source produces case-sensitive
	// key names. Used to resolve MergeCaseAuto.
	IsCaseSensitive() bool
}
