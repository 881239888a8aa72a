package visitor

const (
	// Version is the module version.
	Version = "0.4.0"

	// MinimumGoVersion is the oldest Go release this module is guaranteed
	// to build with. It may only increase together with a minor release of
	// this module, never with a patch release, and it never decreases.
	MinimumGoVersion = "1.24.0"
)
