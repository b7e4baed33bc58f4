package persist

// The three rotating slots of the staged-commit protocol, plus the
// single key used by the legacy fallback store. These are storage keys;
// changing them orphans existing snapshots.
const (
	KeyStaging = "snapshot:staging"
	KeyCurrent = "snapshot:current"
	KeyBackup  = "snapshot:backup"

	// LegacyKey is the fallback store's single key. Written whenever
	// the staged commit cannot complete in the primary store.
	LegacyKey = "snapshot-legacy"
)
