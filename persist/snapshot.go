package persist

import (
	"fmt"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
)

// EncodeSnapshot serializes a snapshot to its binary wire form.
func EncodeSnapshot(snap *core.Snapshot) []byte {
	buf := make([]byte, core.SnapshotMUS.Size(*snap))
	core.SnapshotMUS.Marshal(*snap, buf)
	return buf
}

// DecodeSnapshot deserializes a snapshot, rejecting payloads whose
// schema version does not match the current one.
func DecodeSnapshot(data []byte) (*core.Snapshot, error) {
	snap, _, err := core.SnapshotMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Version != core.SnapshotVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", core.ErrSnapshotVersion, snap.Version, core.SnapshotVersion)
	}
	return &snap, nil
}
