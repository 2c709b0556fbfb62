package entity

import "time"

// DefaultSplitCount is the number of chunks the host splits a saved file into.
const DefaultSplitCount = 101

// EditSession is the state of one loaded configuration: the live values the
// user edits, the pristine copy taken at load and the frozen relationship index.
type EditSession struct {
	Current     *Configuration
	Original    *Configuration
	Index       *RelationshipIndex
	PackageName string
	SplitCount  int
	LoadedAt    time.Time
}

// SaveRecord is one persisted save. Payload is the full output, never a diff.
type SaveRecord struct {
	ID          int64
	PackageName string
	Destination string
	Digest      string
	KeyCount    int
	Payload     []byte
	CreatedAt   time.Time
}
