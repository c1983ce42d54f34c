package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of change observed on a path.
type WatchOp uint8

// Changes a Watcher reports. Attribute-only changes are not reported.
const (
	OpCreate WatchOp = iota
	OpWrite
	OpRemove
	OpRename
)

// WatchEvent is one change observed below the watched root.
type WatchEvent struct {
	// Path is the cleaned absolute path that changed.
	Path string
	Op   WatchOp
}

// Watcher reports changes to documents and graphics sources below a project root.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start watches root and every directory below it, including directories
	// created later.
	Start(ctx context.Context, root string) error
	// Stop releases the underlying watches.
	Stop() error
	// Events yields changes in the order they were observed. It ends once the
	// watcher is stopped or the context given to Start is done.
	Events() iter.Seq[WatchEvent]
}
