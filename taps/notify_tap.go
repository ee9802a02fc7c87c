package taps

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rjeczalik/notify"
	"github.com/xitonix/anubis/obfuscate"
	"github.com/xitonix/anubis/taps/filesystem"
)

const (
	// DefaultSettleTime is used when the requested settle time is too short
	DefaultSettleTime = 500 * time.Millisecond
	minSettleTime     = 10 * time.Millisecond

	notifyBufferSize = 256
)

// NotifyTap is a tap which subscribes to the filesystem events of the source directory
// and turns the files into work units once they have not been modified for the settle time.
//
// The files are filtered and named the same way as the WatcherTap.
type NotifyTap struct {
	*directoryTap
	events chan notify.EventInfo
	queue  *filesystem.Queue
	settle time.Duration
}

// NewNotifyTap creates a new event based directory tap.
//
// "settleTime" is the period of time a file must remain untouched before it gets dispatched.
// See NewWatcherTap for the details of the other parameters.
func NewNotifyTap(source, target string,
	mode obfuscate.Operation,
	settleTime time.Duration,
	cipher *obfuscate.Cipher,
	notifyErrors bool,
	reportProgress bool,
	deleteCompleted bool) (*NotifyTap, error) {
	base, err := newDirectoryTap(source, target, mode, cipher, notifyErrors, reportProgress, deleteCompleted)
	if err != nil {
		return nil, err
	}

	if settleTime < minSettleTime {
		settleTime = DefaultSettleTime
	}

	return &NotifyTap{
		directoryTap: base,
		events:       make(chan notify.EventInfo, notifyBufferSize),
		queue:        filesystem.NewQueue(settleTime),
		settle:       settleTime,
	}, nil
}

// Open subscribes to the filesystem events of the source directory and its sub-directories
func (t *NotifyTap) Open() {
	t.open(func() {
		t.wg.Add(1)
		go t.monitorSourceDirectory()
	})
}

// Close unsubscribes from the filesystem events and releases the resources.
// You don't need to explicitly call this function when you are using the tap
// with an Engine. The engine will take care of it.
func (t *NotifyTap) Close() {
	t.close(func() {})
}

func (t *NotifyTap) monitorSourceDirectory() {
	defer t.wg.Done()

	err := notify.Watch(filepath.Join(t.source, "..."), t.events, notify.Create, notify.Write, notify.Rename)
	if err != nil {
		t.reportError(fmt.Errorf("filesystem notification: %w", err))
		return
	}
	defer notify.Stop(t.events)

	ticker := time.NewTicker(t.settle / 2)
	defer ticker.Stop()

	for {
		select {
		case ei := <-t.events:
			if !t.accepts(ei.Path()) {
				continue
			}
			if err := t.queue.AddOrUpdate(ei.Path()); err != nil {
				t.reportError(fmt.Errorf("failed to read '%s': %w", ei.Path(), err))
			}
		case <-ticker.C:
			for _, path := range t.queue.Ready() {
				t.dispatchAsync(path)
			}
		case <-t.done:
			return
		}
	}
}
