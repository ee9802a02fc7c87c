package taps

import (
	"fmt"
	"time"

	"github.com/radovskyb/watcher"
	"github.com/xitonix/anubis/obfuscate"
)

const (
	// DefaultPollingInterval is used when the requested polling interval is too short
	DefaultPollingInterval = 100 * time.Millisecond
	minPollingInterval     = time.Millisecond
)

// WatcherTap is a tap which polls the source directory for the newly created files
// and turns them into work units.
//
// In Encode mode, every "*.txt" file will be obfuscated into a "*.anb" file within the target directory.
// In Decode mode, every "*.anb" file will be turned back into a "*.txt" file.
// The sub-directory structure of the source is mirrored in the target directory.
type WatcherTap struct {
	*directoryTap
	watcher  *watcher.Watcher
	interval time.Duration
}

// NewWatcherTap creates a new polling directory tap.
// You can feed this tap to an Engine object to automate your obfuscation tasks.
//
// If you have enabled error notification or progress report, you must read off the Errors
// and Progress channels, otherwise the tap will get blocked on the full channel.
//
// "pollingInterval" is the frequency of checking the "source" directory for newly created files.
//
// If you set "deleteCompleted" to true, the input files will get deleted, only if the
// operation has been finished successfully.
//
// "source" and "target" are the paths to source and destination directories. They will get created
// by the tap if they don't already exist.
func NewWatcherTap(source, target string,
	mode obfuscate.Operation,
	pollingInterval time.Duration,
	cipher *obfuscate.Cipher,
	notifyErrors bool,
	reportProgress bool,
	deleteCompleted bool) (*WatcherTap, error) {
	base, err := newDirectoryTap(source, target, mode, cipher, notifyErrors, reportProgress, deleteCompleted)
	if err != nil {
		return nil, err
	}

	if pollingInterval < minPollingInterval {
		pollingInterval = DefaultPollingInterval
	}

	w := watcher.New()
	w.FilterOps(watcher.Create, watcher.Rename, watcher.Move)
	w.IgnoreHiddenFiles(true)

	if err := w.AddRecursive(base.source); err != nil {
		return nil, err
	}

	return &WatcherTap{
		directoryTap: base,
		watcher:      w,
		interval:     pollingInterval,
	}, nil
}

// Open starts polling the source directory
func (t *WatcherTap) Open() {
	t.open(func() {
		t.wg.Add(1)
		go t.startWatcher()
		t.watcher.Wait()

		t.wg.Add(1)
		go t.monitorSourceDirectory()
	})
}

// Close stops the directory watcher and releases the resources.
// You don't need to explicitly call this function when you are using the tap
// with an Engine. The engine will take care of it.
func (t *WatcherTap) Close() {
	t.close(t.watcher.Close)
}

func (t *WatcherTap) startWatcher() {
	defer t.wg.Done()
	if err := t.watcher.Start(t.interval); err != nil {
		t.reportError(fmt.Errorf("directory watcher: %w", err))
	}
}

func (t *WatcherTap) monitorSourceDirectory() {
	defer t.wg.Done()
	for {
		select {
		case event := <-t.watcher.Event:
			if event.IsDir() {
				continue
			}
			t.dispatchAsync(event.Path)
		case err := <-t.watcher.Error:
			t.reportError(err)
		case <-t.watcher.Closed:
			return
		}
	}
}
