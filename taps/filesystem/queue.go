// Package filesystem keeps track of the files which are still being written to
package filesystem

import (
	"os"
	"sort"
	"sync"
	"time"
)

// Queue holds the files which have been created or modified until they settle.
// A file settles once it has not been updated for the settle duration.
type Queue struct {
	settle   time.Duration
	mux      sync.Mutex
	monitors map[string]*fileMonitor
}

// NewQueue creates a new queue
func NewQueue(settle time.Duration) *Queue {
	return &Queue{
		settle:   settle,
		monitors: make(map[string]*fileMonitor),
	}
}

// AddOrUpdate starts monitoring the file or resets its settle timer if it's already being monitored.
// Directories and the files which do not exist anymore are ignored.
func (q *Queue) AddOrUpdate(path string) error {
	q.mux.Lock()
	defer q.mux.Unlock()
	m, ok := q.monitors[path]
	if ok {
		m.update()
		return nil
	}
	f, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if f.IsDir() {
		return nil
	}
	q.monitors[path] = newFileMonitor(f, path)
	return nil
}

// Remove stops monitoring the file
func (q *Queue) Remove(path string) {
	q.mux.Lock()
	defer q.mux.Unlock()
	delete(q.monitors, path)
}

// Ready removes the settled files from the queue and returns their paths in order
func (q *Queue) Ready() []string {
	q.mux.Lock()
	defer q.mux.Unlock()
	var ready []string
	for path, m := range q.monitors {
		if m.isReady(q.settle) {
			ready = append(ready, path)
			delete(q.monitors, path)
		}
	}
	sort.Strings(ready)
	return ready
}

// Len returns the number of files being monitored
func (q *Queue) Len() int {
	q.mux.Lock()
	defer q.mux.Unlock()
	return len(q.monitors)
}
