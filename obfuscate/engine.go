package obfuscate

import (
	"context"
	"sync"

	"github.com/xitonix/anubis/logging"
)

// Engine is the type that processes the work units coming from a Tap
// using a pool of worker go routines.
type Engine struct {
	stream   *stream
	notify   bool
	progress chan *Result
	log      logging.Logger
	wg       *sync.WaitGroup
	cancel   context.CancelFunc
	workers  uint16

	startOnce sync.Once
	stopOnce  sync.Once

	//to prevent multiple go routines to run Start and Stop at the same time
	mux       sync.Mutex
	isRunning bool
}

// NewEngine creates a new engine with the specified number of workers.
//
// If you enable the progress report, you must read off the Progress channel,
// otherwise the workers will get blocked on the full channel.
func NewEngine(workers uint16, enableProgress bool, log logging.Logger, tap Tap) *Engine {
	if workers == 0 {
		workers = 1
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{
		stream:   newStream(workers, tap),
		progress: make(chan *Result),
		log:      log,
		wg:       &sync.WaitGroup{},
		notify:   enableProgress,
		workers:  workers,
	}
}

// Progress returns the channel on which the engine reports the progress of the work units.
// The channel will be closed once the engine has been stopped.
func (e *Engine) Progress() <-chan *Result {
	return e.progress
}

func (e *Engine) reportProgress(r *Result) {
	if e.notify {
		e.progress <- r
	}
}

// Start starts the engine to serve the requests coming through the tap.
// Once you are finished with the engine, you need to call the Stop function.
// It's safe to call this method on a running engine
func (e *Engine) Start() {
	e.mux.Lock()
	defer e.mux.Unlock()

	if e.isRunning {
		return
	}

	e.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		e.cancel = cancel

		for i := uint16(0); i < e.workers; i++ {
			e.wg.Add(1)
			go e.monitorStream(ctx)
		}
		e.stream.open()
		e.isRunning = true
		e.log.Debugf("the engine has been started with %d workers", e.workers)
	})
}

// Stop stops the engine and releases the resources.
// It's safe to call this function on a stopped engine
func (e *Engine) Stop() {
	e.mux.Lock()
	defer e.mux.Unlock()

	if !e.isRunning {
		return
	}
	e.stopOnce.Do(func() {
		e.isRunning = false
		e.stream.shutdown()
		e.cancel()
		e.wg.Wait()
		close(e.progress)
		e.log.Debug("the engine has been stopped")
	})
}

// IsON returns true if the engine is running
func (e *Engine) IsON() bool {
	e.mux.Lock()
	defer e.mux.Unlock()
	return e.isRunning
}

func (e *Engine) monitorStream(ctx context.Context) {
	defer e.wg.Done()
	for {
		select {
		case wu, more := <-e.stream.tube:
			if !more {
				return
			}
			e.process(ctx, wu)
		case <-ctx.Done():
			return
		}
	}
}

func (e *Engine) process(ctx context.Context, wu *WorkUnit) {
	e.reportProgress(&Result{
		Status:   InProgress,
		Metadata: wu.Metadata,
	})

	if wu.cipher == nil {
		wu.Error = ErrInvalidKey
		wu.Task.markAsComplete(Failed)
	} else {
		e.log.Debugf("processing %s task (key %s)", wu.Task.mode, wu.cipher.schedule.Fingerprint())
		wu.Error = wu.Task.process(ctx, wu.cipher)
	}

	status := wu.Task.Status()
	if wu.Error != nil {
		e.log.Errorf("failed to %s: %v", wu.Task.mode, wu.Error)
	} else {
		e.log.Debugf("%s task %s", wu.Task.mode, status)
	}

	wu.callBack()
	e.reportProgress(&Result{
		Error:    wu.Error,
		Status:   status,
		Metadata: wu.Metadata,
	})
}
