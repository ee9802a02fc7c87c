package taps

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xitonix/anubis/obfuscate"
)

const (
	// EncodedFileExtension is the extension of the files produced in Encode mode
	EncodedFileExtension = ".anb"
	// DecodedFileExtension is the extension of the files produced in Decode mode
	DecodedFileExtension = ".txt"

	outputMetadataKey     = "output"
	inputMetadataKey      = "input"
	outputFullMetadataKey = "output_full_path"
	inputFullMetadataKey  = "input_full_path"
)

// File represents a file processed by a directory tap
type File struct {
	Name, Path string
}

// Result represents the progress details of a file
type Result struct {
	Status obfuscate.Status
	Error  error
	Input  File
	Output File
}

// directoryTap is the machinery shared by the taps which turn the files
// of a source directory into work units.
type directoryTap struct {
	mode           obfuscate.Operation
	cipher         *obfuscate.Cipher
	source, target string
	delete         bool

	requests chan *obfuscate.WorkUnit
	errors   chan error
	progress chan *Result
	done     chan obfuscate.None
	wg       sync.WaitGroup

	flagsMux sync.RWMutex
	notify   bool
	report   bool

	// the files which have been dispatched but not finished yet
	inFlightMux sync.Mutex
	inFlight    map[string]obfuscate.None

	// guards the notification channels against being closed during a send
	chMux    sync.RWMutex
	chClosed bool

	openOnce  sync.Once
	closeOnce sync.Once

	//to prevent multiple go routines to run Open and Close at the same time
	mux    sync.Mutex
	isOpen bool
}

func newDirectoryTap(source, target string,
	mode obfuscate.Operation,
	cipher *obfuscate.Cipher,
	notifyErrors bool,
	reportProgress bool,
	deleteCompleted bool) (*directoryTap, error) {
	if cipher == nil {
		return nil, obfuscate.ErrInvalidKey
	}

	src, err := createDirIfNotExist(source)
	if err != nil {
		return nil, err
	}

	tg, err := createDirIfNotExist(target)
	if err != nil {
		return nil, err
	}

	return &directoryTap{
		mode:     mode,
		cipher:   cipher,
		source:   src,
		target:   tg,
		delete:   deleteCompleted,
		notify:   notifyErrors,
		report:   reportProgress,
		requests: make(chan *obfuscate.WorkUnit),
		errors:   make(chan error),
		progress: make(chan *Result),
		done:     make(chan obfuscate.None),
		inFlight: make(map[string]obfuscate.None),
	}, nil
}

// Errors returns a read-only channel on which you will receive the failure notifications.
// The channel will be closed once the tap has been closed.
func (d *directoryTap) Errors() <-chan error {
	return d.errors
}

// Progress returns a read-only channel on which you will receive the progress of each file.
// The channel will be closed once the tap has been closed.
func (d *directoryTap) Progress() <-chan *Result {
	return d.progress
}

// Requests returns the channel from which the engine receives the work units
func (d *directoryTap) Requests() <-chan *obfuscate.WorkUnit {
	return d.requests
}

// SwitchErrorNotification turns error notification on or off
func (d *directoryTap) SwitchErrorNotification(on bool) {
	d.flagsMux.Lock()
	defer d.flagsMux.Unlock()
	d.notify = on
}

// SwitchProgressReport turns progress report on or off
func (d *directoryTap) SwitchProgressReport(on bool) {
	d.flagsMux.Lock()
	defer d.flagsMux.Unlock()
	d.report = on
}

// IsOpen returns true if the tap is open
func (d *directoryTap) IsOpen() bool {
	d.mux.Lock()
	defer d.mux.Unlock()
	return d.isOpen
}

// open starts the event source of the concrete tap and dispatches the files
// which are already in the source directory.
func (d *directoryTap) open(start func()) {
	d.mux.Lock()
	defer d.mux.Unlock()

	if d.isOpen {
		return
	}
	d.openOnce.Do(func() {
		d.isOpen = true
		start()
		d.wg.Add(1)
		go d.processExistingFiles()
	})
}

// close stops the event source, waits for the in flight dispatches and closes the channels.
func (d *directoryTap) close(stop func()) {
	d.mux.Lock()
	defer d.mux.Unlock()

	d.closeOnce.Do(func() {
		d.isOpen = false
		stop()
		close(d.done)
		d.wg.Wait()

		d.chMux.Lock()
		defer d.chMux.Unlock()
		d.chClosed = true
		close(d.requests)
		close(d.errors)
		close(d.progress)
	})
}

func (d *directoryTap) isClosing() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

func (d *directoryTap) reportError(err error) {
	d.flagsMux.RLock()
	notify := d.notify
	d.flagsMux.RUnlock()
	if !notify {
		return
	}

	d.chMux.RLock()
	defer d.chMux.RUnlock()
	if d.chClosed {
		return
	}
	select {
	case d.errors <- err:
	case <-d.done:
	}
}

func (d *directoryTap) reportProgress(r *Result) {
	d.flagsMux.RLock()
	report := d.report
	d.flagsMux.RUnlock()
	if !report {
		return
	}

	d.chMux.RLock()
	defer d.chMux.RUnlock()
	if d.chClosed {
		return
	}
	select {
	case d.progress <- r:
	case <-d.done:
	}
}

func (d *directoryTap) processExistingFiles() {
	defer d.wg.Done()
	err := filepath.WalkDir(d.source, func(path string, entry fs.DirEntry, err error) error {
		if d.isClosing() {
			return filepath.SkipAll
		}
		if err != nil {
			d.reportError(fmt.Errorf("failed to read '%s': %w", path, err))
			return nil
		}
		if entry.IsDir() {
			if path != d.source && isHidden(entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		d.dispatch(path)
		return nil
	})
	if err != nil {
		d.reportError(err)
	}
}

// dispatchAsync dispatches the file without blocking the event loop of the caller
func (d *directoryTap) dispatchAsync(path string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.dispatch(path)
	}()
}

func (d *directoryTap) dispatch(path string) {
	if d.isClosing() || !d.accepts(path) || !d.claim(path) {
		return
	}

	file, err := os.Stat(path)
	if err != nil || file.IsDir() {
		d.release(path)
		if err != nil && !os.IsNotExist(err) {
			d.reportError(fmt.Errorf("failed to read '%s': %w", path, err))
		}
		return
	}

	in := File{Name: file.Name(), Path: path}
	input, err := os.Open(path)
	if err != nil {
		d.release(path)
		d.reportError(fmt.Errorf("failed to open '%s': %w", in.Name, err))
		return
	}

	out, err := d.outputFile(in)
	if err != nil {
		input.Close()
		d.release(path)
		d.reportError(fmt.Errorf("failed to resolve the output of '%s': %w", in.Name, err))
		return
	}

	output, err := os.Create(out.Path)
	if err != nil {
		input.Close()
		d.release(path)
		d.reportError(fmt.Errorf("failed to create '%s': %w", out.Name, err))
		return
	}

	t := obfuscate.NewTask(d.mode, input, output)
	w := obfuscate.NewWorkUnit(t, d.cipher, d.whenDone)
	w.Metadata[inputMetadataKey] = in.Name
	w.Metadata[inputFullMetadataKey] = in.Path
	w.Metadata[outputMetadataKey] = out.Name
	w.Metadata[outputFullMetadataKey] = out.Path

	d.reportProgress(&Result{
		Status: t.Status(),
		Input:  in,
		Output: out,
	})

	select {
	case d.requests <- w:
	case <-d.done:
		t.CloseInput()
		t.CloseOutputs()
		os.Remove(out.Path)
		d.release(path)
	}
}

// whenDone is a callback method which will get called by the engine once the
// processing of a task has been finished
func (d *directoryTap) whenDone(w *obfuscate.WorkUnit) {
	in, out := parseMetadata(w.Metadata)
	defer d.release(in.Path)

	if err := w.Task.CloseInput(); err != nil {
		d.reportError(fmt.Errorf("failed to close '%s': %w", in.Name, err))
	}
	if err := w.Task.CloseOutputs(); err != nil {
		d.reportError(fmt.Errorf("failed to close '%s': %w", out.Name, err))
	}

	status := w.Task.Status()
	switch {
	case status == obfuscate.Completed && d.delete:
		if err := os.Remove(in.Path); err != nil {
			d.reportError(fmt.Errorf("failed to remove '%s': %w", in.Name, err))
		}
	case status != obfuscate.Completed:
		// partially written outputs are useless
		os.Remove(out.Path)
	}

	d.reportProgress(&Result{
		Status: status,
		Error:  w.Error,
		Input:  in,
		Output: out,
	})
}

// accepts returns true if the file needs to be processed in the current mode
func (d *directoryTap) accepts(path string) bool {
	name := filepath.Base(path)
	if isHidden(name) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	if d.mode == obfuscate.Decode {
		return ext == EncodedFileExtension
	}
	return ext == DecodedFileExtension
}

func (d *directoryTap) outputFile(in File) (File, error) {
	var name string
	if d.mode == obfuscate.Decode {
		name = strings.TrimSuffix(in.Name, filepath.Ext(in.Name)) + DecodedFileExtension
	} else {
		name = strings.TrimSuffix(in.Name, filepath.Ext(in.Name)) + EncodedFileExtension
	}

	rel, err := filepath.Rel(d.source, filepath.Dir(in.Path))
	if err != nil {
		return File{Name: name}, err
	}
	dir, err := createDirIfNotExist(filepath.Join(d.target, rel))
	if err != nil {
		return File{Name: name}, err
	}
	return File{Name: name, Path: filepath.Join(dir, name)}, nil
}

func (d *directoryTap) claim(path string) bool {
	d.inFlightMux.Lock()
	defer d.inFlightMux.Unlock()
	if _, ok := d.inFlight[path]; ok {
		return false
	}
	d.inFlight[path] = obfuscate.None{}
	return true
}

func (d *directoryTap) release(path string) {
	d.inFlightMux.Lock()
	defer d.inFlightMux.Unlock()
	delete(d.inFlight, path)
}

func parseMetadata(metadata obfuscate.MetadataMap) (File, File) {
	input := File{}
	output := File{}
	input.Name, _ = metadata[inputMetadataKey].(string)
	input.Path, _ = metadata[inputFullMetadataKey].(string)
	output.Name, _ = metadata[outputMetadataKey].(string)
	output.Path, _ = metadata[outputFullMetadataKey].(string)
	return input, output
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func createDirIfNotExist(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir, err
	}
	f, err := os.Stat(abs)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(abs, os.ModePerm); err != nil {
			return abs, err
		}
		return filepath.EvalSymlinks(abs)
	}
	if err != nil {
		return abs, err
	}
	if !f.IsDir() {
		return abs, ErrInvalidDirectory
	}
	return filepath.EvalSymlinks(abs)
}
