package obfuscate

// CallbackFunc is a callback function which will get called by the engine once
// the processing of a work unit has been finished
type CallbackFunc func(*WorkUnit)

// WorkUnit is a unit of encryption/decryption work
type WorkUnit struct {
	// Task the task to process
	Task *Task
	// Metadata the caller defined details of the work unit which will be reported back with the progress
	Metadata MetadataMap
	// Error the processing error of the task, if any
	Error error

	cipher   *Cipher
	callback CallbackFunc
}

// NewWorkUnit creates a new work unit which will process the task using the cipher
func NewWorkUnit(t *Task, cipher *Cipher, c CallbackFunc) *WorkUnit {
	return &WorkUnit{
		Task:     t,
		Metadata: make(MetadataMap),
		cipher:   cipher,
		callback: c,
	}
}

func (w *WorkUnit) callBack() {
	if w.callback != nil {
		w.callback(w)
	}
}
