package obfuscate

import "sync"

// Pipe is a Tap into which the work units can be pushed manually.
// The work units pushed before the pipe is open will be buffered and flushed once it's opened.
type Pipe struct {
	ch    chan *WorkUnit
	queue []*WorkUnit
	done  chan None

	// in flight pushes which must finish before the channel gets closed
	senders sync.WaitGroup

	mux      sync.Mutex
	isOpen   bool
	isClosed bool
}

// NewPipe creates a new pipe
func NewPipe(bufferSize uint16) *Pipe {
	return &Pipe{
		ch:   make(chan *WorkUnit, bufferSize),
		done: make(chan None),
	}
}

// Push sends the work unit down the pipe.
// Pushing into a closed pipe returns ErrClosedTap.
func (p *Pipe) Push(wu *WorkUnit) error {
	if p == nil {
		return ErrClosedTap
	}

	p.mux.Lock()
	if p.isClosed {
		p.mux.Unlock()
		return ErrClosedTap
	}
	if !p.isOpen {
		//buffer the work units if the pipe is not open
		p.queue = append(p.queue, wu)
		p.mux.Unlock()
		return nil
	}
	p.senders.Add(1)
	p.mux.Unlock()

	defer p.senders.Done()
	select {
	case p.ch <- wu:
		return nil
	case <-p.done:
		return ErrClosedTap
	}
}

// Requests returns the channel from which the engine receives the work units
func (p *Pipe) Requests() <-chan *WorkUnit {
	return p.ch
}

// Open opens the pipe and flushes the buffered work units
func (p *Pipe) Open() {
	p.mux.Lock()
	defer p.mux.Unlock()
	if p.isOpen || p.isClosed {
		return
	}
	p.isOpen = true

	queue := p.queue
	p.queue = nil
	if len(queue) == 0 {
		return
	}

	//In case there is no consumer reading off the channel,
	//we don't want flushing the queue to block the call to Open()
	p.senders.Add(1)
	go func() {
		defer p.senders.Done()
		for _, wu := range queue {
			select {
			case p.ch <- wu:
			case <-p.done:
				return
			}
		}
	}()
}

// Close closes the pipe. The work units which have not been delivered yet will be dropped.
func (p *Pipe) Close() {
	p.mux.Lock()
	if p.isClosed {
		p.mux.Unlock()
		return
	}
	p.isClosed = true
	p.isOpen = false
	close(p.done)
	p.mux.Unlock()

	p.senders.Wait()
	close(p.ch)
}

// IsOpen returns true if the pipe is open
func (p *Pipe) IsOpen() bool {
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.isOpen
}
