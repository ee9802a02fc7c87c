package obfuscate

import (
	"testing"
)

func TestPushToANilPipe(t *testing.T) {
	var pipe *Pipe
	if err := pipe.Push(&WorkUnit{}); err != ErrClosedTap {
		t.Errorf("expected to get '%v' as error, but received '%v'", ErrClosedTap, err)
	}
}

func TestPushToAClosedPipe(t *testing.T) {
	pipe := NewPipe(1)
	pipe.Open()
	pipe.Close()

	if err := pipe.Push(&WorkUnit{}); err != ErrClosedTap {
		t.Errorf("expected to get '%v' as error, but received '%v'", ErrClosedTap, err)
	}

	if _, more := <-pipe.Requests(); more {
		t.Error("The requests channel was supposed to be closed")
	}
}

func TestPushBeforeOpen(t *testing.T) {
	pipe := NewPipe(0)
	units := []*WorkUnit{{}, {}, {}}
	for _, wu := range units {
		if err := pipe.Push(wu); err != nil {
			t.Errorf("expected to get 'nil' as error, but received '%v'", err)
		}
	}

	if pipe.IsOpen() {
		t.Error("The pipe was not supposed to be open")
	}

	pipe.Open()
	if !pipe.IsOpen() {
		t.Error("The pipe was supposed to be open")
	}

	for i, expected := range units {
		if actual := <-pipe.Requests(); actual != expected {
			t.Errorf("work unit %d was not delivered in order", i)
		}
	}
	pipe.Close()
}

func TestCloseDropsTheBlockedPushes(t *testing.T) {
	pipe := NewPipe(0)
	pipe.Open()

	result := make(chan error)
	go func() {
		result <- pipe.Push(&WorkUnit{})
	}()

	pipe.Close()
	if err := <-result; err != ErrClosedTap && err != nil {
		t.Errorf("unexpected push error '%v'", err)
	}
}
