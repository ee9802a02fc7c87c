// Package mocks includes the io mocks used for testing
package mocks

import "errors"

// ErrMocked is the error returned by the failing mocks
var ErrMocked = errors.New("mocked failure")

type OnlyWriter struct{}

func (o *OnlyWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

type OnlyReader struct{}

func (o *OnlyReader) Read(p []byte) (n int, err error) {
	return 0, nil
}

type WriteCloser struct {
	IsClosed bool
}

func (o *WriteCloser) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func (o *WriteCloser) Close() error {
	o.IsClosed = true
	return nil
}

type ReadCloser struct {
	IsClosed bool
}

func (o *ReadCloser) Read(p []byte) (n int, err error) {
	return 0, nil
}

func (o *ReadCloser) Close() error {
	o.IsClosed = true
	return nil
}

// FailingWriter fails every write
type FailingWriter struct{}

func (f *FailingWriter) Write(p []byte) (n int, err error) {
	return 0, ErrMocked
}

// FailingReader fails every read
type FailingReader struct{}

func (f *FailingReader) Read(p []byte) (n int, err error) {
	return 0, ErrMocked
}
