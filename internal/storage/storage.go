package storage

import "errors"

var (
	ErrNotDir   = errors.New("given root is not a directory")
	ErrInternal = errors.New("internal error")
	ErrEmpty    = errors.New("empty content")
	ErrTooLarge = errors.New("content exceeds the maximum blob size")
	ErrNotExist = errors.New("blob does not exist")
)

// Storage is a write-once, content-addressed blob store. Put returns the
// digest naming the content; equal bytes always yield the same digest and
// are stored once. There is no delete: unreferenced blobs are collected
// out of band.
type Storage interface {
	Put(content []byte) (digest string, err error)
	Get(digest string) ([]byte, error)
	Has(digest string) (bool, error)
}
