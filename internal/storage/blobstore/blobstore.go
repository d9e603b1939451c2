// Package blobstore implements content-addressed blob storage on the local
// filesystem. A blob's path is its blake3 digest, so writing the same bytes
// twice converges on a single file and a digest can be handed out as a
// stable, immutable reference.
package blobstore

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"

	"github.com/cenkalti/backoff/v4"
	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/namecard/internal/storage"
	"github.com/zeebo/blake3"
)

const maxReadAttempts = 3

type BlobStore struct {
	Root string
	// MaxBytes bounds the size of a single blob; a Put over the bound fails
	// before anything touches the disk.
	MaxBytes int64
}

func New(root string, maxBytes int64) (bs storage.Storage, err error) {
	bs = &BlobStore{
		Root:     root,
		MaxBytes: maxBytes,
	}

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			log.Error().Msg("not a directory")
			err = storage.ErrNotDir
		}
		return
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, os.ModePerm)
	}

	if err != nil {
		log.Error().Err(err).Msg("internal error when setting up blob storage")
		err = storage.ErrInternal
	}

	return
}

// Digest names content without storing it. Callers comparing a stored
// reference against fresh bytes use this.
func Digest(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func (s *BlobStore) Put(content []byte) (digest string, err error) {
	if len(content) == 0 {
		return "", storage.ErrEmpty
	}
	if int64(len(content)) > s.MaxBytes {
		return "", storage.ErrTooLarge
	}

	digest = Digest(content)
	path := filepath.Join(s.Root, digest)

	if _, err = os.Stat(path); err == nil {
		// Already stored; content addressing makes this the same blob.
		return digest, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Error().Err(err).Msg("unknown filesystem error")
		return "", storage.ErrInternal
	}

	// Tmp file plus rename, so a concurrent Put of the same content never
	// observes a half-written blob under the final name.
	if err = atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		log.Error().Err(err).Msg("failed to write blob " + digest)
		return "", storage.ErrInternal
	}

	return digest, nil
}

// Get reads a blob back by digest. Transient filesystem failures are
// retried a bounded number of times; a missing blob is not.
func (s *BlobStore) Get(digest string) (content []byte, err error) {
	path := filepath.Join(s.Root, digest)

	op := func() error {
		content, err = os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			return backoff.Permanent(storage.ErrNotExist)
		}
		return err
	}

	err = backoff.Retry(op, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxReadAttempts-1))
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, storage.ErrNotExist
		}
		log.Error().Err(err).Msg("failed to read blob " + digest)
		return nil, storage.ErrInternal
	}

	return content, nil
}

func (s *BlobStore) Has(digest string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.Root, digest))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, storage.ErrInternal
}
