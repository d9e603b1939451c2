package db

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/namecard/internal/domain"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a uniqueness violation: the handle or the identity
	// is already bound.
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal error")
)

// DB is the persistence boundary of the registry. Handles are stored case
// normalized; callers normalize before reaching this interface.
type DB interface {
	Registry
	Profiles
	Blobs
}

type Registry interface {
	// InsertClaim binds a handle to an identity. It fails with ErrConflict
	// if either side of the binding already exists.
	InsertClaim(ctx context.Context, identity domain.Identity, handle string) error
	// OwnerOf returns the identity bound to the handle, or ErrNotFound.
	OwnerOf(ctx context.Context, handle string) (domain.Identity, error)
	// HandleOf returns the handle bound to the identity, or ErrNotFound.
	HandleOf(ctx context.Context, identity domain.Identity) (string, error)
}

type Profiles interface {
	// CreateClaimWithVersion claims the handle and writes profile version 1
	// in a single transaction, so a failed first publication never leaves a
	// claim without a record.
	CreateClaimWithVersion(ctx context.Context, identity domain.Identity, handle string, core domain.ProfileCore, links []domain.SocialLink) (int64, error)
	// AppendVersion writes the next profile version for an already claimed
	// handle and returns its number.
	AppendVersion(ctx context.Context, handle string, core domain.ProfileCore, links []domain.SocialLink) (int64, error)
	// CurrentProfile returns the latest committed version, or ErrNotFound if
	// the handle is unclaimed or has no version yet.
	CurrentProfile(ctx context.Context, handle string) (domain.ProfileRecord, error)
	// History returns all versions of the handle's profile, newest first.
	History(ctx context.Context, handle string) ([]domain.ProfileRecord, error)
}

type Blobs interface {
	// SaveBlobMeta records metadata for a stored blob. Saving the same
	// digest twice is a no-op; blobs are write-once.
	SaveBlobMeta(ctx context.Context, meta domain.BlobMeta) error
	GetBlobMeta(ctx context.Context, digest string) (domain.BlobMeta, error)
}
