package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/sidereusnuntius/namecard/internal/domain"
)

var (
	// ErrInvalidHandle reports a handle that fails format validation.
	ErrInvalidHandle = errors.New("invalid handle")
	// ErrHandleTaken reports a handle already bound to another identity.
	ErrHandleTaken = errors.New("handle already taken")
	// ErrAlreadyClaimed reports an identity that already owns a different
	// handle; claims are one per identity and permanent.
	ErrAlreadyClaimed = errors.New("identity already claimed a handle")
	// ErrNotOwner reports a mutation attempted by a non-owning identity.
	ErrNotOwner = errors.New("not the handle owner")
	ErrNotFound = errors.New("not found")
	// ErrValidation reports a profile field that fails its length or shape
	// constraints.
	ErrValidation = errors.New("invalid profile")
)

type Service interface {
	// Claim binds the handle to the identity. Re-claiming one's own handle
	// is a no-op success; everything else that conflicts fails with
	// ErrHandleTaken or ErrAlreadyClaimed. The bound handle never changes
	// hands afterwards.
	Claim(ctx context.Context, identity domain.Identity, handle string) error
	OwnerOf(ctx context.Context, handle string) (domain.Identity, error)
	HandleOf(ctx context.Context, identity domain.Identity) (string, error)

	// Publish runs the full pipeline for a submission: validate, store the
	// avatar, claim or confirm ownership of the handle, append a profile
	// version. On any failure the registry and record store are left as
	// they were.
	Publish(ctx context.Context, identity domain.Identity, sub domain.Submission) (domain.Receipt, error)

	// UpdateProfile appends a profile version to a handle the identity
	// already owns. It fails with ErrNotFound for an unclaimed handle and
	// ErrNotOwner for a foreign one, leaving the record unchanged.
	UpdateProfile(ctx context.Context, handle string, identity domain.Identity, sub domain.Submission) (int64, error)

	// Resolve returns the publication entry for a handle, or ErrNotFound
	// for anything that is not a claimed handle with at least one committed
	// profile version. It never mutates state.
	Resolve(ctx context.Context, handle string) (domain.PublicationEntry, error)

	// History lists the handle's profile versions, newest first.
	History(ctx context.Context, handle string) ([]domain.ProfileRecord, error)

	// Avatar returns the raw bytes and metadata of a stored blob.
	Avatar(ctx context.Context, digest string) ([]byte, domain.BlobMeta, error)

	// Autofill returns a submission prefilled for the connected identity:
	// the current profile when one exists, demo fields otherwise.
	Autofill(ctx context.Context, identity domain.Identity) (domain.Submission, error)

	// PublicURL derives the resolvable page URL for a handle.
	PublicURL(handle string) *url.URL
}
