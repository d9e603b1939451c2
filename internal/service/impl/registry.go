package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/sidereusnuntius/namecard/internal/db"
	"github.com/sidereusnuntius/namecard/internal/domain"
	"github.com/sidereusnuntius/namecard/internal/service"
	"github.com/sidereusnuntius/namecard/internal/validate"
)

// Claim binds a handle to an identity. The check-then-bind runs under
// per-identity and per-handle locks, so two racing claims of the same handle
// see exactly one success; the unique indexes in the database are the
// cross-process backstop.
func (s *AppService) Claim(ctx context.Context, identity domain.Identity, handle string) error {
	identity = normalizeIdentity(identity)
	handle = validate.Normalize(handle)
	if err := validate.Handle(handle); err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidHandle, err)
	}

	unlockIdentity := s.locks.Lock(identityKey(identity))
	defer unlockIdentity()
	unlockHandle := s.locks.Lock(handleKey(handle))
	defer unlockHandle()

	return s.claimLocked(ctx, identity, handle)
}

func (s *AppService) claimLocked(ctx context.Context, identity domain.Identity, handle string) error {
	current, err := s.DB.HandleOf(ctx, identity)
	if err == nil {
		if current == handle {
			// Re-submitting an existing claim is a no-op success.
			return nil
		}
		return service.ErrAlreadyClaimed
	}
	if !errors.Is(err, db.ErrNotFound) {
		return err
	}

	if _, err = s.DB.OwnerOf(ctx, handle); err == nil {
		return service.ErrHandleTaken
	} else if !errors.Is(err, db.ErrNotFound) {
		return err
	}

	err = s.DB.InsertClaim(ctx, identity, handle)
	if errors.Is(err, db.ErrConflict) {
		return service.ErrHandleTaken
	}
	return err
}

func (s *AppService) OwnerOf(ctx context.Context, handle string) (domain.Identity, error) {
	handle = validate.Normalize(handle)
	identity, err := s.DB.OwnerOf(ctx, handle)
	if errors.Is(err, db.ErrNotFound) {
		return "", service.ErrNotFound
	}
	return identity, err
}

func (s *AppService) HandleOf(ctx context.Context, identity domain.Identity) (string, error) {
	handle, err := s.DB.HandleOf(ctx, normalizeIdentity(identity))
	if errors.Is(err, db.ErrNotFound) {
		return "", service.ErrNotFound
	}
	return handle, err
}
