package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/namecard/internal/db"
	"github.com/sidereusnuntius/namecard/internal/domain"
	"github.com/sidereusnuntius/namecard/internal/service"
	"github.com/sidereusnuntius/namecard/internal/validate"
)

// Publish runs the pipeline for one submission: validate everything first,
// store the avatar blob, then claim or confirm the handle and append the
// profile version. The avatar write happens before any registry mutation,
// and a first-time claim commits in the same transaction as version 1, so a
// failure at any step leaves the registry and record store untouched. An
// orphaned blob is acceptable; an orphaned claim is not.
func (s *AppService) Publish(ctx context.Context, identity domain.Identity, sub domain.Submission) (domain.Receipt, error) {
	identity = normalizeIdentity(identity)
	handle := validate.Normalize(sub.Handle)
	if err := validate.Handle(handle); err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %s", service.ErrInvalidHandle, err)
	}
	if err := validateProfile(sub); err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %s", service.ErrValidation, err)
	}

	core := domain.ProfileCore{
		Title:       sub.Title,
		Description: sub.Description,
		Email:       sub.Email,
	}

	if len(sub.AvatarBytes) > 0 {
		ref, err := s.storeAvatar(ctx, sub.AvatarBytes)
		if err != nil {
			return domain.Receipt{}, err
		}
		core.AvatarRef = ref
	}

	unlockIdentity := s.locks.Lock(identityKey(identity))
	defer unlockIdentity()
	unlockHandle := s.locks.Lock(handleKey(handle))
	defer unlockHandle()

	version, err := s.commitVersion(ctx, identity, handle, core, sub.Links)
	if err != nil {
		return domain.Receipt{}, err
	}

	if err = s.queue.Materialize(handle); err != nil {
		// The version is committed and resolvable; only the static artifact
		// is stale until the next publication.
		log.Warn().Err(err).Str("handle", handle).Msg("failed to enqueue materialization")
	}

	return domain.Receipt{
		Handle:    handle,
		Version:   version,
		PublicURL: s.PublicURL(handle),
	}, nil
}

func (s *AppService) storeAvatar(ctx context.Context, content []byte) (string, error) {
	digest, err := s.Storage.Put(content)
	if err != nil {
		return "", err
	}

	err = s.DB.SaveBlobMeta(ctx, domain.BlobMeta{
		Digest:    digest,
		MimeType:  http.DetectContentType(content),
		SizeBytes: int64(len(content)),
	})
	return digest, err
}

func (s *AppService) commitVersion(ctx context.Context, identity domain.Identity, handle string, core domain.ProfileCore, links []domain.SocialLink) (int64, error) {
	owner, err := s.DB.OwnerOf(ctx, handle)
	switch {
	case err == nil && owner != identity:
		return 0, service.ErrHandleTaken
	case err == nil:
		return s.DB.AppendVersion(ctx, handle, core, links)
	case errors.Is(err, db.ErrNotFound):
		if _, herr := s.DB.HandleOf(ctx, identity); herr == nil {
			return 0, service.ErrAlreadyClaimed
		} else if !errors.Is(herr, db.ErrNotFound) {
			return 0, herr
		}
		version, cerr := s.DB.CreateClaimWithVersion(ctx, identity, handle, core, links)
		if errors.Is(cerr, db.ErrConflict) {
			return 0, service.ErrHandleTaken
		}
		return version, cerr
	default:
		return 0, err
	}
}

// UpdateProfile appends a version to a handle the identity already owns.
// Unlike Publish it never claims; an unknown handle is ErrNotFound and a
// foreign one is ErrNotOwner, with the record left unchanged either way.
func (s *AppService) UpdateProfile(ctx context.Context, handle string, identity domain.Identity, sub domain.Submission) (int64, error) {
	identity = normalizeIdentity(identity)
	handle = validate.Normalize(handle)
	if err := validate.Handle(handle); err != nil {
		return 0, fmt.Errorf("%w: %s", service.ErrInvalidHandle, err)
	}
	if err := validateProfile(sub); err != nil {
		return 0, fmt.Errorf("%w: %s", service.ErrValidation, err)
	}

	owner, err := s.DB.OwnerOf(ctx, handle)
	if errors.Is(err, db.ErrNotFound) {
		return 0, service.ErrNotFound
	} else if err != nil {
		return 0, err
	}
	if owner != identity {
		return 0, service.ErrNotOwner
	}

	core := domain.ProfileCore{
		Title:       sub.Title,
		Description: sub.Description,
		Email:       sub.Email,
	}
	if len(sub.AvatarBytes) > 0 {
		if core.AvatarRef, err = s.storeAvatar(ctx, sub.AvatarBytes); err != nil {
			return 0, err
		}
	}

	unlockHandle := s.locks.Lock(handleKey(handle))
	defer unlockHandle()

	version, err := s.DB.AppendVersion(ctx, handle, core, sub.Links)
	if err == nil {
		if qerr := s.queue.Materialize(handle); qerr != nil {
			log.Warn().Err(qerr).Str("handle", handle).Msg("failed to enqueue materialization")
		}
	}
	return version, err
}

func validateProfile(sub domain.Submission) error {
	errs := []error{
		validate.Title(sub.Title),
		validate.Description(sub.Description),
		validate.Email(sub.Email),
	}
	for _, link := range sub.Links {
		errs = append(errs, validate.Link(link.Platform, link.URL))
	}
	return errors.Join(errs...)
}
