package core

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/namecard/internal/db"
	"github.com/sidereusnuntius/namecard/internal/domain"
	"github.com/sidereusnuntius/namecard/internal/service"
	"github.com/sidereusnuntius/namecard/internal/storage"
	"github.com/sidereusnuntius/namecard/internal/validate"
)

// Resolve composes the registry, record and blob lookups into the public
// entry for a handle. Anything short of a claimed handle with a committed
// version resolves to ErrNotFound: a malformed handle, an unclaimed one and
// a claim still waiting on its first publication all look the same from
// outside.
func (s *AppService) Resolve(ctx context.Context, handle string) (domain.PublicationEntry, error) {
	handle = validate.Normalize(handle)
	if err := validate.Handle(handle); err != nil {
		return domain.PublicationEntry{}, service.ErrNotFound
	}

	record, err := s.DB.CurrentProfile(ctx, handle)
	if errors.Is(err, db.ErrNotFound) {
		return domain.PublicationEntry{}, service.ErrNotFound
	} else if err != nil {
		return domain.PublicationEntry{}, err
	}

	owner, err := s.DB.OwnerOf(ctx, handle)
	if err != nil {
		return domain.PublicationEntry{}, err
	}

	return domain.PublicationEntry{
		Record:    record,
		Owner:     owner,
		PublicURL: s.PublicURL(handle),
	}, nil
}

func (s *AppService) History(ctx context.Context, handle string) ([]domain.ProfileRecord, error) {
	handle = validate.Normalize(handle)
	if err := validate.Handle(handle); err != nil {
		return nil, service.ErrNotFound
	}

	records, err := s.DB.History(ctx, handle)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, service.ErrNotFound
	}
	return records, nil
}

func (s *AppService) Avatar(ctx context.Context, digest string) ([]byte, domain.BlobMeta, error) {
	meta, err := s.DB.GetBlobMeta(ctx, digest)
	if errors.Is(err, db.ErrNotFound) {
		return nil, domain.BlobMeta{}, service.ErrNotFound
	} else if err != nil {
		return nil, domain.BlobMeta{}, err
	}

	content, err := s.Storage.Get(digest)
	if errors.Is(err, storage.ErrNotExist) {
		return nil, domain.BlobMeta{}, service.ErrNotFound
	}
	return content, meta, err
}

// Autofill mirrors the connect-wallet convenience of the form layer: a
// returning identity gets its current profile back, a new one gets demo
// fields to edit.
func (s *AppService) Autofill(ctx context.Context, identity domain.Identity) (domain.Submission, error) {
	identity = normalizeIdentity(identity)

	handle, err := s.DB.HandleOf(ctx, identity)
	if errors.Is(err, db.ErrNotFound) {
		return demoSubmission(), nil
	} else if err != nil {
		return domain.Submission{}, err
	}

	record, err := s.DB.CurrentProfile(ctx, handle)
	if errors.Is(err, db.ErrNotFound) {
		// Claimed but never published; only the handle is fixed.
		sub := demoSubmission()
		sub.Handle = handle
		return sub, nil
	} else if err != nil {
		return domain.Submission{}, err
	}

	return domain.Submission{
		Handle:      handle,
		Title:       record.Title,
		Description: record.Description,
		Email:       record.Email,
		Links:       record.Links,
	}, nil
}

func demoSubmission() domain.Submission {
	return domain.Submission{
		Title:       "I'm a digital nomad, freelancer, and front-end developer.",
		Description: "Tell visitors who you are and what you work on.",
		Links: []domain.SocialLink{
			{Platform: domain.PlatformX, URL: "https://x.com/yourname"},
			{Platform: domain.PlatformGithub, URL: "https://github.com/yourname"},
		},
	}
}
