package impl

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/namecard/internal/db/impl/queries"
	"github.com/sidereusnuntius/namecard/internal/domain"
)

// CreateClaimWithVersion binds the handle and writes profile version 1 in one
// transaction. Either both rows commit or neither does, so a claim can never
// outlive a failed first publication.
func (d *dbImpl) CreateClaimWithVersion(ctx context.Context, identity domain.Identity, handle string, core domain.ProfileCore, links []domain.SocialLink) (version int64, err error) {
	log.Debug().
		Str("handle", handle).
		Str("identity", identity).
		Msg("claiming handle with first profile version")

	err = d.WithTx(func(tx *queries.Queries) error {
		now := time.Now().Unix()
		handleID, err := tx.InsertClaim(ctx, queries.InsertClaimParams{
			Handle:   handle,
			Identity: identity,
			Created:  now,
		})
		if err != nil {
			return err
		}

		version = 1
		return insertVersionTx(tx, ctx, handleID, version, now, core, links)
	})
	return version, d.HandleError(err)
}

// AppendVersion writes the next version for an already claimed handle.
// The number is computed inside the transaction, so racing appends for the
// same handle serialize and the later commit wins.
func (d *dbImpl) AppendVersion(ctx context.Context, handle string, core domain.ProfileCore, links []domain.SocialLink) (version int64, err error) {
	err = d.WithTx(func(tx *queries.Queries) error {
		claim, err := tx.GetClaim(ctx, handle)
		if err != nil {
			return err
		}

		last, err := tx.GetLastVersion(ctx, claim.ID)
		if err != nil {
			return err
		}

		version = last + 1
		return insertVersionTx(tx, ctx, claim.ID, version, time.Now().Unix(), core, links)
	})
	return version, d.HandleError(err)
}

func insertVersionTx(tx *queries.Queries, ctx context.Context, handleID, version, created int64, core domain.ProfileCore, links []domain.SocialLink) error {
	versionID, err := tx.InsertVersion(ctx, queries.InsertVersionParams{
		HandleID:    handleID,
		Version:     version,
		Title:       core.Title,
		Description: core.Description,
		Email:       core.Email,
		AvatarRef:   core.AvatarRef,
		Created:     created,
	})
	if err != nil {
		return err
	}

	for i, link := range links {
		err = tx.InsertLink(ctx, queries.InsertLinkParams{
			VersionID: versionID,
			Position:  int64(i),
			Platform:  link.Platform,
			URL:       link.URL,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *dbImpl) CurrentProfile(ctx context.Context, handle string) (domain.ProfileRecord, error) {
	row, err := d.queries.GetCurrentVersion(ctx, handle)
	if err != nil {
		return domain.ProfileRecord{}, d.HandleError(err)
	}

	links, err := d.queries.GetLinks(ctx, row.ID)
	if err != nil {
		return domain.ProfileRecord{}, d.HandleError(err)
	}

	return toRecord(handle, row, links), nil
}

func (d *dbImpl) History(ctx context.Context, handle string) ([]domain.ProfileRecord, error) {
	rows, err := d.queries.ListVersions(ctx, handle)
	if err != nil {
		return nil, d.HandleError(err)
	}

	records := make([]domain.ProfileRecord, 0, len(rows))
	for _, row := range rows {
		links, err := d.queries.GetLinks(ctx, row.ID)
		if err != nil {
			return nil, d.HandleError(err)
		}
		records = append(records, toRecord(handle, row, links))
	}
	return records, nil
}

func toRecord(handle string, row queries.VersionRow, links []queries.LinkRow) domain.ProfileRecord {
	record := domain.ProfileRecord{
		ProfileCore: domain.ProfileCore{
			Title:       row.Title,
			Description: row.Description,
			Email:       row.Email,
			AvatarRef:   row.AvatarRef,
		},
		Handle:  handle,
		Version: row.Version,
		Created: row.Created,
	}
	for _, link := range links {
		record.Links = append(record.Links, domain.SocialLink{
			Platform: link.Platform,
			URL:      link.URL,
		})
	}
	return record
}
