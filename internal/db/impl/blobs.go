package impl

import (
	"context"
	"time"

	"github.com/sidereusnuntius/namecard/internal/db/impl/queries"
	"github.com/sidereusnuntius/namecard/internal/domain"
)

func (d *dbImpl) SaveBlobMeta(ctx context.Context, meta domain.BlobMeta) error {
	created := meta.Created
	if created == 0 {
		created = time.Now().Unix()
	}
	err := d.queries.InsertBlob(ctx, queries.InsertBlobParams{
		Digest:    meta.Digest,
		MimeType:  meta.MimeType,
		SizeBytes: meta.SizeBytes,
		Created:   created,
	})
	return d.HandleError(err)
}

func (d *dbImpl) GetBlobMeta(ctx context.Context, digest string) (domain.BlobMeta, error) {
	row, err := d.queries.GetBlob(ctx, digest)
	if err != nil {
		return domain.BlobMeta{}, d.HandleError(err)
	}
	return domain.BlobMeta{
		Digest:    row.Digest,
		MimeType:  row.MimeType,
		SizeBytes: row.SizeBytes,
		Created:   row.Created,
	}, nil
}
