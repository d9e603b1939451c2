package queries

import "context"

const insertBlob = `INSERT INTO blobs(digest, mime_type, size_bytes, created) VALUES (?, ?, ?, ?)
ON CONFLICT(digest) DO NOTHING`

type InsertBlobParams struct {
	Digest    string
	MimeType  string
	SizeBytes int64
	Created   int64
}

func (q *Queries) InsertBlob(ctx context.Context, arg InsertBlobParams) error {
	_, err := q.db.ExecContext(ctx, insertBlob, arg.Digest, arg.MimeType, arg.SizeBytes, arg.Created)
	return err
}

const getBlob = `SELECT digest, mime_type, size_bytes, created FROM blobs WHERE digest = ?`

type BlobRow struct {
	Digest    string
	MimeType  string
	SizeBytes int64
	Created   int64
}

func (q *Queries) GetBlob(ctx context.Context, digest string) (BlobRow, error) {
	var row BlobRow
	err := q.db.QueryRowContext(ctx, getBlob, digest).Scan(&row.Digest, &row.MimeType, &row.SizeBytes, &row.Created)
	return row, err
}
