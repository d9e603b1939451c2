package domain

// BlobMeta describes a stored content-addressed blob. The digest is the
// blob's only name; two equal byte sequences always share one digest.
type BlobMeta struct {
	Digest    string
	MimeType  string
	SizeBytes int64
	Created   int64
}
