package queries

import "context"

const getLastVersion = `SELECT COALESCE(MAX(version), 0) FROM profile_versions WHERE handle_id = ?`

func (q *Queries) GetLastVersion(ctx context.Context, handleID int64) (int64, error) {
	var version int64
	err := q.db.QueryRowContext(ctx, getLastVersion, handleID).Scan(&version)
	return version, err
}

const insertVersion = `INSERT INTO profile_versions(handle_id, version, title, description, email, avatar_ref, created)
VALUES (?, ?, ?, ?, ?, ?, ?)`

type InsertVersionParams struct {
	HandleID    int64
	Version     int64
	Title       string
	Description string
	Email       string
	AvatarRef   string
	Created     int64
}

func (q *Queries) InsertVersion(ctx context.Context, arg InsertVersionParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, insertVersion,
		arg.HandleID, arg.Version, arg.Title, arg.Description, arg.Email, arg.AvatarRef, arg.Created)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const insertLink = `INSERT INTO social_links(version_id, position, platform, url) VALUES (?, ?, ?, ?)`

type InsertLinkParams struct {
	VersionID int64
	Position  int64
	Platform  string
	URL       string
}

func (q *Queries) InsertLink(ctx context.Context, arg InsertLinkParams) error {
	_, err := q.db.ExecContext(ctx, insertLink, arg.VersionID, arg.Position, arg.Platform, arg.URL)
	return err
}

const getCurrentVersion = `SELECT v.id, v.version, v.title, v.description, v.email, v.avatar_ref, v.created
FROM profile_versions v
JOIN handles h ON h.id = v.handle_id
WHERE h.handle = ?
ORDER BY v.version DESC
LIMIT 1`

type VersionRow struct {
	ID          int64
	Version     int64
	Title       string
	Description string
	Email       string
	AvatarRef   string
	Created     int64
}

func (q *Queries) GetCurrentVersion(ctx context.Context, handle string) (VersionRow, error) {
	var row VersionRow
	err := q.db.QueryRowContext(ctx, getCurrentVersion, handle).
		Scan(&row.ID, &row.Version, &row.Title, &row.Description, &row.Email, &row.AvatarRef, &row.Created)
	return row, err
}

const listVersions = `SELECT v.id, v.version, v.title, v.description, v.email, v.avatar_ref, v.created
FROM profile_versions v
JOIN handles h ON h.id = v.handle_id
WHERE h.handle = ?
ORDER BY v.version DESC`

func (q *Queries) ListVersions(ctx context.Context, handle string) ([]VersionRow, error) {
	rows, err := q.db.QueryContext(ctx, listVersions, handle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []VersionRow
	for rows.Next() {
		var row VersionRow
		if err := rows.Scan(&row.ID, &row.Version, &row.Title, &row.Description, &row.Email, &row.AvatarRef, &row.Created); err != nil {
			return nil, err
		}
		versions = append(versions, row)
	}
	return versions, rows.Err()
}

const getLinks = `SELECT platform, url FROM social_links WHERE version_id = ? ORDER BY position`

type LinkRow struct {
	Platform string
	URL      string
}

func (q *Queries) GetLinks(ctx context.Context, versionID int64) ([]LinkRow, error) {
	rows, err := q.db.QueryContext(ctx, getLinks, versionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []LinkRow
	for rows.Next() {
		var row LinkRow
		if err := rows.Scan(&row.Platform, &row.URL); err != nil {
			return nil, err
		}
		links = append(links, row)
	}
	return links, rows.Err()
}
