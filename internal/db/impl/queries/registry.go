package queries

import "context"

const insertClaim = `INSERT INTO handles(handle, identity, created) VALUES (?, ?, ?)`

type InsertClaimParams struct {
	Handle   string
	Identity string
	Created  int64
}

func (q *Queries) InsertClaim(ctx context.Context, arg InsertClaimParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, insertClaim, arg.Handle, arg.Identity, arg.Created)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const getOwner = `SELECT identity FROM handles WHERE handle = ?`

func (q *Queries) GetOwner(ctx context.Context, handle string) (string, error) {
	var identity string
	err := q.db.QueryRowContext(ctx, getOwner, handle).Scan(&identity)
	return identity, err
}

const getHandleByIdentity = `SELECT handle FROM handles WHERE identity = ?`

func (q *Queries) GetHandleByIdentity(ctx context.Context, identity string) (string, error) {
	var handle string
	err := q.db.QueryRowContext(ctx, getHandleByIdentity, identity).Scan(&handle)
	return handle, err
}

const getClaim = `SELECT id, identity, created FROM handles WHERE handle = ?`

type GetClaimRow struct {
	ID       int64
	Identity string
	Created  int64
}

func (q *Queries) GetClaim(ctx context.Context, handle string) (GetClaimRow, error) {
	var row GetClaimRow
	err := q.db.QueryRowContext(ctx, getClaim, handle).Scan(&row.ID, &row.Identity, &row.Created)
	return row, err
}
