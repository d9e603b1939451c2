package impl

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/namecard/internal/db/impl/queries"
	"github.com/sidereusnuntius/namecard/internal/domain"
)

func (d *dbImpl) InsertClaim(ctx context.Context, identity domain.Identity, handle string) error {
	log.Debug().
		Str("handle", handle).
		Str("identity", identity).
		Msg("binding handle")
	_, err := d.queries.InsertClaim(ctx, queries.InsertClaimParams{
		Handle:   handle,
		Identity: identity,
		Created:  time.Now().Unix(),
	})
	return d.HandleError(err)
}

func (d *dbImpl) OwnerOf(ctx context.Context, handle string) (domain.Identity, error) {
	identity, err := d.queries.GetOwner(ctx, handle)
	return identity, d.HandleError(err)
}

func (d *dbImpl) HandleOf(ctx context.Context, identity domain.Identity) (string, error) {
	handle, err := d.queries.GetHandleByIdentity(ctx, identity)
	return handle, d.HandleError(err)
}
