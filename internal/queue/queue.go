package queue

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/namecard/internal/config"
	"github.com/sidereusnuntius/namecard/internal/db"
)

// Publisher enqueues materialization work: pre-rendering the static
// {handle}.html artifact a static host serves. Resolution never depends on
// it; the artifact is regenerated from the committed record after the fact.
type Publisher interface {
	Materialize(handle string) error
}

type pubQueueImpl struct {
	db     db.DB
	config config.Configuration
	queues *backlite.Client
}

func New(ctx context.Context, db db.DB, config config.Configuration, blClient *backlite.Client) Publisher {
	q := &pubQueueImpl{
		db:     db,
		config: config,
		queues: blClient,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started task queue")
	return q
}

func (q *pubQueueImpl) Materialize(handle string) error {
	log.Debug().Str("handle", handle).Msg("enqueing materialization task")
	task := MaterializeJob{
		Handle: handle,
	}
	_, err := q.queues.Add(task).Save()
	return err
}
