package queue

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/mikestefanello/backlite"
	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/namecard/internal/domain"
	"github.com/sidereusnuntius/namecard/internal/render"
)

func (q *pubQueueImpl) register() {
	materializeQueue := backlite.NewQueue[MaterializeJob](q.materialize())
	q.queues.Register(materializeQueue)
}

// materialize regenerates the static page for a handle from the latest
// committed profile version. Racing jobs for the same handle are harmless:
// each renders a committed version and the atomic rename makes the last
// writer win whole.
func (q *pubQueueImpl) materialize() func(context.Context, MaterializeJob) error {
	return func(ctx context.Context, task MaterializeJob) error {
		log.Debug().Str("handle", task.Handle).Msg("materializing page")

		owner, err := q.db.OwnerOf(ctx, task.Handle)
		if err != nil {
			return err
		}

		record, err := q.db.CurrentProfile(ctx, task.Handle)
		if err != nil {
			return err
		}

		page, err := render.Page(domain.PublicationEntry{
			Record:    record,
			Owner:     owner,
			PublicURL: q.config.Url.JoinPath(task.Handle + ".html"),
		})
		if err != nil {
			return err
		}

		if err = os.MkdirAll(q.config.PagesDir, os.ModePerm); err != nil {
			return err
		}

		path := filepath.Join(q.config.PagesDir, task.Handle+".html")
		return atomic.WriteFile(path, bytes.NewReader(page))
	}
}
