package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const (
	MaterializeQueue = "Materialize"
)

type MaterializeJob struct {
	Handle string
}

func (j MaterializeJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        MaterializeQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}
