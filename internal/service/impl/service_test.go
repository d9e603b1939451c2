package core

import (
	"context"
	"net/url"
	"os"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/namecard/internal/config"
	dbimpl "github.com/sidereusnuntius/namecard/internal/db/impl"
	"github.com/sidereusnuntius/namecard/internal/initialization"
	"github.com/sidereusnuntius/namecard/internal/service"
	"github.com/sidereusnuntius/namecard/internal/state"
	"github.com/sidereusnuntius/namecard/internal/storage"
	"github.com/sidereusnuntius/namecard/internal/storage/blobstore"
)

var svc service.Service
var appState state.State
var ctx = context.Background()

type stubQueue struct{}

func (stubQueue) Materialize(handle string) error { return nil }

func TestMain(m *testing.M) {
	hostname, _ := url.Parse("https://cards.test")
	cfg := config.Configuration{
		Domain:       "cards.test",
		Url:          hostname,
		MaxBlobBytes: 1 << 20,
	}

	d, err := initialization.OpenDB("file:servicetest?mode=memory&cache=shared")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open test database")
		return
	}
	d.SetMaxOpenConns(1)

	if err = initialization.SetupDB(&cfg, d, "../../../migrations", "servicetest"); err != nil {
		log.Fatal().Err(err).Msg("failed to run test migrations")
		return
	}

	dir, err := os.MkdirTemp(".", "blobs")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup tests")
		return
	}

	store, err := blobstore.New(dir, cfg.MaxBlobBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup blob store")
		return
	}

	appState = state.State{
		DB:      dbimpl.New(cfg, d),
		Storage: store,
		Config:  cfg,
	}
	svc = New(&appState, stubQueue{})

	code := m.Run()
	if err = os.RemoveAll(dir); err != nil {
		log.Fatal().Err(err).Msg("removal of temporary directory failed")
	}
	os.Exit(code)
}

// newServiceWith swaps the blob storage out, keeping the shared database.
func newServiceWith(st storage.Storage) service.Service {
	s := state.State{
		DB:      appState.DB,
		Storage: st,
		Config:  appState.Config,
	}
	return New(&s, stubQueue{})
}
