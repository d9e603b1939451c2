package main

import (
	"context"
	"encoding/gob"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/namecard/internal/config"
	db "github.com/sidereusnuntius/namecard/internal/db/impl"
	"github.com/sidereusnuntius/namecard/internal/initialization"
	"github.com/sidereusnuntius/namecard/internal/queue"
	service "github.com/sidereusnuntius/namecard/internal/service/impl"
	"github.com/sidereusnuntius/namecard/internal/state"
	"github.com/sidereusnuntius/namecard/internal/storage/blobstore"
	"github.com/sidereusnuntius/namecard/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	config, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	d, err := initialization.OpenDB(config.DbUrl)
	if err != nil {
		log.Fatal(err)
	}
	zero.Info().Msg("database connection established")

	if os.Getenv("SETUP") != "" {
		err = initialization.SetupDB(&config, d, config.MigrationsFolder, config.DbUrl)
		if err != nil {
			log.Fatal(err)
		}
	}

	q, err := initialization.InitQueue(&config)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to connect with backlite database")
		os.Exit(1)
	}

	gob.Register(web.Session{})
	manager := scs.NewCookieManager(config.SessionKey)

	store, err := blobstore.New(config.FsRoot, config.MaxBlobBytes)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to set up blob storage")
		os.Exit(1)
	}

	dd := db.New(config, d)

	state := state.State{
		DB:      dd,
		Storage: store,
		Config:  config,
	}

	queue := queue.New(context.Background(), dd, config, q)
	service := service.New(&state, queue)

	handler := web.New(&config, service, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: router,
	}

	zero.Info().Uint16("port", config.Port).Msg("started server")
	err = s.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}
