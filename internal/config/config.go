package config

import (
	"errors"
	"net/url"

	"github.com/spf13/viper"
)

type Configuration struct {
	// FsRoot is the root of the directory on which content-addressed blobs,
	// such as avatars, are stored.
	FsRoot string
	// PagesDir is the directory the publication queue materializes static
	// {handle}.html artifacts into, for consumption by a static host.
	PagesDir string
	// StaticDir is the directory on which the favicon, stylesheet and other
	// static files can be found.
	StaticDir string
	// DbUrl is the path to the database file.
	DbUrl string
	// QueueDbUrl is the path to the task queue database file, kept separate
	// so queue churn never contends with registry writes.
	QueueDbUrl string
	// MigrationsFolder holds the golang-migrate SQL files.
	MigrationsFolder string
	// MaxBlobBytes bounds the size of a single stored blob.
	MaxBlobBytes int64
	// SessionKey is the cookie session secret. The session only carries the
	// wallet address the auth collaborator already verified.
	SessionKey string
	// Debug, if true, will make the application log all HTTP requests and
	// other events.
	Debug bool
	Port  uint16
	Https bool
	// The name of the host serving the public pages.
	Domain string
	// Url is the base url public pages hang off of; a claimed handle
	// resolves at Url/{handle}.html.
	Url *url.URL
}

// ReadConfig loads the configuration file, if one exists, and applies
// environment overrides prefixed with NAMECARD_.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("namecard")
	v.AutomaticEnv()

	v.SetDefault("fsroot", "blobs")
	v.SetDefault("pagesdir", "pages")
	v.SetDefault("staticdir", "static")
	v.SetDefault("dburl", "namecard.db")
	v.SetDefault("queuedburl", "queue.db")
	v.SetDefault("migrationsfolder", "migrations")
	v.SetDefault("maxblobbytes", int64(50*1024*1024))
	v.SetDefault("port", 8080)
	v.SetDefault("https", true)
	v.SetDefault("domain", "localhost")

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
	}

	cfg := Configuration{
		FsRoot:           v.GetString("fsroot"),
		PagesDir:         v.GetString("pagesdir"),
		StaticDir:        v.GetString("staticdir"),
		DbUrl:            v.GetString("dburl"),
		QueueDbUrl:       v.GetString("queuedburl"),
		MigrationsFolder: v.GetString("migrationsfolder"),
		MaxBlobBytes:     v.GetInt64("maxblobbytes"),
		SessionKey:       v.GetString("sessionkey"),
		Debug:            v.GetBool("debug"),
		Port:             v.GetUint16("port"),
		Https:            v.GetBool("https"),
		Domain:           v.GetString("domain"),
	}

	scheme := "https"
	if !cfg.Https {
		scheme = "http"
	}
	cfg.Url, err = url.Parse(scheme + "://" + cfg.Domain)
	return cfg, err
}
