package core

import (
	"net/url"
	"strings"

	"codeberg.org/gruf/go-mutexes"
	"github.com/sidereusnuntius/namecard/internal/config"
	"github.com/sidereusnuntius/namecard/internal/db"
	"github.com/sidereusnuntius/namecard/internal/queue"
	"github.com/sidereusnuntius/namecard/internal/service"
	"github.com/sidereusnuntius/namecard/internal/state"
	"github.com/sidereusnuntius/namecard/internal/storage"
)

type AppService struct {
	Config  config.Configuration
	DB      db.DB
	Storage storage.Storage
	queue   queue.Publisher
	locks   *mutexes.MutexMap
}

func New(state *state.State, queue queue.Publisher) service.Service {
	locks := mutexes.MutexMap{}
	return &AppService{
		Config:  state.Config,
		DB:      state.DB,
		Storage: state.Storage,
		queue:   queue,
		locks:   &locks,
	}
}

// PublicURL derives the page a claimed handle resolves at.
func (s *AppService) PublicURL(handle string) *url.URL {
	return s.Config.Url.JoinPath(handle + ".html")
}

func normalizeIdentity(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

// Key prefixes for the claim critical section. Identity before handle at
// every lock site, so two claims can never deadlock on each other.
func identityKey(identity string) string {
	return "i:" + identity
}

func handleKey(handle string) string {
	return "h:" + handle
}
