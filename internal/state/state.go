package state

import (
	"github.com/sidereusnuntius/namecard/internal/config"
	"github.com/sidereusnuntius/namecard/internal/db"
	"github.com/sidereusnuntius/namecard/internal/storage"
)

type State struct {
	DB      db.DB
	Storage storage.Storage
	Config  config.Configuration
}
