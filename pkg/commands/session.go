package commands

import (
	"tableflip.dev/growth/pkg/app"
	"tableflip.dev/growth/pkg/assets"
	"tableflip.dev/growth/pkg/commands/options"
	"tableflip.dev/growth/pkg/store"
)

var config store.Config

func loadConfig() (store.Config, error) {
	if config != nil {
		return config, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	config = cfg
	return cfg, nil
}

// session is what a command needs to talk to the journal.
type session struct {
	config  store.Config
	store   *store.Store
	service *app.Service
}

// openSession loads the store named by the config. When on is set the
// service clock is moved to the --on date.
func openSession(on *options.OnOptions) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	s, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	svc := &app.Service{Persistence: s}
	if on != nil {
		clock, err := on.Clock()
		if err != nil {
			return nil, err
		}
		svc.Now = clock
	}
	return &session{config: cfg, store: s, service: svc}, nil
}

func (s *session) fetcher() *assets.Fetcher {
	if !s.config.Animations() {
		return nil
	}
	return assets.NewFetcher()
}
