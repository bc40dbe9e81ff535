package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/shopswift/shopswift-api/internal/api"
	"github.com/shopswift/shopswift-api/internal/config"
	"github.com/shopswift/shopswift-api/internal/logger"
	"github.com/shopswift/shopswift-api/internal/repository/store"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	st, err := store.NewSeeded()
	if err != nil {
		return fmt.Errorf("failed to seed the store -> %w", err)
	}

	s := api.NewServer(conf, st)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
