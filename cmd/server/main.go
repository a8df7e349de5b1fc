package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/FallenAngelllll/stellar-burgers/cmd/config"
	"github.com/FallenAngelllll/stellar-burgers/internal/utils"
)

type serverConfig struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
}

func main() {
	utils.LoadConfig()

	var cfg serverConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logrus.WithError(err).Fatal("failed to read server environment")
	}

	app, err := config.NewApp()
	if err != nil {
		logrus.WithError(err).Fatal("failed to build application")
	}

	if err := app.Listen(cfg.ListenAddr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
