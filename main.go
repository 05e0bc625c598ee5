package main

import (
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"quote-engine/internal/config"
	"quote-engine/internal/handler"
	"quote-engine/internal/rateregistry"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	rateregistry.Configure(cfg.RateRegistryURL)

	h := handler.New(log)

	log.WithField("port", cfg.Port).Info("quote engine starting")
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Route); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}
