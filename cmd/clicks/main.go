package main

import (
	"context"
	"errors"
	"os"

	"github.com/clicks-pr/clicks-core/internal/app"
	"github.com/clicks-pr/clicks-core/internal/config"
	"github.com/clicks-pr/clicks-core/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
