package main

import (
	"errors"
	"fmt"
	"gametree/config"
	"gametree/experiments"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	flags := config.Flags(os.Args[0])
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [game files...]\n", os.Args[0])
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfgPath, _ := flags.GetString("config")
	cfg, err := config.Setup(cfgPath, flags)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if err := experiments.Run(cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("run did not complete cleanly")
		os.Exit(1)
	}
}
