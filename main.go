package main

import (
	"os"

	"searchagent/cli"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("searchagent failed")
		os.Exit(1)
	}
}
