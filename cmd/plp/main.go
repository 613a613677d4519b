package main

import (
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/obinexus/plp/pkg/cli"
	"github.com/obinexus/plp/pkg/phenotrie"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())
	if err := ctx.Run(&cli.Context{Trie: phenotrie.New()}); err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}
