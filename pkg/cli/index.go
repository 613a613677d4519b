package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/obinexus/plp/pkg/phenotrie"
)

// IndexCmd ingests token records from CSV or JSON files into one trie,
// optionally runs lookups, then writes the full enumeration out.
type IndexCmd struct {
	Files    []string `arg:"" type:"existingfile" help:"Input files containing token records in CSV or JSON format"`
	TokenKey string   `help:"Column holding the token" default:"token"`
	ScoreKey string   `help:"Column holding the quantitative score" default:"score"`
	QualKey  string   `help:"Column holding the |-separated qualitative flags" default:"qual"`
	MetaKey  string   `help:"Column holding the optional meta label" default:"meta"`
	Lookup   []string `help:"Tokens to look up after indexing"`
	Format   string   `help:"Output format for the indexed tokens" enum:"csv,tsv,json" default:"csv"`
	Out      string   `help:"Directory for the indexed output" type:"existingdir" default:"."`
}

// Run executes the index command.
func (cmd *IndexCmd) Run(ctx *Context) error {
	for _, file := range cmd.Files {
		count, err := parseAndInsertTokens(ctx.Trie, cmd, file)
		if err != nil {
			return fmt.Errorf("indexing %s: %w", file, err)
		}
		logrus.WithFields(logrus.Fields{
			"file":    file,
			"records": count,
			"tokens":  ctx.Trie.Len(),
		}).Info("indexed")
	}

	for _, token := range cmd.Lookup {
		p, ok := ctx.Trie.Lookup(token)
		if !ok {
			logrus.WithField("token", token).Warn("token not found")
			continue
		}
		fmt.Printf("%s -> %s\n", token, p)
	}

	return newWriter(cmd.Format).Write(ctx.Trie, cmd.Out, cmd)
}

// parseAndInsertTokens parses one file and inserts every record into the trie.
func parseAndInsertTokens(trie *phenotrie.Trie, cmd *IndexCmd, file string) (int, error) {
	count := 0
	err := parseFile(cmd, file, func(entry *Entry) error {
		trie.Insert(entry.Token, entry.Score, entry.Qual, entry.Meta)
		count++
		return nil
	})
	return count, err
}
