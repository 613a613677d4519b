package cli

import (
	"github.com/obinexus/plp/pkg/phenotrie"
)

// CLI is the top-level command surface parsed by kong.
var CLI struct {
	Index   IndexCmd   `cmd:"" help:"Index token records into a phenotype trie"`
	Observe ObserveCmd `cmd:"" help:"Sweep the coherence lens over a range of inputs"`
}

// Context carries the shared trie into the commands.
type Context struct {
	Trie *phenotrie.Trie
}
