package phenotrie

import "fmt"

// Phenotype is the mutable payload record owned by a terminal trie node.
// Score, Qual and Meta are overwritten wholesale when the same token is
// inserted again; Visits only ever grows, one per successful lookup.
type Phenotype struct {
	Score  float64
	Visits uint64
	Qual   Qual
	Meta   *string // nil means no label, distinct from an empty one
}

func newPhenotype(score float64, qual Qual, meta *string) *Phenotype {
	return &Phenotype{
		Score: score,
		Qual:  qual,
		Meta:  cloneMeta(meta),
	}
}

// overwrite replaces everything but the visit counter.
func (p *Phenotype) overwrite(score float64, qual Qual, meta *string) {
	p.Score = score
	p.Qual = qual
	p.Meta = cloneMeta(meta)
}

func (p *Phenotype) String() string {
	meta := "NULL"
	if p.Meta != nil {
		meta = *p.Meta
	}
	return fmt.Sprintf("score=%.3f visits=%d qual=%s meta=%s", p.Score, p.Visits, p.Qual, meta)
}

// cloneMeta copies the label so the payload owns its own storage and a
// caller holding the original pointer cannot mutate the trie's state.
func cloneMeta(meta *string) *string {
	if meta == nil {
		return nil
	}
	m := *meta
	return &m
}
