package phenotrie

import (
	"fmt"
	"math/bits"
	"strings"
)

// Qual is a set of qualitative flags attached to a phenotype. Reinsertion
// of a token overwrites the whole set; flags are never merged.
type Qual uint32

const (
	QualResilient Qual = 1 << iota
	QualCreative
	QualAnxious
	QualOptimist
)

// QualNone is the empty flag set.
const QualNone Qual = 0

var qualNames = []struct {
	flag Qual
	name string
}{
	{QualResilient, "RESILIENT"},
	{QualCreative, "CREATIVE"},
	{QualAnxious, "ANXIOUS"},
	{QualOptimist, "OPTIMIST"},
}

// Has reports whether every flag in f is set in q.
func (q Qual) Has(f Qual) bool {
	return q&f == f
}

// With returns q with the flags in f added.
func (q Qual) With(f Qual) Qual {
	return q | f
}

// Count returns the number of set flags.
func (q Qual) Count() int {
	return bits.OnesCount32(uint32(q))
}

func (q Qual) String() string {
	if q == QualNone {
		return "NONE"
	}
	names := []string{}
	for _, qn := range qualNames {
		if q.Has(qn.flag) {
			names = append(names, qn.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseQual parses a |-separated list of flag names, case-insensitively.
// An empty string parses to QualNone.
func ParseQual(s string) (Qual, error) {
	q := QualNone
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" || strings.EqualFold(part, "NONE") {
			continue
		}
		matched := false
		for _, qn := range qualNames {
			if strings.EqualFold(part, qn.name) {
				q = q.With(qn.flag)
				matched = true
				break
			}
		}
		if !matched {
			return QualNone, fmt.Errorf("unknown qual flag: %q", part)
		}
	}
	return q, nil
}
