// ## Overview
// Package phenotrie implements a prefix tree keyed by single bytes where
// every node stores its children in a balanced (AVL) map and terminal
// nodes own a mutable phenotype record: a quantitative score, a visit
// counter, a set of qualitative flags and an optional meta label.
//
// Inserting an existing token overwrites its score, flags and label but
// keeps the visit counter; every successful lookup bumps the counter by
// one. Because children iterate in ascending byte order, enumeration
// yields stored tokens lexicographically.
//
// ## Example usage:
//
//	trie := phenotrie.New()
//
//	meta := "root concept"
//	trie.Insert("phenotype", 0.72, phenotrie.QualResilient|phenotrie.QualCreative, &meta)
//
//	if p, ok := trie.Lookup("phenotype"); ok {
//	    fmt.Println(p) // score=0.720 visits=1 qual=RESILIENT|CREATIVE meta=root concept
//	}
//
//	trie.Enumerate(func(token string, p *phenotrie.Phenotype) {
//	    fmt.Printf("%s -> %s\n", token, p)
//	})
//
// The trie is single-owner and not safe for concurrent use; wrap every
// operation in one external lock if it must be shared.
package phenotrie
