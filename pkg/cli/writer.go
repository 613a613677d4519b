package cli

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/obinexus/plp/pkg/phenotrie"
)

// Writer dumps the trie's enumeration to a file in the output directory.
type Writer interface {
	Write(trie *phenotrie.Trie, directory string, cmd *IndexCmd) error
}

func newWriter(format string) Writer {
	switch format {
	case "json":
		return JsonWriter{}
	case "tsv":
		return CsvWriter{isTSV: true}
	default:
		return CsvWriter{}
	}
}

type JsonWriter struct{}

func (w JsonWriter) Write(trie *phenotrie.Trie, directory string, cmd *IndexCmd) error {
	path := filepath.Join(directory, "indexed.json")
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	records := collectRecords(trie, cmd)

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"path": path, "tokens": len(records)}).Info("wrote indexed tokens")
	return nil
}

type CsvWriter struct {
	isTSV bool
}

func (w CsvWriter) Write(trie *phenotrie.Trie, directory string, cmd *IndexCmd) error {
	name := "indexed.csv"
	separator := ','
	if w.isTSV {
		name = "indexed.tsv"
		separator = '\t'
	}

	path := filepath.Join(directory, name)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = separator
	defer writer.Flush()

	headers := outputColumns(cmd)
	if err := writer.Write(headers); err != nil {
		return err
	}

	count := 0
	records := collectRecords(trie, cmd)
	for _, record := range records {
		// keep the fields in the same order as the headers
		row := make([]string, 0, len(headers))
		for _, header := range headers {
			row = append(row, record[header])
		}
		if err := writer.Write(row); err != nil {
			return err
		}
		count++
	}

	logrus.WithFields(logrus.Fields{"path": path, "tokens": count}).Info("wrote indexed tokens")
	return nil
}

func outputColumns(cmd *IndexCmd) []string {
	return []string{cmd.TokenKey, cmd.ScoreKey, "visits", cmd.QualKey, cmd.MetaKey}
}

// collectRecords flattens the enumeration into writable records; the
// lexicographic order of Enumerate carries through to the output.
func collectRecords(trie *phenotrie.Trie, cmd *IndexCmd) []Record {
	records := make([]Record, 0, trie.Len())
	trie.Enumerate(func(token string, p *phenotrie.Phenotype) {
		meta := ""
		if p.Meta != nil {
			meta = *p.Meta
		}
		records = append(records, Record{
			cmd.TokenKey: token,
			cmd.ScoreKey: strconv.FormatFloat(p.Score, 'f', -1, 64),
			"visits":     strconv.FormatUint(p.Visits, 10),
			cmd.QualKey:  p.Qual.String(),
			cmd.MetaKey:  meta,
		})
	})
	return records
}
