package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/obinexus/plp/pkg/phenotrie"
)

// Entry is one parsed token record ready for insertion.
type Entry struct {
	Token string
	Score float64
	Qual  phenotrie.Qual
	Meta  *string
}

type Record map[string]string

// parseFile dispatches on the file extension: .json is decoded as a JSON
// array of objects, everything else is read as CSV with a header row.
func parseFile(cmd *IndexCmd, path string, onEachEntry func(entry *Entry) error) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return parseJson(cmd, path, onEachEntry)
	}
	return parseCsv(cmd, path, onEachEntry)
}

func parseJson(cmd *IndexCmd, path string, onEachEntry func(entry *Entry) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	if _, err = decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		data := map[string]any{}
		if err := decoder.Decode(&data); err != nil {
			return err
		}
		record := make(Record, len(data))
		for key, value := range data {
			record[key] = fmt.Sprint(value)
		}
		entry, err := parseEntry(record, cmd)
		if err != nil {
			return err
		}
		if err := onEachEntry(entry); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err = decoder.Token()
	return err
}

func parseCsv(cmd *IndexCmd, path string, onEachEntry func(entry *Entry) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// First line is the header; it maps column names to record keys.
	headers, err := reader.Read()
	if err != nil {
		return err
	}

	for {
		recordData, err := reader.Read()
		if err != nil {
			break // end of file
		}

		record := make(Record, len(headers))
		for i, value := range recordData {
			record[headers[i]] = value
		}

		entry, err := parseEntry(record, cmd)
		if err != nil {
			return err
		}
		if err := onEachEntry(entry); err != nil {
			return err
		}
	}

	return nil
}

func parseEntry(record Record, cmd *IndexCmd) (*Entry, error) {
	token, ok := record[cmd.TokenKey]
	if !ok {
		return nil, fmt.Errorf("record has no %q column: %v", cmd.TokenKey, record)
	}

	score := 0.0
	if raw, ok := record[cmd.ScoreKey]; ok && raw != "" {
		s, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("can not parse score %q for token %q", raw, token)
		}
		score = s
	}

	qual := phenotrie.QualNone
	if raw, ok := record[cmd.QualKey]; ok {
		q, err := phenotrie.ParseQual(raw)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", token, err)
		}
		qual = q
	}

	var meta *string
	if raw, ok := record[cmd.MetaKey]; ok {
		meta = &raw
	}

	return &Entry{Token: token, Score: score, Qual: qual, Meta: meta}, nil
}
