package workload

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tomasbasham/tlqsched"
)

// Decode decodes a workload, choosing the encoding from the extension of
// name. JSON documents are decoded as YAML.
func Decode(name string, data []byte) (*Spec, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return DecodeYAML(data)
	case ".csv":
		return DecodeCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// DecodeYAML decodes a workload document. Fields missing from the document
// keep the values of [tlqsched.DefaultConfig]; unknown fields are rejected.
func DecodeYAML(data []byte) (*Spec, error) {
	spec := &Spec{Config: *tlqsched.DefaultConfig()}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("workload: empty document")
		}
		return nil, fmt.Errorf("workload: decode yaml: %w", err)
	}
	return spec, nil
}

// DecodeCSV decodes one process per record. Records hold either
// id,arrival,burst,priority or arrival,burst,priority, in which case ids are
// assigned by position. A leading header record and lines starting with '#'
// are skipped. The quantum is taken from [tlqsched.DefaultConfig].
func DecodeCSV(r io.Reader) (*Spec, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("workload: read csv: %w", err)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	spec := &Spec{Config: *tlqsched.DefaultConfig()}
	for i, row := range rows {
		p, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("workload: csv record %d: %w", i+1, err)
		}
		spec.Processes = append(spec.Processes, p)
	}
	return spec, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[0]))
	return err != nil
}

func parseRecord(row []string) (ProcessSpec, error) {
	var p ProcessSpec
	switch len(row) {
	case 4:
		id, err := atoi("id", row[0])
		if err != nil {
			return p, err
		}
		if id <= 0 {
			return p, fmt.Errorf("%w: %d", ErrInvalidID, id)
		}
		p.ID = &id
		row = row[1:]
	case 3:
	default:
		return p, fmt.Errorf("expected 3 or 4 fields, got %d", len(row))
	}

	var err error
	if p.Arrival, err = atoi("arrival", row[0]); err != nil {
		return p, err
	}
	if p.Burst, err = atoi("burst", row[1]); err != nil {
		return p, err
	}
	if p.Priority, err = tlqsched.ParsePriority(row[2]); err != nil {
		return p, err
	}
	return p, nil
}

func atoi(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, s)
	}
	return n, nil
}
