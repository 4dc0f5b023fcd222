package reportfmt

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"tessera/internal/eval"
)

// Current schema version - increment when ExportPayload format changes.
const exportSchemaVersion uint16 = 1

// ExportPayload is the msgpack snapshot of one evaluation report.
type ExportPayload struct {
	// Schema version for safe invalidation when the format changes
	Schema uint16

	Accepted    bool
	Reason      string
	DecimalText string
	GridSide    uint32

	Tokens  []int64
	Windows []string
	Colors  []string

	RangeFailureIndexes []uint32
	RangeFailureValues  []int64
	ConflictCells       []uint32
}

// BuildExport converts a report into its export payload.
func BuildExport(rep eval.Report) (*ExportPayload, error) {
	side, err := safecast.Conv[uint32](rep.GridSide)
	if err != nil {
		return nil, fmt.Errorf("grid side %d: %w", rep.GridSide, err)
	}
	p := &ExportPayload{
		Schema:      exportSchemaVersion,
		Accepted:    rep.Accepted,
		Reason:      rep.Reason,
		DecimalText: rep.DecimalText,
		GridSide:    side,
		Tokens:      rep.Tokens,
		Windows:     rep.Windows,
		Colors:      rep.Colors,
	}
	for _, f := range rep.RangeFailures {
		idx, err := safecast.Conv[uint32](f.Index)
		if err != nil {
			return nil, fmt.Errorf("range failure index %d: %w", f.Index, err)
		}
		p.RangeFailureIndexes = append(p.RangeFailureIndexes, idx)
		p.RangeFailureValues = append(p.RangeFailureValues, f.Value)
	}
	for _, c := range rep.ConflictCells {
		cell, err := safecast.Conv[uint32](c)
		if err != nil {
			return nil, fmt.Errorf("conflict cell %d: %w", c, err)
		}
		p.ConflictCells = append(p.ConflictCells, cell)
	}
	return p, nil
}

// Export serializes the report to path, atomically replacing any previous
// file.
func Export(path string, rep eval.Report) error {
	payload, err := BuildExport(rep)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ReadExport loads a payload back, rejecting unknown schema versions.
func ReadExport(path string) (*ExportPayload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	var payload ExportPayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Schema != exportSchemaVersion {
		return nil, fmt.Errorf("%s: unsupported export schema %d", path, payload.Schema)
	}
	return &payload, nil
}
