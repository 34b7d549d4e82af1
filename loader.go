package freelance

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DecodeSnapshot reads a snapshot from the dashboard's JSON export
// format. The engine itself does no I/O: callers hand it a reader.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &s, nil
}

// DecodeSnapshotAt reads a snapshot located at a JSONPath inside a
// larger export document. Dashboard backups wrap the record arrays in
// envelope objects ("$.data", "$.export.records"...); the path selects
// the object that actually holds them.
func DecodeSnapshotAt(r io.Reader, path string) (*Snapshot, error) {
	if path == "" || path == "$" {
		return DecodeSnapshot(r)
	}
	var doc any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding export document: %w", err)
	}
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("selecting snapshot at %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; unwrap the former.
	if list, ok := val.([]any); ok && len(list) == 1 {
		val = list[0]
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return nil, fmt.Errorf("reshaping snapshot at %q: %w", path, err)
	}
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decoding snapshot at %q: %w", path, err)
	}
	return &s, nil
}
