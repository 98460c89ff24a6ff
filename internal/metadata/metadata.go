package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"board-stubgen/internal/boards"
)

// Filename is the name of the aggregate metadata file.
const Filename = "metadata.json"

// Record describes one generated board.
type Record struct {
	VID          string `json:"vid"`
	PID          string `json:"pid"`
	Product      string `json:"product"`
	Manufacturer string `json:"manufacturer"`
	SitePath     string `json:"site_path"`
	Description  string `json:"description"`
}

// FromBoard builds the record for a board.
func FromBoard(b boards.Board) Record {
	return Record{
		VID:          b.Config.VID,
		PID:          b.Config.PID,
		Product:      b.Config.Product,
		Manufacturer: b.Config.Manufacturer,
		SitePath:     b.SitePath,
		Description:  b.Description(),
	}
}

// Order selects how records are ordered before writing.
type Order string

const (
	// OrderNone keeps the order in which boards were added.
	OrderNone Order = "none"
	// OrderSitePath sorts by board directory name.
	OrderSitePath Order = "site_path"
	// OrderVIDPID sorts by VID, then PID, then site path.
	OrderVIDPID Order = "vid_pid"
)

// Valid reports whether o is a known order.
func (o Order) Valid() bool {
	switch o {
	case OrderNone, OrderSitePath, OrderVIDPID:
		return true
	default:
		return false
	}
}

// Collector accumulates records in insertion order.
type Collector struct {
	records []Record
}

// Add appends a record.
func (c *Collector) Add(r Record) {
	c.records = append(c.records, r)
}

// Len returns the number of collected records.
func (c *Collector) Len() int {
	return len(c.records)
}

// Records returns a copy of the collected records, ordered by order.
func (c *Collector) Records(order Order) []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)

	switch order {
	case OrderSitePath:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SitePath < out[j].SitePath
		})
	case OrderVIDPID:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].VID != out[j].VID {
				return out[i].VID < out[j].VID
			}
			if out[i].PID != out[j].PID {
				return out[i].PID < out[j].PID
			}
			return out[i].SitePath < out[j].SitePath
		})
	}

	return out
}

// Marshal encodes records as a compact JSON array without HTML escaping.
// A nil or empty slice encodes as [].
func Marshal(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteFile writes records to path, replacing any previous content.
func WriteFile(path string, records []Record) error {
	data, err := Marshal(records)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing metadata file %s: %w", path, err)
	}

	return nil
}
