// Package snapshot persists scene documents as zstd-compressed files:
// a JSON header line for cheap inspection, then a gob-encoded body.
package snapshot

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/RoyceNZ/lagom-map/pkg/scene"
)

// FormatVersion bumps when the body layout changes.
const FormatVersion = 1

// Header is the uncompressed-readable first line of a snapshot.
type Header struct {
	Version     int     `json:"version"`
	GeneratedAt string  `json:"generated_at"`
	Year        int     `json:"year"`
	Size        int     `json:"size"`
	Seed        float64 `json:"seed"`
}

// Write stores a document at path, creating parent directories as needed.
func Write(path string, doc *scene.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer enc.Close()

	bw := bufio.NewWriterSize(enc, 64*1024)
	defer bw.Flush()

	header := Header{
		Version:     FormatVersion,
		GeneratedAt: doc.Metadata.GeneratedAt,
		Year:        doc.Metadata.Year,
		Size:        doc.Metadata.Size,
		Seed:        doc.Metadata.Seed,
	}
	hb, _ := json.Marshal(header)
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	if err := gob.NewEncoder(bw).Encode(doc); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return nil
}

// Read loads a document from path.
func Read(path string) (*scene.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 64*1024)

	line, err := br.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	var header Header
	if err := json.Unmarshal(line, &header); err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", header.Version)
	}

	var doc scene.Document
	if err := gob.NewDecoder(br).Decode(&doc); err != nil {
		return nil, fmt.Errorf("gob decode: %w", err)
	}
	return &doc, nil
}
