package parquetread

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/sitecards/internal/model"
)

// Reader wraps a parquet GenericReader for streaming SiteRow records.
type Reader struct {
	file   *os.File
	pf     *parquet.File
	reader *parquet.GenericReader[model.SiteRow]
}

// Open opens a Parquet file and returns a streaming Reader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	r, err := newReader(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

// OpenReader reads a Parquet file already held in memory, such as an upload.
func OpenReader(data []byte) (*Reader, error) {
	return newReader(bytes.NewReader(data), int64(len(data)))
}

func newReader(ra io.ReaderAt, size int64) (*Reader, error) {
	pf, err := parquet.OpenFile(ra, size)
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	return &Reader{pf: pf, reader: parquet.NewGenericReader[model.SiteRow](pf)}, nil
}

// NumRows returns the total number of rows in the Parquet file.
func (r *Reader) NumRows() int64 {
	return r.reader.NumRows()
}

// Read reads up to len(rows) records into the provided slice.
// Returns the number of rows read and io.EOF when done.
func (r *Reader) Read(rows []model.SiteRow) (int, error) {
	n, err := r.reader.Read(rows)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("read parquet rows: %w", err)
	}
	return n, err
}

// ReadAll drains the reader.
func (r *Reader) ReadAll() ([]model.SiteRow, error) {
	rows := make([]model.SiteRow, 0, r.NumRows())
	buf := make([]model.SiteRow, 256)
	for {
		n, err := r.Read(buf)
		rows = append(rows, buf[:n]...)
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
	}
}

// Schema returns the schema stored in the file, for validation.
func (r *Reader) Schema() *parquet.Schema {
	return r.pf.Schema()
}

// Close releases all resources.
func (r *Reader) Close() error {
	err := r.reader.Close()
	if r.file != nil {
		if cerr := r.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
