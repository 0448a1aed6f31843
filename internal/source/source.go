// Package source loads source files for tokenization.
//
// A File is memory-mapped where the platform supports it and is read in
// place: the tokenizer streams from the mapping without copying the file
// into a string first. A leading UTF-8 byte order mark is skipped.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// bom is the UTF-8 byte order mark some editors write at the start of a file.
var bom = []byte{0xEF, 0xBB, 0xBF}

// File is an open source file.
type File struct {
	name   string
	data   []byte
	reader *bytes.Reader
	unmap  func() error
	file   *os.File
}

// Open maps the file at filename for reading.
// The caller must Close the file once tokenization is finished.
//
// Example usage:
//
//	file, err := source.Open("test.txt")
//	if err != nil {
//	    return err
//	}
//	defer file.Close()
//
// IMPORTANT: Do not use the slice returned by Bytes after calling Close.
func Open(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat source: %w", err)
	}

	data := []byte{}
	unmap := func() error { return nil }
	// mmap rejects zero-length mappings
	if size := stat.Size(); size > 0 {
		data, unmap, err = mapFile(f, int(size))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to map source: %w", err)
		}
	}

	data = bytes.TrimPrefix(data, bom)
	return &File{
		name:   filename,
		data:   data,
		reader: bytes.NewReader(data),
		unmap:  unmap,
		file:   f,
	}, nil
}

// Name returns the name the file was opened with.
func (f *File) Name() string {
	return f.name
}

// Bytes returns the file contents without the byte order mark.
func (f *File) Bytes() []byte {
	return f.data
}

// Read reads the contents in place. Chunks never end inside a multi-byte
// rune as long as p has room for a whole rune.
func (f *File) Read(p []byte) (int, error) {
	start := len(f.data) - f.reader.Len()
	n, err := f.reader.Read(p)
	if keep := fit(f.data[start:], n); keep < n {
		// Unread the bytes of the split rune
		if _, serr := f.reader.Seek(int64(keep-n), io.SeekCurrent); serr != nil {
			return n, serr
		}
		n = keep
	}
	return n, err
}

// Close releases the mapping and the file.
func (f *File) Close() error {
	uerr := f.unmap()
	cerr := f.file.Close()
	if uerr != nil {
		return fmt.Errorf("failed to unmap source: %w", uerr)
	}
	return cerr
}
