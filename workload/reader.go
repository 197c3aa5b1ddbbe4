// Package workload reads text files of map operations and replays them
// against a hashmap.HashMap.
package workload

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Open maps the workload file read-only. An empty file is a valid workload
// without any operations.
func Open(filepath string) (r *Reader, err error) {
	info, err := os.Stat(filepath)

	if err != nil {
		return
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filepath)
	}

	r = &Reader{}

	if r.file, err = os.OpenFile(filepath, os.O_RDONLY, 0); err != nil {
		return nil, err
	}

	if info.Size() == 0 {
		return
	}

	if r.data, err = mmap.Map(r.file, mmap.RDONLY, 0); err != nil {
		r.file.Close()
		return nil, err
	}

	return
}

// Memory-mapped workload file
type Reader struct {
	data mmap.MMap
	file *os.File
	op   Op
	err  error
	pos  int
	line int
}

// Next advances to the next operation. It returns false at the end of the
// file or on the first malformed line, see Err.
func (r *Reader) Next() bool {
	for r.err == nil && r.pos < len(r.data) {
		rest := r.data[r.pos:]
		end := bytes.IndexByte(rest, '\n')

		if end < 0 {
			end = len(rest)
		}

		r.pos += end + 1
		r.line++

		op, ok, err := ParseOp(string(rest[:end]))

		if err != nil {
			r.err = fmt.Errorf("line %d: %w", r.line, err)
			return false
		}

		if ok {
			r.op = op
			return true
		}
	}

	return false
}

func (r *Reader) Op() Op {
	return r.op
}

func (r *Reader) Err() error {
	return r.err
}

// Line number of the current operation, starting at 1.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) Close() (err error) {
	if r.file == nil {
		return errors.New("file is not open")
	}

	if r.data != nil {
		if err = r.data.Unmap(); err != nil {
			return
		}

		r.data = nil
	}

	err = r.file.Close()
	r.file = nil
	return
}
