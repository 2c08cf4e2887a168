package blob

import (
	"errors"
	"fmt"
	"io"
)

const (
	minBlockSize = 2 * 1024 * 1024 // 2 MiB
	maxBlockSize = 8 * 1024 * 1024 // 8 MiB
	rollMod      = 4096
	readBufSize  = 32 * 1024 // 32 KiB streaming read buffer
)

func shouldSplit(size int, rh uint32) bool {
	return (size >= minBlockSize && rh%rollMod == 0) || size >= maxBlockSize
}

// Split divides a file into content-defined blocks deterministically using a
// Gear-like rolling hash. The file is streamed; block buffers are bounded by
// maxBlockSize. Refs are returned in file order. A zero-length file yields
// no refs.
func (s *Store) Split(path string) ([]Ref, error) {
	fi, err := s.FS.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", path, err)
	}
	if fi.Size() == 0 {
		return nil, nil
	}

	f, err := s.FS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %q: %w", path, err)
	}
	defer f.Close()

	var (
		refs   []Ref
		offset int64
	)

	readBuf := make([]byte, readBufSize)
	blockBuf := make([]byte, 0, 64*1024)

	var rh uint32
	var blockSize int

	flush := func() {
		r := hashBlock(blockBuf, offset)
		refs = append(refs, r)
		offset += r.Size
		blockBuf = blockBuf[:0]
		blockSize = 0
		rh = 0
	}

	for {
		n, rerr := f.Read(readBuf)
		if n > 0 {
			for _, b := range readBuf[:n] {
				blockBuf = append(blockBuf, b)
				blockSize++

				// Gear-like mixing: shift + table lookup
				rh = (rh << 1) + gearTable[b]

				if shouldSplit(blockSize, rh) {
					flush()
				}
			}
		}

		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read file %q: %w", path, rerr)
		}
	}

	if len(blockBuf) > 0 {
		flush()
	}

	return refs, nil
}
