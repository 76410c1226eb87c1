package workload

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/OneOfOne/xxhash"

	apperrors "github.com/agbru/procbench/internal/errors"
)

// DefaultChunkSize is the read size for the io workload.
const DefaultChunkSize = 1024 * 1024

// HashAlgorithm selects the streaming accumulator for FileHash.
type HashAlgorithm string

const (
	HashSHA256 HashAlgorithm = "sha256"
	HashXXHash HashAlgorithm = "xxhash"
)

// NewHash returns a fresh accumulator for alg.
func NewHash(alg HashAlgorithm) (hash.Hash, error) {
	switch alg {
	case HashSHA256, "":
		return sha256.New(), nil
	case HashXXHash:
		return xxhash.New64(), nil
	default:
		return nil, apperrors.ValidationError{Field: "hash", Message: fmt.Sprintf("unknown algorithm %q", alg)}
	}
}

// FileHash reads Path in ChunkSize pieces until EOF, feeding every chunk to
// the hash. A zero-length file is not an error: it yields zero bytes and the
// accumulator's empty-input digest.
type FileHash struct {
	Path      string
	ChunkSize int
	Algorithm HashAlgorithm
}

// Name implements Workload.
func (w FileHash) Name() string { return string(KindIO) }

// Run implements Workload. It does not observe ctx: a read in progress runs
// to completion.
func (w FileHash) Run(_ context.Context) (Output, error) {
	h, err := NewHash(w.Algorithm)
	if err != nil {
		return Output{}, err
	}
	chunk := w.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}

	f, err := os.Open(w.Path)
	if err != nil {
		return Output{}, apperrors.WorkloadError{Workload: w.Name(), Cause: err}
	}
	defer f.Close()

	n, err := hashChunks(f, h, make([]byte, chunk))
	if err != nil {
		return Output{}, apperrors.WorkloadError{Workload: w.Name(), Cause: fmt.Errorf("read %s after %d bytes: %w", w.Path, n, err)}
	}
	return Output{Kind: KindIO, Bytes: n, Digest: hex.EncodeToString(h.Sum(nil))}, nil
}

func hashChunks(r io.Reader, h hash.Hash, buf []byte) (int64, error) {
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
			total += int64(n)
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
