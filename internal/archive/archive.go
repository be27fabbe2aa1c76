// Package archive opens dump files and wraps them in the matching decompressor.
package archive

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/wikistat/schema"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Magic numbers of the supported compressed formats.
var (
	bzip2Magic = []byte("BZh")
	gzipMagic  = []byte{0x1f, 0x8b}
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic   = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Reader is an opened archive. Reading yields the decompressed XML.
type Reader struct {
	io.Reader
	Codec  schema.Codec
	Size   int64 // Size of the compressed file in bytes
	closer []io.Closer
}

// Close releases the decompressor and the underlying file.
func (r *Reader) Close() error {
	var errs []error
	for i := len(r.closer) - 1; i >= 0; i-- {
		errs = append(errs, r.closer[i].Close())
	}
	return errors.Join(errs...)
}

// Open opens path and returns a reader over its decompressed content.
// The codec is taken from the leading magic bytes, so a misnamed file still
// opens. bufferSize sizes the read buffer in front of the decompressor.
func Open(path string, bufferSize int) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", schema.ErrUnreadableFile, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %w", schema.ErrUnreadableFile, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", schema.ErrUnreadableFile, path)
	}

	if bufferSize <= 0 {
		bufferSize = schema.DefaultBufferSize
	}
	buffered := bufio.NewReaderSize(f, bufferSize)
	r := &Reader{Size: info.Size(), closer: []io.Closer{f}}

	codec, err := detect(buffered, path)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.Codec = codec

	var src io.Reader
	switch codec {
	case schema.Bzip2Codec:
		src = bzip2.NewReader(buffered)
	case schema.GzipCodec:
		zr, err := gzip.NewReader(buffered)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%w: %w", schema.ErrCorruptStream, err)
		}
		r.closer = append(r.closer, zr)
		src = zr
	case schema.ZstdCodec:
		zr, err := zstd.NewReader(buffered)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%w: %w", schema.ErrCorruptStream, err)
		}
		r.closer = append(r.closer, closerFunc(func() error { zr.Close(); return nil }))
		src = zr
	case schema.LZ4Codec:
		src = lz4.NewReader(buffered)
	default:
		src = buffered
	}

	r.Reader = &corruptReader{r: src, codec: codec}
	return r, nil
}

// detect picks the codec from the magic bytes, falling back to the extension.
func detect(br *bufio.Reader, path string) (schema.Codec, error) {
	head, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%w: %w", schema.ErrUnreadableFile, err)
	}
	switch {
	case bytes.HasPrefix(head, bzip2Magic):
		return schema.Bzip2Codec, nil
	case bytes.HasPrefix(head, gzipMagic):
		return schema.GzipCodec, nil
	case bytes.HasPrefix(head, zstdMagic):
		return schema.ZstdCodec, nil
	case bytes.HasPrefix(head, lz4Magic):
		return schema.LZ4Codec, nil
	}
	return CodecForPath(path), nil
}

// CodecForPath guesses the codec from the file extension.
func CodecForPath(path string) schema.Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bz2", ".bzip2":
		return schema.Bzip2Codec
	case ".gz", ".gzip":
		return schema.GzipCodec
	case ".zst", ".zstd":
		return schema.ZstdCodec
	case ".lz4":
		return schema.LZ4Codec
	default:
		return schema.PlainCodec
	}
}

// Codecs lists the names of every supported codec.
func Codecs() []string {
	return []string{
		string(schema.PlainCodec), string(schema.Bzip2Codec), string(schema.GzipCodec),
		string(schema.ZstdCodec), string(schema.LZ4Codec),
	}
}

// corruptReader tags read failures of a decompressor as ErrCorruptStream
// and those of a plain file as ErrUnreadableFile.
type corruptReader struct {
	r     io.Reader
	codec schema.Codec
}

func (c *corruptReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if err != nil && err != io.EOF {
		if c.codec == schema.PlainCodec {
			return n, fmt.Errorf("%w: %w", schema.ErrUnreadableFile, err)
		}
		return n, fmt.Errorf("%w: %s: %w", schema.ErrCorruptStream, c.codec, err)
	}
	return n, err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
