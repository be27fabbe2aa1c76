package archive

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/wikistat/schema"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, path string) (schema.Codec, []byte, error) {
	t.Helper()
	r, err := Open(path, 64)
	if err != nil {
		return "", nil, err
	}
	defer func() { assert.NoError(t, r.Close()) }()
	data, err := io.ReadAll(r)
	return r.Codec, data, err
}

func plainSample(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "sample.xml"))
	require.NoError(t, err)
	return data
}

func TestOpen_Codecs(t *testing.T) {
	want := plainSample(t)

	tests := []struct {
		file  string
		codec schema.Codec
	}{
		{"sample.xml", schema.PlainCodec},
		{"sample.xml.bz2", schema.Bzip2Codec},
		{"sample.xml.gz", schema.GzipCodec},
		{"misnamed.xml", schema.GzipCodec},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			codec, data, err := readAll(t, filepath.Join("testdata", tt.file))
			require.NoError(t, err)
			assert.Equal(t, tt.codec, codec)
			assert.Equal(t, want, data)
		})
	}
}

func TestOpen_Zstd(t *testing.T) {
	want := plainSample(t)
	path := filepath.Join(t.TempDir(), "sample.xml.zst")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write(want)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	codec, data, err := readAll(t, path)
	require.NoError(t, err)
	assert.Equal(t, schema.ZstdCodec, codec)
	assert.Equal(t, want, data)
}

func TestOpen_LZ4(t *testing.T) {
	want := plainSample(t)
	path := filepath.Join(t.TempDir(), "sample.xml.lz4")

	f, err := os.Create(path)
	require.NoError(t, err)
	lw := lz4.NewWriter(f)
	_, err = lw.Write(want)
	require.NoError(t, err)
	require.NoError(t, lw.Close())
	require.NoError(t, f.Close())

	codec, data, err := readAll(t, path)
	require.NoError(t, err)
	assert.Equal(t, schema.LZ4Codec, codec)
	assert.Equal(t, want, data)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join("testdata", "nope.xml.bz2"), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrUnreadableFile))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpen_Directory(t *testing.T) {
	_, err := Open(t.TempDir(), 0)
	assert.True(t, errors.Is(err, schema.ErrUnreadableFile))
}

func TestOpen_TruncatedBzip2(t *testing.T) {
	_, _, err := readAll(t, filepath.Join("testdata", "truncated.xml.bz2"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrCorruptStream))
}

func TestOpen_BadGzipHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xml.gz")
	require.NoError(t, os.WriteFile(path, []byte{0x1f, 0x8b, 0x00, 0x00, 0x01}, 0o644))

	_, err := Open(path, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrCorruptStream))
}

func TestOpen_EmptyPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	codec, data, err := readAll(t, path)
	require.NoError(t, err)
	assert.Equal(t, schema.PlainCodec, codec)
	assert.Empty(t, data)
}

func TestCodecForPath(t *testing.T) {
	assert.Equal(t, schema.Bzip2Codec, CodecForPath("ruwiki-20200101-pages-articles1.xml-p1p224167.bz2"))
	assert.Equal(t, schema.GzipCodec, CodecForPath("a.XML.GZ"))
	assert.Equal(t, schema.ZstdCodec, CodecForPath("a.xml.zst"))
	assert.Equal(t, schema.LZ4Codec, CodecForPath("a.xml.lz4"))
	assert.Equal(t, schema.PlainCodec, CodecForPath("a.xml"))
	assert.Equal(t, schema.PlainCodec, CodecForPath("noext"))
}

func TestCodecs(t *testing.T) {
	assert.Equal(t, []string{"xml", "bzip2", "gzip", "zstd", "lz4"}, Codecs())
}

func TestOpen_SizeIsCompressedSize(t *testing.T) {
	path := filepath.Join("testdata", "sample.xml.bz2")
	info, err := os.Stat(path)
	require.NoError(t, err)

	r, err := Open(path, 64)
	require.NoError(t, err)
	defer func() { assert.NoError(t, r.Close()) }()
	assert.Equal(t, info.Size(), r.Size)
}
