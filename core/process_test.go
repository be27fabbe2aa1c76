package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/wikistat/core/agg"
	"github.com/huangsam/wikistat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

// sampleStats is what testdata/sample.xml aggregates to.
func sampleStats() *agg.Stats {
	return &agg.Stats{
		Title: map[string]int{"снег": 1, "лёд": 1, "река": 1},
		Text: map[string]int{
			"снег": 2, "лежит": 1, "лёд": 1, "реке": 1, "крыше": 1, "река": 1, "течёт": 1,
		},
		Bytes: map[int]int{3: 1, 1: 1},
		Time:  map[int]int{2008: 1, 2010: 1},
	}
}

func TestProcessFile(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		codec schema.Codec
	}{
		{"plain", "sample.xml", schema.PlainCodec},
		{"bzip2", "sample.xml.bz2", schema.Bzip2Codec},
		{"gzip", "sample.xml.gz", schema.GzipCodec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, summary, err := ProcessFile(context.Background(), fixture(tt.file), schema.DefaultBufferSize)
			require.NoError(t, err)
			assert.True(t, sampleStats().Equal(stats), "got %+v", stats)
			assert.Equal(t, tt.codec, summary.Codec)
			assert.Equal(t, 2, summary.Pages)
			assert.Equal(t, 1, summary.Dropped)
			assert.Equal(t, fixture(tt.file), summary.Path)

			info, err := os.Stat(fixture(tt.file))
			require.NoError(t, err)
			assert.Equal(t, info.Size(), summary.Bytes)
		})
	}
}

func TestProcessFile_Failures(t *testing.T) {
	tests := []struct {
		name string
		file string
		want error
	}{
		{"missing file", "does_not_exist.xml.bz2", schema.ErrUnreadableFile},
		{"missing bytes attribute", "missing_bytes.xml.bz2", schema.ErrMissingSizeAttribute},
		{"truncated stream", "truncated.xml.bz2", schema.ErrCorruptStream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, _, err := ProcessFile(context.Background(), fixture(tt.file), schema.DefaultBufferSize)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.file)
			assert.Nil(t, stats)
		})
	}
}

func TestProcessFile_SmallBuffer(t *testing.T) {
	stats, _, err := ProcessFile(context.Background(), fixture("sample.xml.bz2"), 16)
	require.NoError(t, err)
	assert.True(t, sampleStats().Equal(stats))
}

func TestProcessFile_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ProcessFile(ctx, fixture("sample.xml"), schema.DefaultBufferSize)
	assert.ErrorIs(t, err, context.Canceled)
}
