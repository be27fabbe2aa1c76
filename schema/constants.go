package schema

import "time"

// Custom string types for type safety.
type (
	// OutputMode represents the format of the report.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string

	// Section names a ranked word list inside a report.
	Section string

	// HistogramKind names a histogram inside a report.
	HistogramKind string

	// Codec names the decompression applied to an archive.
	Codec string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	HTMLOut    OutputMode = "html"
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	TableOut   OutputMode = "table"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// Ranked word sections.
const (
	TitleSection Section = "title"
	TextSection  Section = "text"
)

// Histogram kinds.
const (
	SizeHistogram HistogramKind = "size"
	YearHistogram HistogramKind = "year"
)

// Archive codecs.
const (
	PlainCodec Codec = "xml"
	Bzip2Codec Codec = "bzip2"
	GzipCodec  Codec = "gzip"
	ZstdCodec  Codec = "zstd"
	LZ4Codec   Codec = "lz4"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	HTMLOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	TableOut:   {},
	ParquetOut: {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Defaults shared by the CLI, the MCP server and the core.
const (
	DefaultOutputFile = "statistics.txt"
	DefaultThreads    = 4
	MinThreads        = 1
	MaxThreads        = 32
	DefaultBufferSize = 32768
	DefaultLimit      = 300
	DefaultTimeout    = 30 * time.Minute
	DefaultWidth      = 0 // auto-detect
)
