package parse

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/huangsam/wikistat/core/algo"
	"github.com/huangsam/wikistat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageFmt = `<page>
	<title>%s</title>
	<ns>0</ns>
	<revision>
		<id>1</id>
		<timestamp>%s</timestamp>
		<text xml:space="preserve" bytes="%s">%s</text>
	</revision>
</page>`

func dump(pages ...string) string {
	return `<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.10/" version="0.10">
<siteinfo><sitename>Википедия</sitename></siteinfo>
` + strings.Join(pages, "\n") + `
</mediawiki>`
}

func page(title, ts, bytes, text string) string {
	return fmt.Sprintf(pageFmt, title, ts, bytes, text)
}

func parseAll(t *testing.T, doc string) ([]schema.PageRecord, *Builder, error) {
	t.Helper()
	var got []schema.PageRecord
	b := NewBuilder(algo.CyrillicWords, func(r schema.PageRecord) { got = append(got, r) })
	err := Parse(context.Background(), strings.NewReader(doc), b)
	return got, b, err
}

func TestParse_SinglePage(t *testing.T) {
	got, b, err := parseAll(t, dump(page("Снег и лёд", "2008-11-20T10:00:00Z", "1234", "Зима пришла, снег")))
	require.NoError(t, err)
	require.Len(t, got, 1)

	rec := got[0]
	assert.Equal(t, []string{"снег", "лёд"}, rec.TitleWords)
	assert.Equal(t, []string{"зима", "пришла", "снег"}, rec.TextWords)
	require.NotNil(t, rec.SizeBucket)
	assert.Equal(t, 3, *rec.SizeBucket)
	assert.Equal(t, 2008, rec.Year)
	assert.Equal(t, 1, b.Emitted())
	assert.Equal(t, 0, b.Dropped())
}

func TestParse_MultiplePages(t *testing.T) {
	doc := dump(
		page("Первая страница", "2001-01-01T00:00:00Z", "5", "текст один"),
		page("Вторая страница", "2002-01-01T00:00:00Z", "15", "текст два"),
	)
	got, _, err := parseAll(t, doc)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"первая", "страница"}, got[0].TitleWords)
	assert.Equal(t, 0, *got[0].SizeBucket)
	assert.Equal(t, []string{"вторая", "страница"}, got[1].TitleWords)
	assert.Equal(t, 1, *got[1].SizeBucket)
	assert.Equal(t, 2002, got[1].Year)
}

func TestParse_MissingTimestampDropsPage(t *testing.T) {
	doc := dump(`<page>
		<title>Заголовок</title>
		<revision><text bytes="10">Какой-то текст</text></revision>
	</page>`)
	got, b, err := parseAll(t, doc)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, b.Dropped())
}

func TestParse_DroppedPageDoesNotLeak(t *testing.T) {
	// The first page has a title and a year but no Cyrillic text words.
	// Its slots must not complete the second page, which has no title.
	doc := dump(
		page("Заголовок", "2001-01-01T00:00:00Z", "3", "abc"),
		`<page><title>x</title><revision><timestamp>2002-02-02T00:00:00Z</timestamp><text bytes="4">слова есть</text></revision></page>`,
	)
	got, b, err := parseAll(t, doc)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 2, b.Dropped())
}

func TestParse_MissingBytesIsFatal(t *testing.T) {
	doc := dump(`<page><title>Заголовок</title><revision>
		<timestamp>2001-01-01T00:00:00Z</timestamp><text>текст</text>
	</revision></page>`)
	_, _, err := parseAll(t, doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrMissingSizeAttribute))
}

func TestParse_InvalidBytesIsFatal(t *testing.T) {
	for _, bytes := range []string{"abc", "-1", ""} {
		_, _, err := parseAll(t, dump(page("Заголовок", "2001-01-01T00:00:00Z", bytes, "текст")))
		assert.True(t, errors.Is(err, schema.ErrMissingSizeAttribute), "bytes=%q", bytes)
	}
}

func TestParse_MalformedTimestampIsFatal(t *testing.T) {
	_, _, err := parseAll(t, dump(page("Заголовок", "вчера", "10", "текст")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrMalformedTimestamp))
}

func TestParse_MalformedXML(t *testing.T) {
	_, _, err := parseAll(t, `<mediawiki><page><title>Заголовок</page></mediawiki>`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrMalformedXML))

	var syntaxErr *xml.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestParse_TruncatedDocument(t *testing.T) {
	_, _, err := parseAll(t, `<mediawiki><page><title>Заголовок`)
	assert.True(t, errors.Is(err, schema.ErrMalformedXML))
}

func TestParse_UntrackedPathsIgnored(t *testing.T) {
	// A title outside of a page, a text outside of a revision and a nested
	// element inside the title are all off the tracked paths.
	doc := `<mediawiki>
		<title>Чужой заголовок</title>
		<siteinfo><text>без размера</text></siteinfo>
		<page>
			<title>Настоящий <b>жирный</b> заголовок</title>
			<text>тоже без размера</text>
			<revision>
				<contributor><timestamp>not a date</timestamp></contributor>
				<timestamp>2010-05-05T00:00:00Z</timestamp>
				<text bytes="100">тело статьи</text>
			</revision>
		</page>
	</mediawiki>`
	got, _, err := parseAll(t, doc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"настоящий", "заголовок"}, got[0].TitleWords)
	assert.Equal(t, []string{"тело", "статьи"}, got[0].TextWords)
	assert.Equal(t, 2, *got[0].SizeBucket)
	assert.Equal(t, 2010, got[0].Year)
}

func TestParse_CharacterFragmentsConcatenate(t *testing.T) {
	// CDATA and entity boundaries split character data into several tokens.
	doc := dump(page("Сне<![CDATA[жный]]> ком", "2003-03-03T00:00:00Z", "7", "бе&#1083;ый"))
	got, _, err := parseAll(t, doc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"снежный", "ком"}, got[0].TitleWords)
	assert.Equal(t, []string{"белый"}, got[0].TextWords)
}

func TestParse_NotADocument(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t"},
		{"plain text", "this is not xml at all"},
		{"text before root", "мусор<mediawiki></mediawiki>"},
		{"text after root", "<mediawiki></mediawiki>мусор"},
		{"second root", "<mediawiki></mediawiki>" + dump(page("Кошка", "2004-01-01T00:00:00Z", "5", "мурлычет"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := parseAll(t, tt.doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, schema.ErrMalformedXML)
			assert.Empty(t, got)
		})
	}
}

func TestParse_EmptyRoot(t *testing.T) {
	for _, doc := range []string{"<mediawiki/>", "<?xml version=\"1.0\"?>\n<mediawiki>\n</mediawiki>\n"} {
		got, _, err := parseAll(t, doc)
		assert.NoError(t, err, doc)
		assert.Empty(t, got)
	}
}

func TestParse_ContextCanceled(t *testing.T) {
	var pages []string
	for range 2000 {
		pages = append(pages, page("Слово", "2001-01-01T00:00:00Z", "1", "текст"))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewBuilder(algo.CyrillicWords, func(schema.PageRecord) {})
	err := Parse(ctx, strings.NewReader(dump(pages...)), b)
	assert.ErrorIs(t, err, context.Canceled)
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestParse_CorruptStreamPassesThrough(t *testing.T) {
	corrupt := fmt.Errorf("%w: bad block", schema.ErrCorruptStream)
	b := NewBuilder(algo.CyrillicWords, func(schema.PageRecord) {})
	err := Parse(context.Background(), io.MultiReader(strings.NewReader("<mediawiki><page>"), failingReader{corrupt}), b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrCorruptStream))
	assert.False(t, errors.Is(err, schema.ErrMalformedXML))
}

func TestBuilder_Events(t *testing.T) {
	var got []schema.PageRecord
	b := NewBuilder(algo.CyrillicWords, func(r schema.PageRecord) { got = append(got, r) })

	require.NoError(t, b.StartTag("mediawiki", nil))
	require.NoError(t, b.StartTag("page", nil))
	require.NoError(t, b.StartTag("title", nil))
	b.Characters([]byte("Гор"))
	b.Characters([]byte("од"))
	require.NoError(t, b.EndTag("title"))
	require.NoError(t, b.StartTag("revision", nil))
	require.NoError(t, b.StartTag("timestamp", nil))
	b.Characters([]byte("1999-09-09T00:00:00Z"))
	require.NoError(t, b.EndTag("timestamp"))
	require.NoError(t, b.StartTag("text", []xml.Attr{{Name: xml.Name{Local: "bytes"}, Value: "42"}}))
	b.Characters([]byte("Большой город"))
	require.NoError(t, b.EndTag("text"))
	require.NoError(t, b.EndTag("revision"))
	assert.Empty(t, got)
	require.NoError(t, b.EndTag("page"))
	require.NoError(t, b.EndTag("mediawiki"))

	require.Len(t, got, 1)
	assert.Equal(t, []string{"город"}, got[0].TitleWords)
	assert.Equal(t, []string{"большой", "город"}, got[0].TextWords)
	assert.Equal(t, 1, *got[0].SizeBucket)
	assert.Equal(t, 1999, got[0].Year)
}
