// Package parse turns a stream of XML parse events into page records.
package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/huangsam/wikistat/core/algo"
	"github.com/huangsam/wikistat/schema"
)

// Tag names of the tracked paths below the document element.
const (
	tagPage      = "page"
	tagTitle     = "title"
	tagRevision  = "revision"
	tagText      = "text"
	tagTimestamp = "timestamp"
	attrBytes    = "bytes"
)

// state is the deepest tracked element currently open.
type state uint8

const (
	stateDocument  state = iota // nothing open
	stateRoot                   // /root
	statePage                   // /root/page
	stateTitle                  // /root/page/title
	stateRevision               // /root/page/revision
	stateText                   // /root/page/revision/text
	stateTimestamp              // /root/page/revision/timestamp
)

// next returns the state entered when a child named name opens in s.
// ok is false when the child leaves the tracked paths.
func (s state) next(name string) (state, bool) {
	switch s {
	case stateDocument:
		return stateRoot, true
	case stateRoot:
		if name == tagPage {
			return statePage, true
		}
	case statePage:
		switch name {
		case tagTitle:
			return stateTitle, true
		case tagRevision:
			return stateRevision, true
		}
	case stateRevision:
		switch name {
		case tagText:
			return stateText, true
		case tagTimestamp:
			return stateTimestamp, true
		}
	}
	return s, false
}

// parent returns the state entered when the element of s closes.
func (s state) parent() state {
	switch s {
	case stateTitle, stateRevision:
		return statePage
	case stateText, stateTimestamp:
		return stateRevision
	case statePage:
		return stateRoot
	default:
		return stateDocument
	}
}

func (s state) captures() bool {
	return s == stateTitle || s == stateText || s == stateTimestamp
}

// Builder is the tag-path state machine assembling pages. It tracks the
// open tracked element as a state plus a depth counter for untracked
// subtrees, so no path is materialized per tag. A Builder handles one
// stream and is not safe for concurrent use.
type Builder struct {
	words algo.WordExtractor
	emit  func(schema.PageRecord)

	st         state
	off        int  // depth inside untracked elements
	rootSeen   bool // the document element has opened
	rootClosed bool // the document element has closed
	buf []byte

	title   []string
	text    []string
	year    int
	size    int
	hasSize bool

	emitted int
	dropped int
}

// NewBuilder returns a builder that hands every completed page to emit.
func NewBuilder(words algo.WordExtractor, emit func(schema.PageRecord)) *Builder {
	return &Builder{words: words, emit: emit}
}

// StartTag handles an opening tag.
func (b *Builder) StartTag(name string, attrs []xml.Attr) error {
	if b.off > 0 {
		b.off++
		return nil
	}
	if b.st == stateDocument {
		if b.rootClosed {
			return fmt.Errorf("%w: second document element <%s>", schema.ErrMalformedXML, name)
		}
		b.rootSeen = true
	}
	st, ok := b.st.next(name)
	if !ok {
		b.off++
		return nil
	}
	b.st = st
	if st.captures() {
		b.buf = b.buf[:0]
	}
	if st == stateText {
		size, err := sizeAttr(attrs)
		if err != nil {
			return err
		}
		b.size, b.hasSize = size, true
	}
	return nil
}

// Characters handles character data. Fragments of one element are appended in order.
func (b *Builder) Characters(data []byte) {
	if b.off == 0 && b.st.captures() {
		b.buf = append(b.buf, data...)
	}
}

// EndTag handles a closing tag.
func (b *Builder) EndTag(_ string) error {
	if b.off > 0 {
		b.off--
		return nil
	}
	switch b.st {
	case stateTitle:
		b.title = b.words.Extract(string(b.buf))
	case stateText:
		b.text = b.words.Extract(string(b.buf))
	case stateTimestamp:
		year, err := algo.ExtractYear(string(b.buf))
		if err != nil {
			return err
		}
		b.year = year
	case statePage:
		b.closePage()
	case stateRoot:
		b.rootClosed = true
	}
	b.st = b.st.parent()
	return nil
}

// DocumentText checks character data seen outside any element. Only
// whitespace may appear there.
func (b *Builder) DocumentText(data []byte) error {
	if b.st != stateDocument || b.off > 0 {
		return nil
	}
	if len(bytes.TrimSpace(data)) > 0 {
		return fmt.Errorf("%w: text outside the document element", schema.ErrMalformedXML)
	}
	return nil
}

// Finish reports an input that ended without a document element.
func (b *Builder) Finish() error {
	if !b.rootSeen {
		return fmt.Errorf("%w: no document element", schema.ErrMalformedXML)
	}
	return nil
}

// closePage emits the page if it is complete and clears the slots either way.
func (b *Builder) closePage() {
	if len(b.title) > 0 && len(b.text) > 0 && b.year != 0 {
		var size *int
		if b.hasSize {
			size = &b.size
		}
		b.emit(schema.PageRecord{
			TitleWords: b.title,
			TextWords:  b.text,
			SizeBucket: algo.SizeBucket(size),
			Year:       b.year,
		})
		b.emitted++
	} else {
		b.dropped++
	}
	b.title, b.text, b.year = nil, nil, 0
	b.size, b.hasSize = 0, false
}

// Emitted returns the number of pages handed to emit.
func (b *Builder) Emitted() int { return b.emitted }

// Dropped returns the number of pages closed without a title, text or year.
func (b *Builder) Dropped() int { return b.dropped }

func sizeAttr(attrs []xml.Attr) (int, error) {
	for _, a := range attrs {
		if a.Name.Local != attrBytes {
			continue
		}
		size, err := strconv.Atoi(a.Value)
		if err != nil || size < 0 {
			return 0, fmt.Errorf("%w: bytes=%q", schema.ErrMissingSizeAttribute, a.Value)
		}
		return size, nil
	}
	return 0, fmt.Errorf("%w: <text> has no bytes attribute", schema.ErrMissingSizeAttribute)
}
