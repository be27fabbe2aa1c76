package parse

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/wikistat/schema"
)

// ctxCheckInterval is how many tokens are read between context checks.
const ctxCheckInterval = 4096

// Parse tokenizes r and feeds every event into b until the stream ends.
// Read errors already tagged as ErrCorruptStream or ErrUnreadableFile are
// returned as is and any other decoder failure is reported as ErrMalformedXML.
func Parse(ctx context.Context, r io.Reader, b *Builder) error {
	d := xml.NewDecoder(r)
	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		tok, err := d.Token()
		if err == io.EOF {
			return b.Finish()
		}
		if err != nil {
			if errors.Is(err, schema.ErrCorruptStream) || errors.Is(err, schema.ErrUnreadableFile) {
				return err
			}
			return fmt.Errorf("%w: %w", schema.ErrMalformedXML, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			err = b.StartTag(t.Name.Local, t.Attr)
		case xml.EndElement:
			err = b.EndTag(t.Name.Local)
		case xml.CharData:
			if err = b.DocumentText(t); err == nil {
				b.Characters(t)
			}
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", lineOf(d), err)
		}
	}
}

func lineOf(d *xml.Decoder) int {
	line, _ := d.InputPos()
	return line
}
