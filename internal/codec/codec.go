package codec

import (
	"context"
	"fmt"
	"runtime"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
	"github.com/mj1618/wintitle/internal/model"
	"golang.org/x/sync/errgroup"
)

// Serialize returns the compact JSON text of r, e.g. {"Name":"CIAO"}.
// It fails with *EncodingError if the name is not valid UTF-8.
func Serialize(r model.Record) (string, error) {
	b, err := Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Marshal is Serialize returning bytes.
func Marshal(r model.Record) ([]byte, error) {
	if off := invalidOffset(r.Name()); off >= 0 {
		return nil, &EncodingError{Field: FieldName, Offset: off}
	}
	w := jwriter.Writer{NoEscapeHTML: true}
	writeRecord(&w, r)
	b, err := w.BuildBytes()
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return b, nil
}

// Decode parses text produced by Serialize back into a Record.
// Unknown members are ignored.
func Decode(text string) (model.Record, error) {
	in := jlexer.Lexer{Data: []byte(text)}
	r, seen := readRecord(&in)
	in.Consumed()
	if err := in.Error(); err != nil {
		return model.Record{}, &DecodeError{Err: err}
	}
	if !seen {
		return model.Record{}, &DecodeError{Err: ErrMissingName}
	}
	return r, nil
}

// SerializeAll serializes records concurrently and returns the texts in
// input order. On the first failure it returns no texts.
func SerializeAll(ctx context.Context, records []model.Record) ([]string, error) {
	out := make([]string, len(records))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, r := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := Serialize(r)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
