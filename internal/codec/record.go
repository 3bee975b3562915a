package codec

import (
	"strconv"
	"unicode/utf8"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
	"github.com/mj1618/wintitle/internal/model"
)

// FieldName is the JSON member holding Record.Name.
const FieldName = "Name"

// writeRecord writes r as {"Name":"..."}.
func writeRecord(w *jwriter.Writer, r model.Record) {
	w.RawByte('{')
	w.RawString(`"` + FieldName + `":`)
	w.String(r.Name())
	w.RawByte('}')
}

// readRecord reads one record object. The second result reports whether
// a non-null Name member was present. Errors are left on the lexer.
func readRecord(in *jlexer.Lexer) (model.Record, bool) {
	var (
		name string
		seen bool
	)
	if in.IsNull() {
		in.Skip()
		return model.Record{}, false
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case FieldName:
			if in.IsNull() {
				in.Skip()
			} else if n, err := readName(in.Raw()); err != nil {
				in.AddError(err)
			} else {
				name = n
				seen = true
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	return model.NewRecord(name), seen
}

// invalidOffset returns the byte offset of the first malformed UTF-8
// sequence in s, or -1 if s is valid.
func invalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// readName decodes the raw JSON value of the Name member. jlexer maps
// unpaired surrogate escapes to U+FFFD and passes malformed bytes through,
// so both are checked here. Offsets are relative to raw.
func readName(raw []byte) (string, error) {
	if raw == nil {
		return "", nil // lexer already holds the error
	}
	if off := unpairedSurrogate(raw); off >= 0 {
		return "", &EncodingError{Field: FieldName, Offset: off}
	}
	sub := jlexer.Lexer{Data: raw}
	name := sub.String()
	sub.Consumed()
	if err := sub.Error(); err != nil {
		return "", err
	}
	if off := invalidOffset(name); off >= 0 {
		return "", &EncodingError{Field: FieldName, Offset: off}
	}
	return name, nil
}

// unpairedSurrogate returns the offset of the first \uXXXX escape in raw
// that is a surrogate half without its partner, or -1.
func unpairedSurrogate(raw []byte) int {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' {
			continue
		}
		r, ok := escapedRune(raw, i)
		if !ok {
			i++ // skip the escaped byte
			continue
		}
		switch {
		case r >= 0xD800 && r < 0xDC00:
			if lo, ok := escapedRune(raw, i+6); ok && lo >= 0xDC00 && lo < 0xE000 {
				i += 11
				continue
			}
			return i
		case r >= 0xDC00 && r < 0xE000:
			return i
		}
		i += 5
	}
	return -1
}

// escapedRune parses a \uXXXX escape starting at raw[i].
func escapedRune(raw []byte, i int) (rune, bool) {
	if i+6 > len(raw) || raw[i] != '\\' || raw[i+1] != 'u' {
		return 0, false
	}
	v, err := strconv.ParseUint(string(raw[i+2:i+6]), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
