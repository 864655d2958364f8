package output

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/generator"
)

// LookupEncoding resolves an IANA character set name such as "ISO-8859-1",
// "windows-1252" or "UTF-16". An empty name or UTF-8 returns nil, meaning the
// generated text is written unchanged.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.WrapConfigurationError("encoding", "resolve", err).
			WithSuggestion("use an IANA character set name such as ISO-8859-1 or windows-1252")
	}
	if enc == nil {
		return nil, errors.Newf(errors.ConfigurationErrorCode, "encoding %q is known but not supported", name)
	}
	return enc, nil
}

// encodingFor prefers the encoding the source file names over the writer's
// default.
func encodingFor(r *generator.Result, fallback encoding.Encoding) (encoding.Encoding, error) {
	if r.File == nil || strings.TrimSpace(r.File.Encoding) == "" {
		return fallback, nil
	}
	return LookupEncoding(r.File.Encoding)
}

// encode converts UTF-8 text to enc; a nil enc returns src.
func encode(enc encoding.Encoding, src []byte) ([]byte, error) {
	if enc == nil {
		return src, nil
	}
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, enc.NewEncoder())
	if _, err := w.Write(src); err != nil {
		return nil, errors.Wrap(errors.GenerationErrorCode, "failed to encode generated source", err)
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(errors.GenerationErrorCode, "failed to encode generated source", err)
	}
	return buf.Bytes(), nil
}
