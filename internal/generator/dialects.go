package generator

import (
	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/lang"
)

var _ CodeGenerator = (*Generator)(nil)

var dialects = map[lang.Language]func(p *lang.Policy) Dialect{
	lang.Java:       func(p *lang.Policy) Dialect { return &javaDialect{policy: p} },
	lang.CSharp:     func(p *lang.Policy) Dialect { return &csharpDialect{policy: p} },
	lang.Cpp:        func(p *lang.Policy) Dialect { return &cppDialect{policy: p} },
	lang.PHP:        func(p *lang.Policy) Dialect { return &phpDialect{policy: p} },
	lang.Delphi:     func(p *lang.Policy) Dialect { return &delphiDialect{policy: p} },
	lang.VBNet:      func(p *lang.Policy) Dialect { return &vbDialect{policy: p} },
	lang.JavaScript: func(p *lang.Policy) Dialect { return &ecmaDialect{policy: p} },
	lang.TypeScript: func(p *lang.Policy) Dialect { return &ecmaDialect{policy: p, typed: true} },
	lang.Ruby:       func(p *lang.Policy) Dialect { return &rubyDialect{policy: p} },
	lang.Go:         func(p *lang.Policy) Dialect { return &goDialect{policy: p} },
}

// packageChecker is implemented by dialects that constrain the package value.
type packageChecker interface {
	CheckPackage(pkg string) error
}

// newDialect returns a fresh dialect for l. Dialects are stateful and must not
// be shared between transformations.
func newDialect(l lang.Language) (Dialect, error) {
	factory, ok := dialects[l]
	if !ok {
		return nil, errors.UnknownLanguageError(string(l), lang.Names())
	}
	p, err := lang.PolicyFor(l)
	if err != nil {
		return nil, err
	}
	return factory(p), nil
}

