// Package lang holds the per-language syntax table and the policy each
// target language plugs into the shared generation pipeline.
package lang

import (
	"strings"

	"github.com/toyz/polygen/internal/errors"
	"github.com/toyz/polygen/internal/utils"
)

// Language identifies a target language.
type Language string

const (
	Java       Language = "java"
	CSharp     Language = "csharp"
	Cpp        Language = "cpp"
	PHP        Language = "php"
	Delphi     Language = "delphi"
	VBNet      Language = "vbnet"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	Ruby       Language = "ruby"
	Go         Language = "go"
)

func (l Language) String() string { return string(l) }

var aliases = map[string]Language{
	"c#":     CSharp,
	"cs":     CSharp,
	"c++":    Cpp,
	"cxx":    Cpp,
	"pascal": Delphi,
	"vb":     VBNet,
	"vb.net": VBNet,
	"js":     JavaScript,
	"ts":     TypeScript,
	"rb":     Ruby,
	"golang": Go,
}

var policies = utils.NewRegistry("language",
	utils.Unique[Language, *Policy](),
	func(l Language, p *Policy, _ map[Language]*Policy) error {
		if p.Extension == "" || p.Indent == "" {
			return errors.Newf(errors.ConfigurationErrorCode, "language %s policy is incomplete", l)
		}
		return nil
	},
)

func init() {
	for _, p := range builtinPolicies() {
		if err := policies.Register(p.Language, p); err != nil {
			panic(err)
		}
	}
}

// Parse resolves a language name or alias, case-insensitively.
func Parse(name string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if l, ok := aliases[key]; ok {
		return l, nil
	}
	l := Language(key)
	if policies.Has(l) {
		return l, nil
	}
	return "", errors.UnknownLanguageError(name, Names())
}

// All returns every supported language in name order.
func All() []Language {
	return policies.Keys()
}

// Names returns every supported language name in order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, l := range all {
		names[i] = string(l)
	}
	return names
}

// PolicyFor returns the policy of a supported language.
func PolicyFor(l Language) (*Policy, error) {
	p, ok := policies.Get(l)
	if !ok {
		return nil, errors.UnknownLanguageError(string(l), Names())
	}
	return p, nil
}

// MustPolicy is like PolicyFor but panics for unknown languages.
func MustPolicy(l Language) *Policy {
	p, err := PolicyFor(l)
	if err != nil {
		panic(err)
	}
	return p
}
