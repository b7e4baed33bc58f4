package template

import "github.com/CalmEddy/SimpleThink-v3-sub002/core"

// TokenKind discriminates parsed template tokens.
type TokenKind int

const (
	// TokenLiteral is fixed surface text, from free-running text or a
	// [LIT:...] directive. The two are indistinguishable by value.
	TokenLiteral TokenKind = iota + 1
	// TokenSlot is a POS slot to be filled at instantiation time.
	TokenSlot
	// TokenSubtemplate is an expanded [CHUNK:[...]] directive carrying
	// its parsed inner sequence.
	TokenSubtemplate
)

// Token is one unit of a parsed template.
type Token struct {
	Kind TokenKind

	// Raw is the original directive text, including brackets. Empty for
	// free-running literal text.
	Raw string

	// Text is the surface text of a literal.
	Text string

	// POS and Morph describe a slot. Morph is empty when the slot does
	// not constrain inflection.
	POS   core.POS
	Morph string

	// BindID is the canonical binding id ("V2") when the slot declares
	// one, empty otherwise.
	BindID string

	// Sub is the parsed inner sequence of a subtemplate.
	Sub []Token

	// Marked records a randomization outcome: the slot was chosen for
	// substitution. Strategies only ever set it, never clear it.
	Marked bool
}

// Binding describes a slot that declared a binding id.
type Binding struct {
	ID    string
	POS   core.POS
	Morph string
}

// BuildBindings collects bindings from the token sequence, recursing
// into subtemplates. The first occurrence of an id wins. Returns nil,
// not an empty map, when no slot declares a binding.
func BuildBindings(tokens []Token) map[string]Binding {
	var bindings map[string]Binding
	collectBindings(tokens, &bindings)
	return bindings
}

func collectBindings(tokens []Token, bindings *map[string]Binding) {
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenSlot:
			if tok.BindID == "" {
				continue
			}
			if *bindings == nil {
				*bindings = make(map[string]Binding)
			}
			if _, exists := (*bindings)[tok.BindID]; !exists {
				(*bindings)[tok.BindID] = Binding{
					ID:    tok.BindID,
					POS:   tok.POS,
					Morph: tok.Morph,
				}
			}
		case TokenSubtemplate:
			collectBindings(tok.Sub, bindings)
		}
	}
}
