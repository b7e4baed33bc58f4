// Copyright 2025 CalmEddy
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
)

const (
	litPrefix   = "LIT:"
	chunkPrefix = "CHUNK:"
)

// ParseTemplateText parses a template string into a token sequence.
// Bracket nesting is tracked by depth so [CHUNK:[...]] directives parse
// correctly; any unbalanced bracket aborts the whole parse with
// ErrMalformedTemplate.
func ParseTemplateText(text string) ([]Token, error) {
	var tokens []Token
	var free strings.Builder

	flushFree := func() {
		run := strings.TrimSpace(free.String())
		free.Reset()
		if run != "" {
			tokens = append(tokens, Token{Kind: TokenLiteral, Text: run})
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); {
		switch runes[i] {
		case '[':
			flushFree()
			end, ok := matchBracket(runes, i)
			if !ok {
				return nil, fmt.Errorf("%w: unbalanced %q at offset %d", ErrMalformedTemplate, '[', i)
			}
			raw := string(runes[i : end+1])
			token, err := parseDirective(raw, string(runes[i+1:end]))
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
			i = end + 1
		case ']':
			return nil, fmt.Errorf("%w: unbalanced %q at offset %d", ErrMalformedTemplate, ']', i)
		default:
			free.WriteRune(runes[i])
			i++
		}
	}
	flushFree()
	return tokens, nil
}

// matchBracket returns the index of the ']' closing the '[' at start.
func matchBracket(runes []rune, start int) (int, bool) {
	depth := 0
	for i := start; i < len(runes); i++ {
		switch runes[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func parseDirective(raw, inner string) (Token, error) {
	switch {
	case strings.HasPrefix(inner, litPrefix):
		return Token{
			Kind: TokenLiteral,
			Raw:  raw,
			Text: strings.TrimPrefix(inner, litPrefix),
		}, nil
	case strings.HasPrefix(inner, chunkPrefix):
		return parseChunkDirective(raw, strings.TrimPrefix(inner, chunkPrefix))
	default:
		return parseSlotDirective(raw, inner)
	}
}

// parseSlotDirective handles [POS], [POS:morph], [POS<N>] and
// [POS:morph<N>].
func parseSlotDirective(raw, inner string) (Token, error) {
	spec := inner
	num := ""
	if open := strings.IndexRune(spec, '<'); open >= 0 {
		if !strings.HasSuffix(spec, ">") {
			return Token{}, fmt.Errorf("%w: bad binding in %q", ErrMalformedTemplate, raw)
		}
		num = spec[open+1 : len(spec)-1]
		if _, err := strconv.Atoi(num); err != nil {
			return Token{}, fmt.Errorf("%w: bad binding id in %q", ErrMalformedTemplate, raw)
		}
		spec = spec[:open]
	}

	pos, morph, _ := strings.Cut(spec, ":")
	tag := core.POS(pos)
	if !core.IsValidPOS(tag) {
		return Token{}, fmt.Errorf("%w: unknown POS %q in %q", ErrMalformedTemplate, pos, raw)
	}
	bindID := ""
	if num != "" {
		// Canonical binding id: first letter of the POS plus the number.
		bindID = string(tag[0]) + num
	}
	return Token{
		Kind:   TokenSlot,
		Raw:    raw,
		POS:    tag,
		Morph:  morph,
		BindID: bindID,
	}, nil
}

// parseChunkDirective expands [CHUNK:[POS-POS-...]] into the equivalent
// space-separated slot directives and parses them recursively. The
// token keeps both the original raw text and the parsed inner sequence.
func parseChunkDirective(raw, inner string) (Token, error) {
	if !strings.HasPrefix(inner, "[") || !strings.HasSuffix(inner, "]") {
		return Token{}, fmt.Errorf("%w: chunk pattern missing brackets in %q", ErrMalformedTemplate, raw)
	}
	pattern := inner[1 : len(inner)-1]
	if pattern == "" {
		return Token{}, fmt.Errorf("%w: empty chunk pattern in %q", ErrMalformedTemplate, raw)
	}

	parts := strings.Split(pattern, "-")
	slots := make([]string, 0, len(parts))
	for _, part := range parts {
		// A canonical pattern segment may carry a morph as POS|morph;
		// it becomes the slot form POS:morph.
		pos, morph, hasMorph := strings.Cut(part, "|")
		if hasMorph {
			slots = append(slots, "["+pos+":"+morph+"]")
		} else {
			slots = append(slots, "["+pos+"]")
		}
	}

	sub, err := ParseTemplateText(strings.Join(slots, " "))
	if err != nil {
		return Token{}, fmt.Errorf("%w: in chunk %q", err, raw)
	}
	return Token{
		Kind: TokenSubtemplate,
		Raw:  raw,
		Sub:  sub,
	}, nil
}
