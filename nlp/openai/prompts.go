package openai

import (
	"fmt"
	"strings"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
)

const taggingResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "tokens": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "token": {
            "type": "string"
          },
          "lemma": {
            "type": "string"
          },
          "pos": {
            "type": "string"
          },
          "morph": {
            "type": "string"
          }
        },
        "required": ["token", "lemma", "pos"],
        "additionalProperties": false
      }
    }
  },
  "required": ["tokens"],
  "additionalProperties": false
}`

const taggingPromptTemplate = `Tokenize the given text and tag every token, returning the result as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "token" is the surface form exactly as it appears in the text.
- "lemma" is the dictionary form of the token, lowercase unless the token is a proper noun.
- "pos" must match exactly one of the listed values: %s.
- "morph" names the inflection of the surface form ("past", "plural", "ger", "3sg"); use "base" for uninflected forms.
- Emit one entry per token, in the order the tokens appear. Do not skip words. Drop standalone punctuation.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

// buildTaggingPrompt builds the system prompt for the tagging request.
func buildTaggingPrompt() string {
	tags := make([]string, len(core.POSTags))
	for i, t := range core.POSTags {
		tags[i] = string(t)
	}
	return fmt.Sprintf(taggingPromptTemplate, taggingResponseSchema, strings.Join(tags, ", "))
}

const testingResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "is_polysemous": {
      "type": "boolean"
    },
    "unique_pos": {
      "type": "array",
      "items": {
        "type": "string"
      }
    }
  },
  "required": ["is_polysemous", "unique_pos"],
  "additionalProperties": false
}`

const testingPromptTemplate = `You test whether a word can act as more than one part of speech.

Silently compose %d short natural sentences that each use the given word, then report every distinct
part of speech the word took across those sentences.

Output ONLY valid JSON which complies with the schema given below. Do not include the sentences, any
preamble, explanation, greeting, or acknowledgment. Start your response directly with the opening brace {
and end with the closing brace }. Your output must exactly follow this schema:

%s

Rules:
- Every value in "unique_pos" must match exactly one of: %s.
- "is_polysemous" is true only when "unique_pos" has more than one entry.
- Only report parts of speech the word genuinely takes in ordinary usage. Do not hallucinate rare senses.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

// buildTestingPrompt builds the system prompt for the context-testing request.
func buildTestingPrompt(samples int) string {
	tags := make([]string, len(core.POSTags))
	for i, t := range core.POSTags {
		tags[i] = string(t)
	}
	return fmt.Sprintf(testingPromptTemplate, samples, testingResponseSchema, strings.Join(tags, ", "))
}
