// Package template parses the bracket mini-language used to describe
// phrase templates: literal text, POS slots with optional morph
// features and binding ids, and chunk subtemplates that expand a POS
// pattern into nested slots.
package template
