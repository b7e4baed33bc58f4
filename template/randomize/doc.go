// Package randomize implements the slot-randomization strategies and
// template-selection policies applied to parsed templates. Strategies
// only ever add substitution marks; a later pass never clears a mark
// set by an earlier one.
package randomize
