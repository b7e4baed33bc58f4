// Package catalog maintains usage statistics for phrase chunks keyed
// by their canonical chunk key. Entries are scored by use and like
// counts plus a linearly decaying recency bonus.
package catalog
