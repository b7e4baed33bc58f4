package core

// POS is a part-of-speech tag from the fixed Universal Dependencies
// vocabulary used by the tagging capability.
type POS string

const (
	POSNoun  POS = "NOUN"
	POSVerb  POS = "VERB"
	POSAdj   POS = "ADJ"
	POSAdv   POS = "ADV"
	POSPropn POS = "PROPN"
	POSDet   POS = "DET"
	POSPron  POS = "PRON"
	POSAdp   POS = "ADP"
	POSCconj POS = "CCONJ"
	POSSconj POS = "SCONJ"
	POSPart  POS = "PART"
	POSNum   POS = "NUM"
	POSIntj  POS = "INTJ"
	POSPunct POS = "PUNCT"
	POSSym   POS = "SYM"
	POSX     POS = "X"
	POSAux   POS = "AUX"
)

// POSTags is the fixed tag vocabulary, in canonical order.
var POSTags = []POS{
	POSNoun, POSVerb, POSAdj, POSAdv, POSPropn, POSDet, POSPron,
	POSAdp, POSCconj, POSSconj, POSPart, POSNum, POSIntj, POSPunct,
	POSSym, POSX, POSAux,
}

// IsValidPOS reports whether the tag belongs to the fixed vocabulary.
func IsValidPOS(tag POS) bool {
	for _, p := range POSTags {
		if p == tag {
			return true
		}
	}
	return false
}
