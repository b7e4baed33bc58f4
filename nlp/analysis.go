package nlp

import (
	"context"
	"log/slog"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
)

// Provenance values attached to an Analysis. Callers use these for
// diagnostics only, never for control flow.
const (
	// ProvenanceContextTest marks an analysis produced by the
	// context-testing capability.
	ProvenanceContextTest = "context-test"

	// ProvenanceFallback marks an analysis degraded to the single
	// observed tag after a capability failure.
	ProvenanceFallback = "fallback"
)

// Analysis is the resolved POS candidate set for a lemma.
type Analysis struct {
	Lemma        string
	Tags         []core.POS
	IsPolysemous bool
	Provenance   string
}

// AnalyzeWordPOS resolves the candidate tag set for a lemma by invoking
// the context-testing capability. When the capability reports polysemy
// with more than one distinct tag, the full set is returned. A capability
// failure is non-fatal: the analysis degrades to the single observed tag
// with ProvenanceFallback.
func AnalyzeWordPOS(ctx context.Context, tester ContextTester, lemma string, observed core.POS) *Analysis {
	report, err := tester.TestWord(ctx, lemma)
	if err != nil {
		slog.Warn("context test failed, falling back to observed tag",
			"lemma", lemma, "observed", observed, "err", err)
		return &Analysis{
			Lemma:      lemma,
			Tags:       []core.POS{observed},
			Provenance: ProvenanceFallback,
		}
	}

	if report.IsPolysemous && len(report.UniquePOS) > 1 {
		return &Analysis{
			Lemma:        lemma,
			Tags:         report.UniquePOS,
			IsPolysemous: true,
			Provenance:   ProvenanceContextTest,
		}
	}

	return &Analysis{
		Lemma:      lemma,
		Tags:       []core.POS{observed},
		Provenance: ProvenanceContextTest,
	}
}
