// Package typography holds the static substitution tables rule 24
// (typography) applies: curly to straight quotes, en/em dashes, ellipses,
// and guillemets.
package typography

// Substitution is one static find/replace pair. Order matters: longer or
// more specific patterns are listed before shorter ones that could
// otherwise shadow them.
type Substitution struct {
	Name string
	From string
	To   string
}

// QuoteSubs straightens curly quotes.
var QuoteSubs = []Substitution{
	{Name: "double-quote-open", From: "“", To: `"`},
	{Name: "double-quote-close", From: "”", To: `"`},
	{Name: "single-quote-open", From: "‘", To: "'"},
	{Name: "single-quote-close", From: "’", To: "'"},
}

// DashSubs normalizes en and em dashes.
var DashSubs = []Substitution{
	{Name: "em-dash", From: "—", To: "--"},
	{Name: "en-dash", From: "–", To: "-"},
}

// EllipsisSubs collapses the single ellipsis glyph to three periods.
var EllipsisSubs = []Substitution{
	{Name: "ellipsis", From: "…", To: "..."},
}

// GuillemetSubs straightens French-style quotation guillemets.
var GuillemetSubs = []Substitution{
	{Name: "guillemet-open", From: "«", To: `"`},
	{Name: "guillemet-close", From: "»", To: `"`},
}

// All returns every substitution table in application order, tagged with
// the sub-skip keyword that can disable it. Quote and ellipsis
// substitutions have no sub-skip keyword of their own; they are only
// disabled by skipping rule 24 entirely.
func All() []Substitution {
	out := make([]Substitution, 0, len(QuoteSubs)+len(DashSubs)+len(EllipsisSubs)+len(GuillemetSubs))
	out = append(out, QuoteSubs...)
	out = append(out, DashSubs...)
	out = append(out, EllipsisSubs...)
	out = append(out, GuillemetSubs...)
	return out
}

// SubSkip names the sub-behavior keywords rule 24 recognizes.
const (
	SubSkipEmDash    = "em-dash"
	SubSkipGuillemet = "guillemet"
)
