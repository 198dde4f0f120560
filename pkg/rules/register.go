package rules

// RegisterAll registers every built-in rule (IDs 1-33) into r, grouped by
// concern.
func RegisterAll(r *Registry) {
	registerWhitespaceRules(r)
	registerHeadingRules(r)
	registerCodeBlockRules(r)
	registerListRules(r)
	registerHRRules(r)
	registerWrapRules(r)
	registerMetadataRules(r)
	registerLinkRules(r)
	registerBlockquoteRules(r)
	registerTableRules(r)
	registerEmojiRules(r)
	registerEmphasisRules(r)
	registerLiquidRules(r)
}
