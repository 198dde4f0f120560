package logging

// Field name constants for structured logging, preventing typos across
// call sites.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"

	FieldWidth        = "width"
	FieldOverwrite    = "overwrite"
	FieldReplacements = "replacements"
	FieldSkip         = "skip"

	FieldFilesProcessed = "files_processed"
	FieldFilesModified  = "files_modified"
	FieldFilesFailed    = "files_failed"

	FieldRuleID      = "rule_id"
	FieldRuleKeyword = "rule_keyword"
	FieldName        = "name"
)
