package config

import "fmt"

// defaultTemplateHeader documents every recognized key in the template
// --init-config writes.
const defaultTemplateHeader = `# md-fixup configuration
#
# width: wrap width for rule 14 (0 disables wrapping)
# overwrite: write results back to each input file instead of stdout
# replacements: enable the user-defined replacements engine
# replacements_file: path to a replacements YAML file
# list_reset: true forces every ordered list to restart at 1 (rule 27)
# rules:
#   skip: rule IDs, keywords, or group aliases to disable (or "all")
#   include: rules to re-enable when skip is "all"
`

// GenerateTemplate renders the default configuration as a commented YAML
// template suitable for --init-config.
func GenerateTemplate() ([]byte, error) {
	body, err := Default().ToYAML()
	if err != nil {
		return nil, fmt.Errorf("generate config template: %w", err)
	}
	out := append([]byte(defaultTemplateHeader), '\n')
	out = append(out, body...)
	return out, nil
}
