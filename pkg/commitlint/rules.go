package commitlint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds the title grammar: the valid type and scope sets and the
// length limits. Membership is exact-match and case-sensitive. A Rules value
// is read-only after construction.
type Rules struct {
	Types      []string `yaml:"types"`
	Scopes     []string `yaml:"scopes"`
	MaxSubject int      `yaml:"max_subject"`
	MaxScope   int      `yaml:"max_scope"`
}

// Default returns the project grammar: the conventional-commit type set and
// the repository's scope set.
func Default() Rules {
	return Rules{
		Types: []string{
			"feat", "fix", "docs", "style", "refactor",
			"perf", "test", "build", "ci", "chore", "revert",
		},
		Scopes:     []string{"testing-sdk", "examples"},
		MaxSubject: 50,
		MaxScope:   30,
	}
}

// Load reads a YAML rules file. Fields absent from the file keep their
// default values, so a file may override just the scope set.
func Load(path string) (Rules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("commitlint: read rules: %w", err)
	}

	var overlay struct {
		Types      []string `yaml:"types"`
		Scopes     []string `yaml:"scopes"`
		MaxSubject *int     `yaml:"max_subject"`
		MaxScope   *int     `yaml:"max_scope"`
	}
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return Rules{}, fmt.Errorf("commitlint: parse rules %s: %w", path, err)
	}

	rules := Default()
	if overlay.Types != nil {
		rules.Types = overlay.Types
	}
	if overlay.Scopes != nil {
		rules.Scopes = overlay.Scopes
	}
	if overlay.MaxSubject != nil {
		rules.MaxSubject = *overlay.MaxSubject
	}
	if overlay.MaxScope != nil {
		rules.MaxScope = *overlay.MaxScope
	}
	return rules, nil
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
