// Package sanitize очищает свободный текст (ник и имя файла) перед сохранением.
package sanitize

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed default_policy.yaml
var defaultPolicy []byte

// FieldRule описывает очистку одного поля
type FieldRule struct {
	Whitespace string `yaml:"whitespace"` // замена для пробельных символов, пусто = оставить
	Disallowed string `yaml:"disallowed"` // регулярное выражение удаляемых символов
	Fallback   string `yaml:"fallback"`   // значение, если после очистки строка слишком короткая
	MaxLength  int    `yaml:"maxLength"`
	MinLength  int    `yaml:"minLength"`
}

// Policy политика очистки, загружаемая из YAML
type Policy struct {
	Ellipsis    string    `yaml:"ellipsis"`
	Profanities []string  `yaml:"profanities"`
	Nickname    FieldRule `yaml:"nickname"`
	FileName    FieldRule `yaml:"fileName"`
}

// DefaultPolicy возвращает встроенную политику
func DefaultPolicy() (*Policy, error) {
	return ParsePolicy(defaultPolicy)
}

// ParsePolicy разбирает политику из YAML
func ParsePolicy(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse sanitize policy: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadPolicy загружает политику из файла. Пустой путь означает встроенную политику.
func LoadPolicy(path string) (*Policy, error) {
	if path == "" {
		return DefaultPolicy()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sanitize policy: %w", err)
	}

	return ParsePolicy(data)
}

func (p *Policy) validate() error {
	for name, rule := range map[string]FieldRule{"nickname": p.Nickname, "fileName": p.FileName} {
		if rule.MaxLength <= 0 {
			return fmt.Errorf("sanitize policy: %s.maxLength must be positive", name)
		}
		if rule.Fallback == "" {
			return fmt.Errorf("sanitize policy: %s.fallback is required", name)
		}
		if rule.Disallowed == "" {
			return errors.New("sanitize policy: " + name + ".disallowed is required")
		}
	}
	return nil
}

// compiledRule скомпилированная версия FieldRule
type compiledRule struct {
	disallowed *regexp.Regexp
	rule       FieldRule
}

var whitespacePattern = regexp.MustCompile(`[\r\n\s]`)

func compileRule(rule FieldRule) (compiledRule, error) {
	re, err := regexp.Compile(rule.Disallowed)
	if err != nil {
		return compiledRule{}, fmt.Errorf("invalid disallowed pattern %q: %w", rule.Disallowed, err)
	}
	return compiledRule{rule: rule, disallowed: re}, nil
}

// profanityPattern слово из списка и его маска
type profanityPattern struct {
	re   *regexp.Regexp
	mask string
}

func compileProfanities(words []string) []profanityPattern {
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			cleaned = append(cleaned, w)
		}
	}

	// Длинные слова первыми, чтобы "putain" не маскировалось частично
	sort.SliceStable(cleaned, func(i, j int) bool {
		return utf8.RuneCountInString(cleaned[i]) > utf8.RuneCountInString(cleaned[j])
	})

	patterns := make([]profanityPattern, 0, len(cleaned))
	for _, w := range cleaned {
		patterns = append(patterns, profanityPattern{
			re:   regexp.MustCompile(`(?i)` + regexp.QuoteMeta(w)),
			mask: strings.Repeat("*", utf8.RuneCountInString(w)),
		})
	}
	return patterns
}
