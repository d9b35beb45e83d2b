package sanitize

import (
	"strings"
	"unicode/utf8"
)

// Sanitizer применяет Policy к нику и имени файла
type Sanitizer struct {
	nickname    compiledRule
	fileName    compiledRule
	ellipsis    string
	profanities []profanityPattern
}

// New создает Sanitizer из политики
func New(p *Policy) (*Sanitizer, error) {
	nickname, err := compileRule(p.Nickname)
	if err != nil {
		return nil, err
	}
	fileName, err := compileRule(p.FileName)
	if err != nil {
		return nil, err
	}

	return &Sanitizer{
		nickname:    nickname,
		fileName:    fileName,
		ellipsis:    p.Ellipsis,
		profanities: compileProfanities(p.Profanities),
	}, nil
}

// Default создает Sanitizer со встроенной политикой
func Default() *Sanitizer {
	p, err := DefaultPolicy()
	if err != nil {
		panic(err)
	}
	s, err := New(p)
	if err != nil {
		panic(err)
	}
	return s
}

// Nickname очищает ник отправителя
func (s *Sanitizer) Nickname(in string) string {
	return s.apply(s.nickname, in)
}

// FileName очищает имя файла
func (s *Sanitizer) FileName(in string) string {
	return s.apply(s.fileName, in)
}

// RemoveProfanity маскирует слова из списка звездочками той же длины
func (s *Sanitizer) RemoveProfanity(in string) string {
	for _, p := range s.profanities {
		in = p.re.ReplaceAllLiteralString(in, p.mask)
	}
	return in
}

func (s *Sanitizer) apply(c compiledRule, in string) string {
	out := in
	if c.rule.Whitespace != "" {
		out = whitespacePattern.ReplaceAllLiteralString(out, c.rule.Whitespace)
	}
	out = c.disallowed.ReplaceAllLiteralString(out, "")

	if utf8.RuneCountInString(out) > c.rule.MaxLength {
		out = string([]rune(out)[:c.rule.MaxLength]) + s.ellipsis
	}
	out = strings.TrimSpace(out)

	if utf8.RuneCountInString(out) < c.rule.MinLength {
		return c.rule.Fallback
	}
	return s.RemoveProfanity(out)
}
