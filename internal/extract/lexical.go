package extract

import (
	"context"
	"strings"
	"unicode"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"go.uber.org/zap"

	"github.com/careertools/skillscan/internal/skills"
)

// Lexical extracts skills by direct token and phrase matching against the
// vocabulary, with a fuzzy similarity pass to tolerate typos. It needs no
// network access.
type Lexical struct {
	table      *skills.SynonymTable
	similarity float64
	logger     *zap.Logger
}

func NewLexical(table *skills.SynonymTable, similarity float64, logger *zap.Logger) *Lexical {
	if similarity <= 0 || similarity > 1 {
		similarity = DefaultSimilarity
	}

	return &Lexical{
		table:      table,
		similarity: similarity,
		logger:     logger,
	}
}

func (l *Lexical) Extract(_ context.Context, text string) ([]string, error) {
	text = strings.ToLower(text)
	tokens := tokenize(text)
	ratioThreshold := int(l.similarity * 100)

	var extracted []string
	for _, canonical := range l.table.Canonical() {
		if l.skillPresent(canonical, text, tokens, ratioThreshold) {
			extracted = append(extracted, canonical)
		}
	}

	l.logger.Debug("lexical extraction completed",
		zap.Int("tokens", len(tokens)),
		zap.Strings("extracted_skills", extracted),
	)

	return extracted, nil
}

func (l *Lexical) skillPresent(canonical, text string, tokens []string, ratioThreshold int) bool {
	for _, form := range l.table.Forms(canonical) {
		// Multi-word and punctuated forms are matched as phrases.
		if strings.ContainsAny(form, " .-") {
			if strings.Contains(text, form) {
				return true
			}
			continue
		}

		for _, token := range tokens {
			if token == form {
				return true
			}
			// The fuzzy pass is for typos in real words; two-letter tokens
			// produce too many accidental hits.
			if len(token) >= 3 && len(form) >= 3 && fuzzy.Ratio(token, form) >= ratioThreshold {
				return true
			}
		}
	}
	return false
}

// tokenize splits lowered text into word-ish tokens, keeping characters that
// appear inside skill names ("c++", "node.js").
func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#' && r != '.'
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.Trim(field, ".")
		if field != "" {
			tokens = append(tokens, field)
		}
	}
	return tokens
}
