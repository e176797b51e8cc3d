package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/careertools/skillscan/internal/extract"
	"github.com/careertools/skillscan/internal/skills"
	"github.com/careertools/skillscan/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Extractor asks Gemini which vocabulary skills a piece of text demonstrates.
// Responses are filtered back through the vocabulary, so alias forms and
// hallucinated labels never leak out.
type Extractor struct {
	generator  contentGenerator
	table      *skills.SynonymTable
	similarity float64
	logger     *zap.Logger
	maxLogLen  int
}

func NewExtractor(generator contentGenerator, table *skills.SynonymTable, similarity float64, maxLogLength int, logger *zap.Logger) *Extractor {
	if similarity <= 0 || similarity > 1 {
		similarity = extract.DefaultSimilarity
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Extractor{
		generator:  generator,
		table:      table,
		similarity: similarity,
		logger:     logger,
		maxLogLen:  maxLogLength,
	}
}

func (e *Extractor) Extract(ctx context.Context, text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	prompt := e.buildPrompt(text)

	e.logger.Debug("gemini extract request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("gemini extract response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, e.maxLogLen)),
	)

	labels, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	return e.canonicalize(labels), nil
}

func (e *Extractor) buildPrompt(text string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Vocabulary:\n{{VOCABULARY}}\n\nText:\n{{TEXT}}\n\nJSON Response:"
	}

	prompt := strings.ReplaceAll(template, "{{VOCABULARY}}", strings.Join(e.table.Canonical(), ", "))
	prompt = strings.ReplaceAll(prompt, "{{CONFIDENCE}}", strconv.FormatFloat(e.similarity, 'f', 2, 64))
	prompt = strings.ReplaceAll(prompt, "{{TEXT}}", text)
	return prompt
}

// canonicalize maps returned labels onto canonical vocabulary forms, keeping
// table order and dropping anything outside the vocabulary.
func (e *Extractor) canonicalize(labels []string) []string {
	reported := skills.NewSet(labels...)

	var out []string
	for _, canonical := range e.table.Canonical() {
		if reported.ContainsAny(e.table.Forms(canonical)...) {
			out = append(out, canonical)
		}
	}
	return out
}

func parseResponse(raw string) ([]string, error) {
	cleaned := extractJSON(raw)

	var envelope struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(cleaned), &envelope); err == nil {
		return envelope.Skills, nil
	}

	// Some responses come back as a bare array.
	var labels []string
	if err := json.Unmarshal([]byte(cleaned), &labels); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}
	return labels, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
