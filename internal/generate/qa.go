// Package generate turns document chunks into candidate questions and
// grounded answers via a prompt-driven text-generation capability.
//
// Both generation paths make a single attempt and degrade to deterministic
// placeholders on failure, so one bad chunk or one bad model response never
// stalls a whole document run.
package generate

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

const (
	questionTemperature = 0.7
	questionMaxTokens   = 300

	answerTemperature = 0.3
	answerMaxTokens   = 200
)

var numberedLine = regexp.MustCompile(`^\d+\.`)
var numberedMarker = regexp.MustCompile(`^\d+\.\s*`)

// QA wraps a Generator with the question/answer prompting and fallback
// policy.
type QA struct {
	gen Generator
	log *slog.Logger
}

func NewQA(gen Generator, log *slog.Logger) *QA {
	if log == nil {
		log = slog.Default()
	}
	return &QA{gen: gen, log: log}
}

// Questions asks the model for 2-3 comprehension questions about chunkText.
// The result always holds at least one non-empty question: a failed call or
// an output with no parseable numbered lines yields a single placeholder
// referencing chunkIndex.
func (q *QA) Questions(ctx context.Context, chunkText string, chunkIndex int) []string {
	text, err := q.gen.Generate(ctx, BuildQuestionPrompt(chunkText), SamplingConfig{
		Temperature: questionTemperature,
		MaxTokens:   questionMaxTokens,
	})
	if err != nil {
		q.log.Warn("question generation failed", "chunk", chunkIndex, "error", err)
		return []string{FallbackQuestion(chunkIndex)}
	}

	questions := ParseNumberedQuestions(text)
	if len(questions) == 0 {
		q.log.Warn("no questions parsed from model output", "chunk", chunkIndex)
		return []string{FallbackQuestion(chunkIndex)}
	}
	return questions
}

// Answer asks the model to answer question strictly from chunkText. The
// result is always non-empty: call failures and blank responses both degrade
// to placeholders referencing chunkIndex.
func (q *QA) Answer(ctx context.Context, question, chunkText string, chunkIndex int) string {
	text, err := q.gen.Generate(ctx, BuildAnswerPrompt(question, chunkText), SamplingConfig{
		Temperature: answerTemperature,
		MaxTokens:   answerMaxTokens,
	})
	if err != nil {
		q.log.Warn("answer generation failed", "chunk", chunkIndex, "error", err)
		return FallbackAnswer(chunkIndex)
	}

	answer := strings.TrimSpace(text)
	if answer == "" {
		return EmptyAnswerFallback(chunkIndex)
	}
	return answer
}

// ParseNumberedQuestions extracts questions from a numbered-list response.
// A line counts only if it starts with a numeral followed by a period; the
// "N. " marker is stripped and blank remainders are dropped.
func ParseNumberedQuestions(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if !numberedLine.MatchString(line) {
			continue
		}
		q := strings.TrimSpace(numberedMarker.ReplaceAllString(line, ""))
		if q != "" {
			out = append(out, q)
		}
	}
	return out
}
