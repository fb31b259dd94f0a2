// Package chunker splits raw document text into word-budgeted chunks.
//
// The strategy is greedy paragraph packing: paragraphs are appended to an
// accumulator until adding the next one would push the word count past the
// target, at which point the accumulator is flushed as a chunk. The target is
// a soft threshold — a chunk may overflow by one paragraph.
package chunker

import (
	"regexp"
	"strings"
)

// DefaultTargetWords is the word budget used when no override is given.
const DefaultTargetWords = 500

// Chunk is one contiguous span of a document, ready for Q&A generation.
type Chunk struct {
	Index     int    `json:"id"`        // 1-based position in the document
	Text      string `json:"text"`      // literal chunk content
	WordCount int    `json:"wordCount"` // space-delimited token count of Text
}

var blankLine = regexp.MustCompile(`\n{2,}`)

// Split breaks documentText into chunk texts of roughly targetWords words
// each. Paragraph order is preserved and paragraphs are never split across
// chunks. If no usable paragraphs are found the entire input is emitted as a
// single chunk, so the result is never empty.
func Split(documentText string, targetWords int) []string {
	if targetWords <= 0 {
		targetWords = DefaultTargetWords
	}

	var chunks []string
	var current string

	for _, para := range Paragraphs(documentText) {
		if WordCount(current)+WordCount(para) > targetWords && current != "" {
			chunks = append(chunks, strings.TrimSpace(current))
			current = para
			continue
		}
		if current != "" {
			current += "\n\n"
		}
		current += para
	}

	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	if len(chunks) == 0 {
		return []string{documentText}
	}
	return chunks
}

// Paragraphs splits text on blank-line boundaries (two or more consecutive
// newlines) and drops paragraphs that are empty after trimming.
func Paragraphs(text string) []string {
	var out []string
	for _, p := range blankLine.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// WordCount counts tokens delimited by single literal spaces. Tabs and
// newlines inside a paragraph do not separate tokens; this matches the
// counting used to enforce the chunk budget, so reported word counts and
// packing decisions always agree.
func WordCount(s string) int {
	if s == "" {
		return 0
	}
	return len(strings.Split(s, " "))
}
