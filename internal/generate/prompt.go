package generate

import (
	"fmt"
	"strings"
)

const questionInstructions = `Based on the following text chunk, generate 2-3 specific, answerable questions that test comprehension of the key information. The questions should be clear, focused, and directly answerable from the content provided.`

const questionFormat = `Generate questions in this format:
1. [Question 1]
2. [Question 2]
3. [Question 3]

Focus on:
- Key facts and concepts
- Important details
- Main ideas
- Specific information that can be clearly answered

Questions:`

// BuildQuestionPrompt assembles the comprehension-question prompt for a chunk.
func BuildQuestionPrompt(chunkText string) string {
	var sb strings.Builder
	sb.WriteString(questionInstructions)
	sb.WriteString("\n\nText chunk:\n")
	sb.WriteString(chunkText)
	sb.WriteString("\n\n")
	sb.WriteString(questionFormat)
	return sb.String()
}

// BuildAnswerPrompt assembles the grounded-answer prompt for one question
// about a chunk.
func BuildAnswerPrompt(question, chunkText string) string {
	var sb strings.Builder
	sb.WriteString("Based on the following text chunk, provide a comprehensive and accurate answer to the question. The answer should be directly based on the information in the text and be complete but concise.")
	sb.WriteString("\n\nText chunk:\n")
	sb.WriteString(chunkText)
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(question)
	sb.WriteString("\n\nProvide a clear, factual answer based solely on the information in the text chunk:")
	return sb.String()
}

// FallbackQuestion is the deterministic placeholder used when question
// generation fails or parses to nothing.
func FallbackQuestion(chunkIndex int) string {
	return fmt.Sprintf("What information is provided in chunk %d?", chunkIndex)
}

// FallbackAnswer is the deterministic placeholder used when answer generation
// fails outright.
func FallbackAnswer(chunkIndex int) string {
	return fmt.Sprintf("This answer is based on the content from chunk %d of the document.", chunkIndex)
}

// EmptyAnswerFallback is used when the model call succeeds but returns a
// blank answer.
func EmptyAnswerFallback(chunkIndex int) string {
	return fmt.Sprintf("Based on the provided text, this information relates to the content in chunk %d.", chunkIndex)
}
