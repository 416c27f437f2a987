package services

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Segmenter splits plain text into sentence-level units and groups them into
// paragraphs using a Punkt sentence tokenizer.
type Segmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSegmenter builds a Segmenter backed by the English sentence model.
func NewSegmenter() (*Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}
	return &Segmenter{tokenizer: tokenizer}, nil
}

// SegmentParagraphs detects sentence boundaries in text and groups the
// sentences into paragraphs. Every detected sentence is appended to one
// running group and a single paragraph is finalized at the end, so non-empty
// input always yields exactly one space-joined paragraph. Empty or
// whitespace-only input yields no paragraphs.
func (s *Segmenter) SegmentParagraphs(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var paragraphs []string
	var current []string

	for _, sentence := range s.tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(sentence.Text)
		if trimmed == "" {
			continue
		}
		current = append(current, trimmed)
	}

	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}

	return paragraphs
}
