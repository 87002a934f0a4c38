package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nexus-nlp/nexus/pkg/common"
)

var (
	// ErrNoMentions indicates a document with an empty mention list.
	ErrNoMentions = errors.New("loader: document contains no mentions")

	// ErrUnordered indicates mentions that are not sorted by offset.
	ErrUnordered = errors.New("loader: mentions are not ordered by offset")

	// ErrNegativePosition indicates a mention with a negative offset or
	// sentence index.
	ErrNegativePosition = errors.New("loader: mention has a negative position")
)

// MentionDocument is the input format produced by the upstream NLP stage:
// the detected mentions of one document, ordered by offset, plus the source
// sentences when sentiment enrichment is wanted.
type MentionDocument struct {
	Name      string           `json:"name"`
	Sentences []string         `json:"sentences,omitempty"`
	Mentions  []common.Mention `json:"mentions"`
}

// Validate checks the structural requirements the analysis pipeline depends
// on: at least one mention, non-negative offsets and sentence indices,
// offsets in ascending order, and sentence indices that stay within the
// sentence list when one is present.
func (d *MentionDocument) Validate() error {
	if len(d.Mentions) == 0 {
		return ErrNoMentions
	}

	prev := -1
	for i, m := range d.Mentions {
		if m.Offset < 0 || m.SentenceIndex < 0 {
			return fmt.Errorf("%w (mention %d: offset %d, sentence %d)", ErrNegativePosition, i, m.Offset, m.SentenceIndex)
		}
		if m.Offset < prev {
			return fmt.Errorf("%w (mention %d at offset %d after %d)", ErrUnordered, i, m.Offset, prev)
		}
		prev = m.Offset

		if len(d.Sentences) > 0 && m.SentenceIndex >= len(d.Sentences) {
			return fmt.Errorf("loader: mention %d references sentence %d of %d", i, m.SentenceIndex, len(d.Sentences))
		}
	}
	return nil
}

// ParseMentionDocument decodes and validates a mention document from its
// JSON wire form.
func ParseMentionDocument(data []byte) (*MentionDocument, error) {
	var doc MentionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loader: invalid mention document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// MentionFile represents a mention document that can be fetched and parsed
// for network construction. The actual content is retrieved via the
// associated MentionFileLoader.
type MentionFile struct {
	ID       string
	FilePath string
	Loader   MentionFileLoader
}

// GetDocument retrieves and parses the mention document using its Loader.
//
// Example:
//
//	doc, err := file.GetDocument(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(len(doc.Mentions))
func (f *MentionFile) GetDocument(ctx context.Context) (*MentionDocument, error) {
	data, err := f.Loader.GetFileText(ctx, *f)
	if err != nil {
		return nil, err
	}
	return ParseMentionDocument(data)
}

// MentionFileLoader defines the interface for loading the contents of a
// MentionFile. Implementations may load files from disk, cloud storage, or
// other sources.
type MentionFileLoader interface {
	GetFileText(ctx context.Context, file MentionFile) ([]byte, error)
}

// CacheKey returns the cache identity of a file for loader implementations
// that memoize fetches.
func CacheKey(file MentionFile) string {
	return file.ID + ":" + file.FilePath
}
