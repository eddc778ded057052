package knowledge

import (
	"context"
	"fmt"
	"strings"
)

// maxFactsReturned caps how many facts a single retrieval yields.
const maxFactsReturned = 10

// fallbackFacts is how many leading facts are returned when nothing matches.
const fallbackFacts = 5

// stopWords are filler words excluded from keyword matching.
var stopWords = map[string]bool{
	"what": true, "is": true, "the": true, "a": true, "an": true, "of": true,
	"to": true, "for": true, "and": true, "or": true, "in": true, "on": true,
	"at": true, "do": true, "you": true, "have": true, "how": true,
	"much": true, "does": true, "can": true, "i": true, "my": true,
	"me": true, "this": true, "that": true, "it": true, "are": true,
	"was": true, "be": true, "your": true, "yes": true, "no": true,
}

// Retriever selects facts relevant to a conversation by keyword presence.
type Retriever struct {
	repo Repository
}

// NewRetriever creates a retriever over the given fact repository.
func NewRetriever(repo Repository) *Retriever {
	if repo == nil {
		repo = NewStaticRepository(Facts)
	}
	return &Retriever{repo: repo}
}

// Context returns a newline-joined subset of facts matching keywords from the
// query and conversation history. When no keyword matches, the first few
// facts serve as generic office context.
func (r *Retriever) Context(ctx context.Context, query string, history []string) (string, error) {
	facts, err := r.repo.GetFacts(ctx)
	if err != nil {
		return "", fmt.Errorf("knowledge: retrieve context: %w", err)
	}

	full := strings.ToLower(query)
	for _, h := range history {
		full += " " + strings.ToLower(h)
	}

	var words []string
	for _, w := range strings.Fields(full) {
		if !stopWords[w] && len(w) > 2 {
			words = append(words, w)
		}
	}

	var relevant []string
	for _, fact := range facts {
		factLower := strings.ToLower(fact)
		for _, w := range words {
			if strings.Contains(factLower, w) {
				relevant = append(relevant, fact)
				break
			}
		}
		if len(relevant) >= maxFactsReturned {
			break
		}
	}

	if len(relevant) == 0 {
		n := fallbackFacts
		if n > len(facts) {
			n = len(facts)
		}
		relevant = facts[:n]
	}

	return strings.Join(relevant, "\n"), nil
}
