// ranking/scorer.go

// Package ranking orders candidate books for a user's feed.
package ranking

import (
	"sort"
	"time"

	"github.com/dev-mohitbeniwal/bookfeed/model"
)

const (
	// MaxRanked caps a ranking so one cached entry can serve any display limit.
	MaxRanked = 100

	pagesWeight  = 0.8
	ageWeight    = 0.2
	hoursPerYear = 365.25 * 24
)

type RankedBook struct {
	Book          model.Book
	SameCountry   int
	WeightedScore float64
}

// Scorer is pure apart from reading its clock once per call.
type Scorer struct {
	now   func() time.Time
	limit int
}

type Option func(*Scorer)

// WithClock fixes the instant that ages are measured against.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) { s.now = now }
}

// WithLimit overrides MaxRanked.
func WithLimit(n int) Option {
	return func(s *Scorer) {
		if n > 0 {
			s.limit = n
		}
	}
}

func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{now: time.Now, limit: MaxRanked}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score ranks books by same-country authorship first and weighted score
// second. Ties keep the order in which books were supplied.
func (s *Scorer) Score(books []model.Book, userCountry string) []RankedBook {
	now := s.now()
	ranked := make([]RankedBook, len(books))
	for i, b := range books {
		ranked[i] = RankedBook{
			Book:          b,
			SameCountry:   sameCountry(b.AuthorCountry, userCountry),
			WeightedScore: float64(b.Pages)*pagesWeight + ageInYears(now, b.PublishedDate)*ageWeight,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].SameCountry != ranked[j].SameCountry {
			return ranked[i].SameCountry > ranked[j].SameCountry
		}
		return ranked[i].WeightedScore > ranked[j].WeightedScore
	})

	if len(ranked) > s.limit {
		ranked = ranked[:s.limit]
	}
	return ranked
}

// IDs returns the book ids of a ranking in order.
func IDs(ranked []RankedBook) []string {
	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.Book.ID
	}
	return ids
}

// Books returns the books of a ranking in order.
func Books(ranked []RankedBook) []model.Book {
	books := make([]model.Book, len(ranked))
	for i, r := range ranked {
		books[i] = r.Book
	}
	return books
}

func sameCountry(authorCountry, userCountry string) int {
	if userCountry != "" && authorCountry == userCountry {
		return 1
	}
	return 0
}

// ageInYears is negative for books dated in the future.
func ageInYears(now, published time.Time) float64 {
	return now.Sub(published).Hours() / hoursPerYear
}
