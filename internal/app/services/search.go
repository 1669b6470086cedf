package services

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/repositories"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/metrics"
)

// maxEditDistance is the edit-distance tolerance per query token. Kept at 1
// so near-misses match but unrelated words do not.
const maxEditDistance = 1

// minFuzzyTokenLen is the minimum token length eligible for edit-distance
// matching; shorter tokens must match exactly as substrings.
const minFuzzyTokenLen = 3

// searchDoc is one course's indexed identity: the set of distinct
// normalized "{code} {name}" strings it was ever listed under.
type searchDoc struct {
	courseID int64
	// folded holds the case-folded normalized strings, words their
	// whitespace-split tokens, parallel by index.
	folded []string
	words  [][]string
}

// SearchService resolves free-text queries to ranked course ids. The index
// is built exactly once per loaded dataset; the dataset is immutable for
// the session so there is no rebuild path.
type SearchService struct {
	store *repositories.Store
	docs  []searchDoc
}

// NewSearchService builds the fuzzy search index from the store's courses
// and the distinct historical listing rows grouped into them.
func NewSearchService(store *repositories.Store) *SearchService {
	byCourse := make(map[int64]map[string]struct{})

	add := func(courseID int64, code, name string) {
		text := normalizeSearchText(code + " " + name)
		set, ok := byCourse[courseID]
		if !ok {
			set = make(map[string]struct{})
			byCourse[courseID] = set
		}
		set[text] = struct{}{}
	}

	for _, course := range store.AllCourses() {
		add(course.ID, course.Code, course.Name)
	}
	for _, row := range store.DistinctListingSearchRows() {
		add(row.CourseID, row.Code, row.Name)
	}

	courseIDs := store.AllCourseIDs()
	docs := make([]searchDoc, 0, len(courseIDs))
	for _, courseID := range courseIDs {
		set := byCourse[courseID]
		doc := searchDoc{courseID: courseID}
		texts := make([]string, 0, len(set))
		for text := range set {
			texts = append(texts, text)
		}
		sort.Strings(texts)
		for _, text := range texts {
			folded := strings.ToLower(text)
			doc.folded = append(doc.folded, folded)
			doc.words = append(doc.words, strings.Fields(folded))
		}
		docs = append(docs, doc)
	}

	return &SearchService{store: store, docs: docs}
}

// normalizeSearchText collapses the " - " separator sequence to a single
// space. This is the only normalization applied; everything else passes
// through to the matcher unchanged.
func normalizeSearchText(text string) string {
	return strings.ReplaceAll(text, " - ", " ")
}

// Search returns course ids ranked by relevance, best first, ties broken by
// course id ascending. An empty or whitespace-only query returns every
// course id in ascending order; a query with no matches returns an empty
// result.
func (s *SearchService) Search(term string) []int64 {
	metrics.CountSearchQuery()

	term = strings.TrimSpace(term)
	if term == "" {
		return s.store.AllCourseIDs()
	}

	tokens := strings.Fields(strings.ToLower(normalizeSearchText(term)))

	type match struct {
		courseID int64
		cost     int
	}

	var matches []match
	for _, doc := range s.docs {
		cost, ok := doc.score(tokens)
		if !ok {
			continue
		}
		matches = append(matches, match{courseID: doc.courseID, cost: cost})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].cost != matches[j].cost {
			return matches[i].cost < matches[j].cost
		}
		return matches[i].courseID < matches[j].courseID
	})

	ids := make([]int64, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.courseID)
	}
	return ids
}

// SearchCourses is Search with the ids resolved back to course records.
func (s *SearchService) SearchCourses(term string) []models.Course {
	ids := s.Search(term)
	courses := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		if course, ok := s.store.CourseByID(id); ok {
			courses = append(courses, course)
		}
	}
	return courses
}

// score evaluates every indexed string of the document and keeps the best
// one; it never stops at the first matching string. A string matches only
// if every query token matches it.
func (d *searchDoc) score(tokens []string) (int, bool) {
	best := 0
	found := false
	for i := range d.folded {
		cost, ok := scoreString(tokens, d.folded[i], d.words[i])
		if !ok {
			continue
		}
		if !found || cost < best {
			best = cost
			found = true
		}
	}
	return best, found
}

// scoreString sums per-token costs against a single indexed string. A token
// costs 0 when it occurs as a substring anywhere in the string (matches are
// location-independent), otherwise its best edit distance against the
// string's words when within tolerance.
func scoreString(tokens []string, folded string, words []string) (int, bool) {
	total := 0
	for _, token := range tokens {
		cost, ok := tokenCost(token, folded, words)
		if !ok {
			return 0, false
		}
		total += cost
	}
	return total, true
}

func tokenCost(token, folded string, words []string) (int, bool) {
	if strings.Contains(folded, token) {
		return 0, true
	}
	if len(token) < minFuzzyTokenLen {
		return 0, false
	}

	best := -1
	for _, word := range words {
		distance := fuzzy.LevenshteinDistance(token, word)
		if distance <= maxEditDistance && (best == -1 || distance < best) {
			best = distance
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
