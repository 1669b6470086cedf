package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchService_Search(t *testing.T) {
	svc := newTestServices().Search

	tests := []struct {
		name string
		term string
		want []int64
	}{
		{
			name: "empty query returns all ids ascending",
			term: "",
			want: []int64{1, 2, 3},
		},
		{
			name: "whitespace-only query returns all ids ascending",
			term: "   ",
			want: []int64{1, 2, 3},
		},
		{
			name: "code prefix matches",
			term: "csce",
			want: []int64{1},
		},
		{
			name: "full code matches",
			term: "MATH 1500",
			want: []int64{2},
		},
		{
			name: "historical listing name still matches",
			term: "algorithms",
			want: []int64{1},
		},
		{
			name: "hyphen separator in listing name is transparent",
			term: "structures algorithms",
			want: []int64{1},
		},
		{
			name: "one-letter typo matches within edit distance",
			term: "calculas",
			want: []int64{2},
		},
		{
			name: "short token matches as substring only",
			term: "hi",
			want: []int64{3},
		},
		{
			name: "equal-cost matches tie-break by course id",
			term: "0",
			want: []int64{1, 2, 3},
		},
		{
			name: "every token must match",
			term: "csce calculus",
			want: []int64{},
		},
		{
			name: "no match yields empty result",
			term: "zzzz",
			want: []int64{},
		},
		{
			name: "short token beyond tolerance does not fuzz",
			term: "cs",
			want: []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Search(tt.term)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchService_SearchIsDeterministic(t *testing.T) {
	svc := newTestServices().Search

	first := svc.Search("data")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, svc.Search("data"))
	}
}

func TestSearchService_SearchCoursesResolvesRecords(t *testing.T) {
	svc := newTestServices().Search

	courses := svc.SearchCourses("calculus")
	if assert.Len(t, courses, 1) {
		assert.Equal(t, int64(2), courses[0].ID)
		assert.Equal(t, "Calculus I", courses[0].Name)
	}
}

func TestNormalizeSearchText(t *testing.T) {
	assert.Equal(t, "Data Structures Algorithms", normalizeSearchText("Data Structures - Algorithms"))
	// Only the spaced separator collapses; bare hyphens survive.
	assert.Equal(t, "Self-Paced Study", normalizeSearchText("Self-Paced Study"))
	// Applying it twice changes nothing.
	once := normalizeSearchText("A - B - C")
	assert.Equal(t, once, normalizeSearchText(once))
}
