package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

func ts(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestSortMatches(t *testing.T) {
	jobA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	jobB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	cand := uuid.New()

	ms := []*entity.Match{
		{JobID: jobB, CandidateID: cand, Score: 0.8, JobPostedAt: ts("2026-01-01")},
		{JobID: jobA, CandidateID: cand, Score: 0.9, JobPostedAt: ts("2026-01-01")},
		{JobID: jobA, CandidateID: cand, Score: 0.8, JobPostedAt: ts("2026-03-01")},
	}
	SortMatches(ms)

	if ms[0].Score != 0.9 {
		t.Errorf("highest score must rank first, got %v", ms[0].Score)
	}
	// Equal scores: more recently posted job wins.
	if !ms[1].JobPostedAt.After(*ms[2].JobPostedAt) {
		t.Errorf("tie must break on job posted_at descending")
	}
}

func TestSortMatchesTotalOrder(t *testing.T) {
	jobA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	jobB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	cand := uuid.New()
	posted := ts("2026-01-01")
	updated := ts("2026-02-01")

	build := func() []*entity.Match {
		return []*entity.Match{
			{JobID: jobB, CandidateID: cand, Score: 0.8, JobPostedAt: posted, CandidateUpdatedAt: updated},
			{JobID: jobA, CandidateID: cand, Score: 0.8, JobPostedAt: posted, CandidateUpdatedAt: updated},
		}
	}

	first := build()
	SortMatches(first)
	// Identical scores and timestamps: the UUID fallback keeps the order
	// deterministic across repeated runs and input permutations.
	if first[0].JobID != jobA {
		t.Errorf("UUID fallback should order jobA first, got %s", first[0].JobID)
	}

	for i := 0; i < 5; i++ {
		again := build()
		again[0], again[1] = again[1], again[0]
		SortMatches(again)
		if again[0].JobID != first[0].JobID {
			t.Fatal("ordering depends on input permutation")
		}
	}
}

func TestSortMatchesNilTimestamps(t *testing.T) {
	cand := uuid.New()
	ms := []*entity.Match{
		{JobID: uuid.New(), CandidateID: cand, Score: 0.5},
		{JobID: uuid.New(), CandidateID: cand, Score: 0.7, JobPostedAt: ts("2026-01-01")},
	}
	SortMatches(ms) // must not panic
	if ms[0].Score != 0.7 {
		t.Errorf("score still orders when timestamps are missing")
	}
}
