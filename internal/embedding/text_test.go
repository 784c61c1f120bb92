package embedding

import (
	"strings"
	"testing"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

func TestPrepareJobTextDeterministic(t *testing.T) {
	job := &entity.Job{
		Title:        "Senior Backend Developer",
		Role:         "backend developer",
		Seniority:    "senior",
		Description:  "Build services.",
		Skills:       []string{"go", "postgresql"},
		Languages:    []string{"en"},
		LocationCity: "Stockholm",
		OnsiteMode:   entity.OnsiteModeHybrid,
	}

	first := PrepareJobText(job)
	for i := 0; i < 5; i++ {
		if again := PrepareJobText(job); again != first {
			t.Fatalf("prepared text differs between runs:\n%q\n%q", first, again)
		}
	}
	if !strings.Contains(first, "Title: Senior Backend Developer") {
		t.Errorf("missing title line in %q", first)
	}
	if !strings.Contains(first, "Skills: go, postgresql") {
		t.Errorf("missing skills line in %q", first)
	}
}

func TestPrepareJobTextSkipsEmptyFields(t *testing.T) {
	text := PrepareJobText(&entity.Job{Title: "X"})
	if strings.Contains(text, "Role:") || strings.Contains(text, "Skills:") {
		t.Errorf("empty fields must be omitted, got %q", text)
	}
	if text != "Title: X" {
		t.Errorf("minimal job text = %q, want only the title line", text)
	}
}

func TestPrepareCandidateTextTruncatesNotes(t *testing.T) {
	c := &entity.Candidate{
		Name:  "Test",
		Notes: strings.Repeat("x", maxNotesLen+500),
	}
	text := PrepareCandidateText(c)
	if len(text) > maxNotesLen+100 {
		t.Errorf("notes not truncated, text length %d", len(text))
	}
	if !strings.Contains(text, "Notes: ") {
		t.Errorf("notes line missing in %q", text[:50])
	}
}

func TestPrepareTextsDiffer(t *testing.T) {
	a := PrepareJobText(&entity.Job{Title: "A"})
	b := PrepareJobText(&entity.Job{Title: "B"})
	if a == b {
		t.Error("different jobs produced identical prepared text")
	}
}
