package catalog

import "testing"

func TestDefault_BankIntegrity(t *testing.T) {
	c := Default()

	subjects := c.Subjects()
	if len(subjects) == 0 {
		t.Fatal("empty catalog")
	}

	seen := make(map[string]bool)
	for _, subject := range subjects {
		for _, level := range c.Levels(subject) {
			qs := c.Questions(subject, level)
			if len(qs) == 0 {
				t.Errorf("%s/%s has no questions", subject, level)
			}
			for _, q := range qs {
				if q.ID == "" {
					t.Errorf("%s/%s has a question without an ID", subject, level)
				}
				if seen[q.ID] {
					t.Errorf("duplicate question ID %q", q.ID)
				}
				seen[q.ID] = true
				if q.Text[FallbackLanguage] == "" {
					t.Errorf("%s missing English text", q.ID)
				}
				if len(q.Options) == 0 {
					t.Errorf("%s has no options", q.ID)
				}
				if q.Correct < 0 || q.Correct >= len(q.Options) {
					t.Errorf("%s correct index %d out of range", q.ID, q.Correct)
				}
				if q.Marks <= 0 {
					t.Errorf("%s has non-positive marks %d", q.ID, q.Marks)
				}
			}
		}
	}
}

func TestNormalizeLevel(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1", "Level 1"},
		{" 2 ", "Level 2"},
		{"Level 3", "Level 3"},
		{"level 1", "Level 1"},
		{"LEVEL 2", "Level 2"},
		{"easy", "easy"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeLevel(c.in); got != c.want {
			t.Errorf("NormalizeLevel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestQuestions_ShorthandLevel(t *testing.T) {
	c := Default()
	want := c.Questions("Mathematics", "Level 1")
	got := c.Questions("Mathematics", "1")
	if len(got) != len(want) || len(got) == 0 {
		t.Fatalf("Questions with shorthand level: got %d questions, want %d", len(got), len(want))
	}
	if got[0].ID != want[0].ID {
		t.Errorf("shorthand lookup returned %q, want %q", got[0].ID, want[0].ID)
	}
}

func TestQuestions_UnknownPair(t *testing.T) {
	c := Default()
	if qs := c.Questions("History", "Level 1"); qs != nil {
		t.Errorf("unknown subject returned %d questions", len(qs))
	}
	if qs := c.Questions("Mathematics", "Level 9"); qs != nil {
		t.Errorf("unknown level returned %d questions", len(qs))
	}
}

func TestTextIn_Fallback(t *testing.T) {
	q := Default().Questions("Mathematics", "Level 1")[0]

	if got := q.TextIn("hi"); got != q.Text["hi"] {
		t.Errorf("TextIn(hi) = %q, want hindi variant", got)
	}

	en := q.Text[FallbackLanguage]
	for _, lang := range []string{"ta", "fr", ""} {
		if got := q.TextIn(lang); got != en {
			t.Errorf("TextIn(%q) = %q, want English fallback %q", lang, got, en)
		}
	}
}

func TestTotalMarks(t *testing.T) {
	c := Default()
	if got := c.TotalMarks("Mathematics", "Level 1"); got != 15 {
		t.Errorf("TotalMarks(Mathematics, Level 1) = %d, want 15", got)
	}
	if got := c.TotalMarks("History", "Level 1"); got != 0 {
		t.Errorf("TotalMarks for unknown pair = %d, want 0", got)
	}
}
