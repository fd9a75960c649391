package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shikshamitra/shikshamitra/internal/gamify"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "shiksha.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestAccount(t *testing.T, s *Store, username string) *Account {
	t.Helper()
	acct, err := s.CreateAccount(context.Background(), username, "secret", "")
	if err != nil {
		t.Fatalf("CreateAccount(%s): %v", username, err)
	}
	return acct
}

func TestCreateAccountAndAuthenticate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	acct, err := s.CreateAccount(ctx, "asha", "secret", "asha@example.com")
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if acct.ID == 0 || acct.Username != "asha" || acct.Email != "asha@example.com" {
		t.Fatalf("unexpected account: %+v", acct)
	}
	if !acct.LastLogin.IsZero() {
		t.Fatalf("new account should have no last login, got %v", acct.LastLogin)
	}

	got, err := s.Authenticate(ctx, "asha", "secret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != acct.ID {
		t.Fatalf("authenticated wrong account: %d != %d", got.ID, acct.ID)
	}
	if got.LastLogin.IsZero() {
		t.Fatal("Authenticate should stamp last_login")
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	createTestAccount(t, s, "asha")

	if _, err := s.Authenticate(ctx, "asha", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := s.Authenticate(ctx, "nobody", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}

func TestCreateAccountUniqueness(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateAccount(ctx, "asha", "secret", "asha@example.com"); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if _, err := s.CreateAccount(ctx, "asha", "other", ""); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate username: got %v, want ErrUsernameTaken", err)
	}
	if _, err := s.CreateAccount(ctx, "ravi", "other", "asha@example.com"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email: got %v, want ErrEmailTaken", err)
	}
	// Omitted emails must not collide with each other.
	if _, err := s.CreateAccount(ctx, "ravi", "other", ""); err != nil {
		t.Fatalf("second account without email: %v", err)
	}
	if _, err := s.CreateAccount(ctx, "meena", "other", ""); err != nil {
		t.Fatalf("third account without email: %v", err)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	acct := createTestAccount(t, s, "asha")

	if p, err := s.GetProfile(ctx, acct.ID); err != nil || p != nil {
		t.Fatalf("GetProfile before save: got %+v, %v; want nil, nil", p, err)
	}

	want := Profile{
		AccountID:   acct.ID,
		FullName:    "Asha Patil",
		ClassNumber: 7,
		Language:    "Hindi",
		Subjects:    []string{"Mathematics", "Science"},
		DateOfBirth: "2013-04-02",
		PhoneNumber: "9000000001",
	}
	if err := s.UpsertProfile(ctx, want); err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}

	got, err := s.GetProfile(ctx, acct.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.FullName != want.FullName || got.ClassNumber != want.ClassNumber ||
		got.Language != want.Language || len(got.Subjects) != 2 {
		t.Fatalf("profile mismatch: %+v", got)
	}

	// Upsert replaces the row wholesale.
	want.Language = "Kannada"
	want.Subjects = []string{"English"}
	if err := s.UpsertProfile(ctx, want); err != nil {
		t.Fatalf("UpsertProfile update: %v", err)
	}
	got, err = s.GetProfile(ctx, acct.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Language != "Kannada" || len(got.Subjects) != 1 || got.Subjects[0] != "English" {
		t.Fatalf("profile update not applied: %+v", got)
	}
}

func TestStatsDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	acct := createTestAccount(t, s, "asha")

	st, err := s.GetStats(ctx, acct.ID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if st.CurrentStreak != 0 || st.TotalXP != 0 || st.Level != 1 {
		t.Fatalf("fresh stats should be zero at level 1: %+v", st)
	}
	if !st.LastActivity.IsZero() {
		t.Fatalf("fresh stats should have no activity date: %v", st.LastActivity)
	}
}

func TestApplyStreakUpdate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	acct := createTestAccount(t, s, "asha")

	day := func(n int) time.Time {
		return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	}

	st, err := s.ApplyStreakUpdate(ctx, acct.ID, day(0))
	if err != nil {
		t.Fatalf("first activity: %v", err)
	}
	if st.CurrentStreak != 1 || st.LongestStreak != 1 {
		t.Fatalf("first activity: %+v", st)
	}

	// Second login the same day must not double-count.
	st, _ = s.ApplyStreakUpdate(ctx, acct.ID, day(0))
	if st.CurrentStreak != 1 {
		t.Fatalf("same day should be idempotent: %+v", st)
	}

	st, _ = s.ApplyStreakUpdate(ctx, acct.ID, day(1))
	if st.CurrentStreak != 2 || st.LongestStreak != 2 {
		t.Fatalf("consecutive day: %+v", st)
	}

	// A gap resets the streak but keeps the longest.
	st, _ = s.ApplyStreakUpdate(ctx, acct.ID, day(5))
	if st.CurrentStreak != 1 || st.LongestStreak != 2 {
		t.Fatalf("gap reset: %+v", st)
	}

	// A clock that went backwards leaves everything untouched.
	st, _ = s.ApplyStreakUpdate(ctx, acct.ID, day(3))
	if st.CurrentStreak != 1 || !st.LastActivity.Equal(time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("backward clock should not change state: %+v", st)
	}
}

func TestStreakBadgeAwarded(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	acct := createTestAccount(t, s, "asha")

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var st *Stats
	var err error
	for i := 0; i < 7; i++ {
		st, err = s.ApplyStreakUpdate(ctx, acct.ID, start.AddDate(0, 0, i))
		if err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
	}
	if st.CurrentStreak != 7 {
		t.Fatalf("streak after 7 days: %+v", st)
	}
	if !contains(st.Badges, gamify.BadgeWeekStreak) {
		t.Fatalf("7-day badge missing: %v", st.Badges)
	}
}

func TestAddXP(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	acct := createTestAccount(t, s, "asha")

	if _, err := s.AddXP(ctx, acct.ID, 0); err == nil {
		t.Fatal("zero XP should be rejected")
	}
	if _, err := s.AddXP(ctx, 9999, 10); !errors.Is(err, ErrNoAccount) {
		t.Fatalf("unknown account: got %v, want ErrNoAccount", err)
	}

	st, err := s.AddXP(ctx, acct.ID, 950)
	if err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	if st.TotalXP != 950 || st.Level != 1 {
		t.Fatalf("below threshold: %+v", st)
	}

	st, err = s.AddXP(ctx, acct.ID, 100)
	if err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	if st.TotalXP != 1050 || st.Level != 2 {
		t.Fatalf("level up: %+v", st)
	}
	if want := gamify.Level(st.TotalXP); st.Level != want {
		t.Fatalf("stored level %d diverges from gamify.Level = %d", st.Level, want)
	}
}

func TestAddXPConcurrentAwardsAllLand(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	acct := createTestAccount(t, s, "asha")

	const workers = 8
	const awards = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < awards; j++ {
				if _, err := s.AddXP(ctx, acct.ID, 10); err != nil {
					t.Errorf("AddXP: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	st, err := s.GetStats(ctx, acct.ID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if want := workers * awards * 10; st.TotalXP != want {
		t.Fatalf("lost XP under concurrency: got %d, want %d", st.TotalXP, want)
	}
	if want := gamify.Level(st.TotalXP); st.Level != want {
		t.Fatalf("stored level %d diverges from gamify.Level = %d", st.Level, want)
	}
}

func TestDoubtHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	acct := createTestAccount(t, s, "asha")

	for i, q := range []string{"what is gravity", "why is the sky blue", "what is photosynthesis"} {
		_, err := s.AppendDoubt(ctx, DoubtRecord{
			AccountID: acct.ID,
			Subject:   "Science",
			Question:  q,
			Answer:    "…",
			Language:  "English",
			AskedAt:   time.Date(2026, 3, 1, 9, i, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("AppendDoubt: %v", err)
		}
	}

	got, err := s.ListDoubts(ctx, acct.ID, 2)
	if err != nil {
		t.Fatalf("ListDoubts: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("limit ignored: got %d records", len(got))
	}
	if got[0].Question != "what is photosynthesis" {
		t.Fatalf("newest first expected, got %q", got[0].Question)
	}

	all, err := s.ListDoubts(ctx, acct.ID, 0)
	if err != nil {
		t.Fatalf("ListDoubts all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
}

func TestTestResultsAndAggregates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	acct := createTestAccount(t, s, "asha")

	results := []TestResult{
		{Subject: "Mathematics", Level: "1", TotalMarks: 15, ObtainedMarks: 15, Percentage: 100, CorrectAnswers: 2, TotalQuestions: 2},
		{Subject: "Mathematics", Level: "1", TotalMarks: 15, ObtainedMarks: 5, Percentage: 33.3, CorrectAnswers: 1, TotalQuestions: 2},
		{Subject: "Mathematics", Level: "2", TotalMarks: 30, ObtainedMarks: 20, Percentage: 66.7, CorrectAnswers: 2, TotalQuestions: 3},
		{Subject: "Science", Level: "1", TotalMarks: 15, ObtainedMarks: 10, Percentage: 66.7, CorrectAnswers: 1, TotalQuestions: 2},
	}
	for _, r := range results {
		r.AccountID = acct.ID
		r.Answers = map[string]int{"q1": 0}
		if _, err := s.AppendTestResult(ctx, r); err != nil {
			t.Fatalf("AppendTestResult: %v", err)
		}
	}

	list, err := s.ListTestResults(ctx, acct.ID, 0)
	if err != nil {
		t.Fatalf("ListTestResults: %v", err)
	}
	if len(list) != 4 || list[0].Subject != "Science" {
		t.Fatalf("newest first expected: %+v", list)
	}
	if list[0].Answers["q1"] != 0 || len(list[0].Answers) != 1 {
		t.Fatalf("answers not preserved: %+v", list[0].Answers)
	}

	perf, err := s.SubjectPerformance(ctx, acct.ID, "Mathematics")
	if err != nil {
		t.Fatalf("SubjectPerformance: %v", err)
	}
	if len(perf) != 2 {
		t.Fatalf("expected 2 levels, got %+v", perf)
	}
	l1 := perf[0]
	if l1.Level != "1" || l1.Attempts != 2 || l1.BestPercentage != 100 {
		t.Fatalf("level 1 aggregate: %+v", l1)
	}
	if l1.MeanPercentage < 66.6 || l1.MeanPercentage > 66.7 {
		t.Fatalf("level 1 mean: %v", l1.MeanPercentage)
	}

	overall, err := s.AccountOverallStats(ctx, acct.ID)
	if err != nil {
		t.Fatalf("AccountOverallStats: %v", err)
	}
	if overall.TotalTests != 4 || overall.SubjectsTested != 2 || overall.BestPercentage != 100 {
		t.Fatalf("overall: %+v", overall)
	}
	if overall.PassedTests != 3 {
		t.Fatalf("pass threshold 60: got %d passed, want 3", overall.PassedTests)
	}
}

func TestOverallStatsEmpty(t *testing.T) {
	s := openTestStore(t)
	acct := createTestAccount(t, s, "asha")

	overall, err := s.AccountOverallStats(context.Background(), acct.ID)
	if err != nil {
		t.Fatalf("AccountOverallStats: %v", err)
	}
	if overall.TotalTests != 0 || overall.MeanPercentage != 0 {
		t.Fatalf("empty aggregate should be zero: %+v", overall)
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	acct := createTestAccount(t, s, "asha")

	if err := s.UpsertProfile(ctx, Profile{AccountID: acct.ID, FullName: "Asha", ClassNumber: 7, Language: "Hindi"}); err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}
	if _, err := s.AppendDoubt(ctx, DoubtRecord{AccountID: acct.ID, Subject: "Science", Question: "q", Answer: "a", Language: "English"}); err != nil {
		t.Fatalf("AppendDoubt: %v", err)
	}

	if err := s.DeleteAccount(ctx, acct.ID); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if err := s.DeleteAccount(ctx, acct.ID); !errors.Is(err, ErrNoAccount) {
		t.Fatalf("second delete: got %v, want ErrNoAccount", err)
	}

	if p, err := s.GetProfile(ctx, acct.ID); err != nil || p != nil {
		t.Fatalf("profile should cascade: %+v, %v", p, err)
	}
	doubts, err := s.ListDoubts(ctx, acct.ID, 0)
	if err != nil {
		t.Fatalf("ListDoubts: %v", err)
	}
	if len(doubts) != 0 {
		t.Fatalf("doubts should cascade: %+v", doubts)
	}
}

func TestLLMRequestLog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.AppendLLMRequest(ctx, LLMRequestLog{
		Provider:   "mock",
		Model:      "mock-1",
		Purpose:    "doubt",
		Duration:   120 * time.Millisecond,
		Success:    true,
		RequestDoc: `{"prompt":"hi"}`,
	})
	if err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}

	logs, err := s.ListLLMRequests(ctx, 10)
	if err != nil {
		t.Fatalf("ListLLMRequests: %v", err)
	}
	if len(logs) != 1 || logs[0].Provider != "mock" || !logs[0].Success || logs[0].Duration != 120*time.Millisecond {
		t.Fatalf("unexpected log: %+v", logs)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
