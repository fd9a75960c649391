package store

import "time"

// Account is one login identity.
type Account struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
	LastLogin time.Time // zero when the account has never logged in
}

// Profile is the learner profile, one-to-one with an account. Saves are
// wholesale: every field is supplied on each upsert.
type Profile struct {
	AccountID   int64
	FullName    string
	ClassNumber int
	Language    string
	Subjects    []string
	DateOfBirth string // YYYY-MM-DD, empty when not provided
	PhoneNumber string
	ParentPhone string
}

// Stats is the gamification state, one-to-one with an account.
type Stats struct {
	AccountID     int64
	CurrentStreak int
	LongestStreak int
	TotalXP       int
	Level         int
	Badges        []string
	LastActivity  time.Time // date precision; zero when no activity yet
}

// DoubtRecord is one question/answer exchange, append-only.
type DoubtRecord struct {
	ID        int64
	AccountID int64
	Subject   string
	Question  string
	Answer    string
	Language  string
	AskedAt   time.Time
}

// TestResult is one completed assessment, append-only and immutable.
type TestResult struct {
	ID             int64
	AccountID      int64
	Subject        string
	Level          string
	TotalMarks     int
	ObtainedMarks  int
	Percentage     float64
	CorrectAnswers int
	TotalQuestions int
	Answers        map[string]int
	CompletedAt    time.Time
}

// LevelPerformance aggregates one subject's results at one level.
type LevelPerformance struct {
	Level          string
	Attempts       int
	MeanPercentage float64
	BestPercentage float64
	MeanAccuracy   float64
}

// OverallStats aggregates all of an account's test results.
type OverallStats struct {
	TotalTests     int
	MeanPercentage float64
	BestPercentage float64
	SubjectsTested int
	PassedTests    int // percentage >= PassThreshold
}

// PassThreshold is the percentage at or above which a test counts as passed.
const PassThreshold = 60.0
