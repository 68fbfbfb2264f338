package request_models

// QuizSubmissionRequest carries the raw quiz answers exactly as the frontend
// sends them: human-readable phrases ("Under $50", "Energy healer (Reiki,
// chakra balancing)"). Normalization into the closed vocabulary happens
// server-side; every field tolerates being absent.
type QuizSubmissionRequest struct {
	EnergyType          string   `json:"energyType"`
	CalculateEnergyType string   `json:"calculateEnergyType"`
	BalanceActivities   []string `json:"balanceActivities"`
	Budget              string   `json:"budget"`
	TimeCommitment      string   `json:"timeCommitment"`
	SessionPreference   string   `json:"sessionPreference"`
	PractitionerType    string   `json:"practitionerType"`
	ProductInterest     string   `json:"productInterest"`
	CurrentChallenge    string   `json:"currentChallenge"`
	EligibleNonprofit   string   `json:"eligibleNonprofit"`

	DateOfBirth string `json:"dateOfBirth"` // "2006-01-02"
	BirthTime   string `json:"birthTime"`   // "15:04"

	CompletionTime       int              `json:"completionTime"` // seconds
	TimeSpentOnQuestions []QuestionTime   `json:"timeSpentOnQuestions"`
	SkippedQuestions     []string         `json:"skippedQuestions"`
	TotalQuestions       int              `json:"totalQuestions"`
}

type QuestionTime struct {
	QuestionID string `json:"questionId"`
	TimeSpent  int    `json:"timeSpent"`
}

type DeviceInfo struct {
	DeviceType  string `json:"deviceType"`
	BrowserType string `json:"browserType"`
	IPCountry   string `json:"ipCountry"`
}

type AnalyticsQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}
