package response_models

type ChallengeCount struct {
	Challenge string `json:"challenge"`
	Count     int    `json:"count"`
}

type ProfileCount struct {
	Profile string `json:"profile"`
	Count   int    `json:"count"`
}

// QuizAnalytics is a fully anonymous aggregate over stored sessions.
type QuizAnalytics struct {
	TotalSessions       int              `json:"totalSessions"`
	AvgCompletionTime   int              `json:"avgCompletionTime"` // seconds, rounded
	MostCommonChallenge []ChallengeCount `json:"mostCommonChallenge"`
	MostCommonProfile   []ProfileCount   `json:"mostCommonProfile"`
	DeviceTypes         []string         `json:"deviceTypes"`
}
