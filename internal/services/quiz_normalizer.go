package services

import (
	"strings"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
)

// The quiz frontend sends human-readable answers. Each table below maps the
// known phrases (lowercased) onto the closed vocabulary stored with a
// session. Lookups that miss fall back to the per-field default; nothing in
// here can fail, whatever the caller sends.

var energyTypeMap = map[string]string{
	"generator":             "generator",
	"manifestor":            "manifestor",
	"manifesting generator": "manifestor", // collapsed into manifestor
	"projector":             "projector",
	"reflector":             "reflector",
	"i'm not sure":          "unknown",
}

var balanceActivityMap = map[string]string{
	"meditation & mindfulness":                "meditation",
	"physical exercise":                       "exercise",
	"creative expression (art, music, writing)": "creative",
	"social connection & community":           "social",
	"nature & outdoor activities":             "nature",
	"energy work & holistic therapies":        "energy_work",
}

var budgetMap = map[string]string{
	"under $50": "under_50",
	"$50–$100":  "50_100",
	"$100–$200": "100_200",
	"$200+":     "200_plus",
}

var timeAvailabilityMap = map[string]string{
	"less than 1 hour": "less_1_hour",
	"1–2 hours":        "1_2_hours",
	"3–5 hours":        "3_5_hours",
	"5+ hours":         "5_plus_hours",
}

var sessionPreferenceMap = map[string]string{
	"in-person":                "in_person",
	"online (zoom, video call)": "online",
	"either is fine":           "either",
}

var practitionerInterestMap = map[string]string{
	"energy healer (reiki, chakra balancing)":       "energy_healer",
	"mind-body practitioner (yoga, tai chi)":        "mind_body",
	"talk-based therapist/coach":                    "talk_therapy",
	"bodywork therapist (massage, craniosacral)":    "bodywork",
	"spiritual guide (astrology, tarot, meditation)": "spiritual_guide",
}

var currentChallengeMap = map[string]string{
	"anxiety & stress relief":           "anxiety",
	"trauma recovery & healing":         "trauma_recovery",
	"emotional balance & mental health": "emotional_balance",
	"physical health & energy":          "physical_health",
	"spiritual growth & awakening":      "spiritual_growth",
	"overall life balance":              "stress_management",
}

func mapWithDefault(table map[string]string, raw string, fallback string) string {
	if raw == "" {
		return fallback
	}
	if mapped, ok := table[strings.ToLower(raw)]; ok {
		return mapped
	}
	return fallback
}

func mapEnergyType(raw string) string {
	return mapWithDefault(energyTypeMap, raw, "unknown")
}

func mapBalanceActivity(raw string) string {
	return mapWithDefault(balanceActivityMap, raw, "meditation")
}

// Note the en dash in "$50–$100": the table keys mirror the frontend labels
// byte for byte.
func mapBudgetPreference(raw string) string {
	return mapWithDefault(budgetMap, raw, "under_50")
}

func mapTimeAvailability(raw string) string {
	return mapWithDefault(timeAvailabilityMap, raw, "less_1_hour")
}

func mapSessionPreference(raw string) string {
	return mapWithDefault(sessionPreferenceMap, raw, "either")
}

func mapPractitionerInterest(raw string) string {
	return mapWithDefault(practitionerInterestMap, raw, "energy_healer")
}

func mapCurrentChallenge(raw string) string {
	return mapWithDefault(currentChallengeMap, raw, "anxiety")
}

// NormalizeQuizResponses is a total function: any submission, including an
// empty one, yields a response whose every field belongs to its enumeration.
func NormalizeQuizResponses(req request_models.QuizSubmissionRequest) db_models.QuizResponses {
	activities := make([]string, 0, len(req.BalanceActivities))
	for _, activity := range req.BalanceActivities {
		activities = append(activities, mapBalanceActivity(activity))
	}

	return db_models.QuizResponses{
		EnergyType:           mapEnergyType(req.EnergyType),
		BalanceActivities:    activities,
		BudgetPreference:     mapBudgetPreference(req.Budget),
		TimeAvailability:     mapTimeAvailability(req.TimeCommitment),
		SessionPreference:    mapSessionPreference(req.SessionPreference),
		PractitionerInterest: mapPractitionerInterest(req.PractitionerType),
		ProductInterest:      req.ProductInterest == "Yes, please",
		CurrentChallenge:     mapCurrentChallenge(req.CurrentChallenge),
	}
}
