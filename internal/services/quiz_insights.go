package services

import (
	"strings"
	"time"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/response_models"
)

// Zodiac labels by calendar month, January first. Placeholder heuristics:
// moon and rising signs are constants, not computed.
var sunSigns = [12]string{
	"Capricorn", "Aquarius", "Pisces", "Aries", "Taurus", "Gemini",
	"Cancer", "Leo", "Virgo", "Libra", "Scorpio", "Sagittarius",
}

var humanDesignEnergyTypes = [5]string{
	"Generator", "Manifestor", "Manifesting Generator", "Projector", "Reflector",
}

var unknownAstrology = response_models.Astrology{
	SunSign:    "Unknown",
	MoonSign:   "Unknown",
	RisingSign: "Unknown",
}

// CalculateAstrology maps birth month to a sun sign. Missing or unparseable
// birth info yields the Unknown triple, never an error.
func CalculateAstrology(dateOfBirth, birthTime string) response_models.Astrology {
	if dateOfBirth == "" || birthTime == "" {
		return unknownAstrology
	}

	birth, err := time.Parse("2006-01-02T15:04", dateOfBirth+"T"+birthTime)
	if err != nil {
		return unknownAstrology
	}

	return response_models.Astrology{
		SunSign:    sunSigns[int(birth.Month())-1],
		MoonSign:   "Cancer",
		RisingSign: "Libra",
	}
}

// CalculateHumanDesign produces the placeholder human-design reading. The
// random pick only happens when the caller is unsure of their type, asked for
// a calculation, and supplied full birth info; otherwise the caller-supplied
// type passes through with empty strategy and authority.
//
// pick(n) must return a value in [0, n). It is injected so tests can pin the
// otherwise random choice.
func CalculateHumanDesign(req request_models.QuizSubmissionRequest, pick func(n int) int) response_models.HumanDesign {
	if req.EnergyType == "I'm not sure" && req.CalculateEnergyType == "Yes" &&
		req.DateOfBirth != "" && req.BirthTime != "" {
		return response_models.HumanDesign{
			EnergyType: humanDesignEnergyTypes[pick(len(humanDesignEnergyTypes))],
			Strategy:   "Wait to respond",
			Authority:  "Sacral",
		}
	}

	energyType := req.EnergyType
	if energyType == "" {
		energyType = "Unknown"
	}
	return response_models.HumanDesign{EnergyType: energyType}
}

// Profile and approach tables are keyed by the lowercased challenge text as
// submitted. Frontend phrases like "Anxiety & Stress Relief" never match a
// key, so real submissions classify as the defaults; only a caller sending
// the bare token reaches a specific profile. Anything unmapped falls to the
// default classification.
var wellnessProfileMap = map[string]string{
	"anxiety":           "stress_focused",
	"stress_management": "stress_focused",
	"trauma_recovery":   "trauma_informed",
	"emotional_balance": "energy_balanced",
	"spiritual_growth":  "spiritual_seeker",
	"physical_health":   "mind_body_integrated",
}

var recommendedApproachMap = map[string]string{
	"anxiety":           "gentle_healing",
	"stress_management": "mindful_practice",
	"trauma_recovery":   "gentle_healing",
	"emotional_balance": "energy_work",
	"spiritual_growth":  "holistic_integration",
	"physical_health":   "active_engagement",
}

func DetermineWellnessProfile(challenge string) string {
	if profile, ok := wellnessProfileMap[strings.ToLower(challenge)]; ok {
		return profile
	}
	return "energy_balanced"
}

func DetermineApproach(challenge string) string {
	if approach, ok := recommendedApproachMap[strings.ToLower(challenge)]; ok {
		return approach
	}
	return "holistic_integration"
}

// GeneratePriorityAreas ranks the caller's challenge first, then a single
// balance-activities entry if any activities were named. Order is fixed.
func GeneratePriorityAreas(req request_models.QuizSubmissionRequest) []db_models.PriorityArea {
	areas := []db_models.PriorityArea{}

	if req.CurrentChallenge != "" {
		areas = append(areas, db_models.PriorityArea{
			Area:     strings.ToLower(req.CurrentChallenge),
			Priority: 1,
		})
	}

	if len(req.BalanceActivities) > 0 {
		areas = append(areas, db_models.PriorityArea{
			Area:     "balance_activities",
			Priority: 2,
		})
	}

	return areas
}

func DeriveInsights(req request_models.QuizSubmissionRequest) db_models.WellnessInsights {
	return db_models.WellnessInsights{
		WellnessProfile:     DetermineWellnessProfile(req.CurrentChallenge),
		RecommendedApproach: DetermineApproach(req.CurrentChallenge),
		PriorityAreas:       GeneratePriorityAreas(req),
	}
}
