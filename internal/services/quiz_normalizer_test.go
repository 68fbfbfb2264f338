package services

import (
	"reflect"
	"testing"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
)

func TestNormalizeQuizResponsesMapsKnownPhrases(t *testing.T) {
	req := request_models.QuizSubmissionRequest{
		EnergyType:        "Manifesting Generator",
		BalanceActivities: []string{"Meditation & Mindfulness", "Nature & Outdoor Activities"},
		Budget:            "$50–$100",
		TimeCommitment:    "1–2 hours",
		SessionPreference: "In-person",
		PractitionerType:  "Spiritual guide (astrology, tarot, meditation)",
		ProductInterest:   "Yes, please",
		CurrentChallenge:  "Spiritual Growth & Awakening",
	}

	got := NormalizeQuizResponses(req)

	if got.EnergyType != "manifestor" {
		t.Errorf("EnergyType = %q, want manifestor", got.EnergyType)
	}
	if want := []string{"meditation", "nature"}; !reflect.DeepEqual(got.BalanceActivities, want) {
		t.Errorf("BalanceActivities = %v, want %v", got.BalanceActivities, want)
	}
	if got.BudgetPreference != "50_100" {
		t.Errorf("BudgetPreference = %q, want 50_100", got.BudgetPreference)
	}
	if got.TimeAvailability != "1_2_hours" {
		t.Errorf("TimeAvailability = %q, want 1_2_hours", got.TimeAvailability)
	}
	if got.SessionPreference != "in_person" {
		t.Errorf("SessionPreference = %q, want in_person", got.SessionPreference)
	}
	if got.PractitionerInterest != "spiritual_guide" {
		t.Errorf("PractitionerInterest = %q, want spiritual_guide", got.PractitionerInterest)
	}
	if !got.ProductInterest {
		t.Error("ProductInterest = false, want true")
	}
	if got.CurrentChallenge != "spiritual_growth" {
		t.Errorf("CurrentChallenge = %q, want spiritual_growth", got.CurrentChallenge)
	}
}

func TestNormalizeQuizResponsesEmptySubmissionUsesDefaults(t *testing.T) {
	got := NormalizeQuizResponses(request_models.QuizSubmissionRequest{})

	want := db_models.QuizResponses{
		EnergyType:           "unknown",
		BalanceActivities:    []string{},
		BudgetPreference:     "under_50",
		TimeAvailability:     "less_1_hour",
		SessionPreference:    "either",
		PractitionerInterest: "energy_healer",
		ProductInterest:      false,
		CurrentChallenge:     "anxiety",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalized empty submission = %+v, want defaults %+v", got, want)
	}
}

func TestNormalizeQuizResponsesUnknownPhrasesFallBack(t *testing.T) {
	req := request_models.QuizSubmissionRequest{
		EnergyType:        "Starseed",
		BalanceActivities: []string{"Skydiving"},
		Budget:            "$50-$100", // hyphen, not the frontend's en dash
		TimeCommitment:    "all day",
		SessionPreference: "carrier pigeon",
		PractitionerType:  "Wizard",
		ProductInterest:   "yes, please", // case matters for the opt-in
		CurrentChallenge:  "Existential dread",
	}

	got := NormalizeQuizResponses(req)

	if got.EnergyType != "unknown" {
		t.Errorf("EnergyType = %q, want unknown", got.EnergyType)
	}
	if want := []string{"meditation"}; !reflect.DeepEqual(got.BalanceActivities, want) {
		t.Errorf("BalanceActivities = %v, want %v", got.BalanceActivities, want)
	}
	if got.BudgetPreference != "under_50" {
		t.Errorf("BudgetPreference = %q, want under_50", got.BudgetPreference)
	}
	if got.TimeAvailability != "less_1_hour" {
		t.Errorf("TimeAvailability = %q, want less_1_hour", got.TimeAvailability)
	}
	if got.SessionPreference != "either" {
		t.Errorf("SessionPreference = %q, want either", got.SessionPreference)
	}
	if got.PractitionerInterest != "energy_healer" {
		t.Errorf("PractitionerInterest = %q, want energy_healer", got.PractitionerInterest)
	}
	if got.ProductInterest {
		t.Error("ProductInterest = true, want false for non-exact opt-in")
	}
	if got.CurrentChallenge != "anxiety" {
		t.Errorf("CurrentChallenge = %q, want anxiety", got.CurrentChallenge)
	}
}

func TestMapCurrentChallengeTable(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Anxiety & Stress Relief", "anxiety"},
		{"Trauma Recovery & Healing", "trauma_recovery"},
		{"Emotional Balance & Mental Health", "emotional_balance"},
		{"Physical Health & Energy", "physical_health"},
		{"Spiritual Growth & Awakening", "spiritual_growth"},
		{"Overall Life Balance", "stress_management"},
		{"", "anxiety"},
	}

	for _, tt := range tests {
		if got := mapCurrentChallenge(tt.raw); got != tt.want {
			t.Errorf("mapCurrentChallenge(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
