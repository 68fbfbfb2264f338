package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type fakeServiceRepo struct {
	services []db_models.Service
	err      error
}

func (f *fakeServiceRepo) FindAll(ctx context.Context) ([]db_models.Service, error) {
	return f.services, f.err
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id string) (*db_models.Service, error) {
	for i := range f.services {
		if f.services[i].ID.String() == id {
			return &f.services[i], nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) Insert(ctx context.Context, service *db_models.Service) error {
	f.services = append(f.services, *service)
	return nil
}

type fakeProductRepo struct {
	products []db_models.Product
	err      error
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]db_models.Product, error) {
	return f.products, f.err
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*db_models.Product, error) {
	for i := range f.products {
		if f.products[i].ID.String() == id {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Insert(ctx context.Context, product *db_models.Product) error {
	f.products = append(f.products, *product)
	return nil
}

type fakePodcastRepo struct {
	podcasts []db_models.Podcast
	err      error
}

func (f *fakePodcastRepo) FindAll(ctx context.Context) ([]db_models.Podcast, error) {
	return f.podcasts, f.err
}

func (f *fakePodcastRepo) FindByID(ctx context.Context, id string) (*db_models.Podcast, error) {
	for i := range f.podcasts {
		if f.podcasts[i].ID.String() == id {
			return &f.podcasts[i], nil
		}
	}
	return nil, nil
}

func (f *fakePodcastRepo) Insert(ctx context.Context, podcast *db_models.Podcast) error {
	f.podcasts = append(f.podcasts, *podcast)
	return nil
}

func catalogService(name, serviceType string, price float64) db_models.Service {
	return db_models.Service{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Name:        name,
		ServiceType: serviceType,
		Price:       price,
	}
}

func wellnessCatalog() []db_models.Service {
	return []db_models.Service{
		catalogService("Reiki Healing", "reiki", 80),
		catalogService("Crystal Session", "crystal_healing", 120),
		catalogService("Aura Cleansing", "aura_cleansing", 60),
		catalogService("Guided Meditation", "meditation", 30),
		catalogService("Life Coaching", "life_coaching", 150),
		catalogService("Birth Chart Reading", "astrology", 95),
		catalogService("Tarot Reading", "tarot", 40),
		catalogService("Numerology Session", "numerology", 70),
	}
}

func newTestRecommender(services []db_models.Service, products []db_models.Product, podcasts []db_models.Podcast) *QuizRecommender {
	return NewQuizRecommender(
		&fakeServiceRepo{services: services},
		&fakeProductRepo{products: products},
		&fakePodcastRepo{podcasts: podcasts},
	)
}

func TestRecommendServicesSpiritualGuideWithinBudget(t *testing.T) {
	recommender := newTestRecommender(wellnessCatalog(), nil, nil)

	req := request_models.QuizSubmissionRequest{
		CurrentChallenge: "Spiritual Growth & Awakening",
		PractitionerType: "Spiritual guide (astrology, tarot, meditation)",
		Budget:           "$50–$100",
	}

	got, err := recommender.RecommendServices(context.Background(), req)
	if err != nil {
		t.Fatalf("RecommendServices: %v", err)
	}

	wantTypes := map[string]bool{"Birth Chart Reading": true, "Tarot Reading": true, "Numerology Session": true}
	if len(got) != len(wantTypes) {
		t.Fatalf("got %d recommendations, want %d", len(got), len(wantTypes))
	}
	for _, rec := range got {
		if !wantTypes[rec.Name] {
			t.Errorf("unexpected recommendation %q", rec.Name)
		}
		if rec.Price > 85 {
			t.Errorf("%q price %.2f exceeds the 85 cap", rec.Name, rec.Price)
		}
	}
}

func TestRecommendServicesPriceClampDoesNotMutateCatalog(t *testing.T) {
	catalog := wellnessCatalog()
	repo := &fakeServiceRepo{services: catalog}
	recommender := NewQuizRecommender(repo, &fakeProductRepo{}, &fakePodcastRepo{})

	req := request_models.QuizSubmissionRequest{
		CurrentChallenge: "Trauma Recovery & Healing",
		Budget:           "Under $50",
	}

	got, err := recommender.RecommendServices(context.Background(), req)
	if err != nil {
		t.Fatalf("RecommendServices: %v", err)
	}
	for _, rec := range got {
		if rec.Price > 45 {
			t.Errorf("%q price %.2f exceeds the 45 cap", rec.Name, rec.Price)
		}
	}

	for _, service := range repo.services {
		if service.Name == "Life Coaching" && service.Price != 150 {
			t.Errorf("catalog row mutated: Life Coaching price = %.2f", service.Price)
		}
	}
}

func TestRecommendServicesFallbackChain(t *testing.T) {
	// Catalog holds only meditation: the spiritual-growth categories match
	// nothing, so the full catalog comes back.
	catalog := []db_models.Service{catalogService("Guided Meditation", "meditation", 30)}
	recommender := newTestRecommender(catalog, nil, nil)

	req := request_models.QuizSubmissionRequest{
		CurrentChallenge: "Spiritual Growth & Awakening",
	}
	got, err := recommender.RecommendServices(context.Background(), req)
	if err != nil {
		t.Fatalf("RecommendServices: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Guided Meditation" {
		t.Errorf("full-catalog fallback not applied, got %v", got)
	}

	// Challenge filter matches reiki but the practitioner filter (talk-based
	// wants life_coaching) empties the set; fall back to challenge-filtered.
	catalog = []db_models.Service{
		catalogService("Reiki Healing", "reiki", 80),
		catalogService("Tarot Reading", "tarot", 40),
	}
	recommender = newTestRecommender(catalog, nil, nil)

	req = request_models.QuizSubmissionRequest{
		CurrentChallenge: "Anxiety & Stress Relief",
		PractitionerType: "Talk-based therapist/coach",
	}
	got, err = recommender.RecommendServices(context.Background(), req)
	if err != nil {
		t.Fatalf("RecommendServices: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Reiki Healing" {
		t.Errorf("challenge-filtered fallback not applied, got %v", got)
	}
}

func TestRecommendServicesEmptyCatalog(t *testing.T) {
	recommender := newTestRecommender(nil, nil, nil)

	_, err := recommender.RecommendServices(context.Background(), request_models.QuizSubmissionRequest{})
	if !errors.Is(err, utils.ErrEmptyCatalog) {
		t.Errorf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestRecommendServicesRepoFailure(t *testing.T) {
	recommender := NewQuizRecommender(
		&fakeServiceRepo{err: errors.New("connection refused")},
		&fakeProductRepo{}, &fakePodcastRepo{})

	_, err := recommender.RecommendServices(context.Background(), request_models.QuizSubmissionRequest{})
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("err = %v, want ErrDatabaseError", err)
	}
}

func TestRecommendProductsWithoutOptIn(t *testing.T) {
	recommender := newTestRecommender(nil, nil, nil)

	got, err := recommender.RecommendProducts(context.Background(), request_models.QuizSubmissionRequest{
		ProductInterest: "No thanks",
	})
	if err != nil {
		t.Fatalf("RecommendProducts: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d products without opt-in, want none", len(got))
	}
}

func TestRecommendProductsCrystalAndMeditationDeduped(t *testing.T) {
	cushion := db_models.Product{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Crystal Meditation Cushion",
		Price:     55,
	}
	oil := db_models.Product{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Lavender Essential Oil",
		Price:     20,
	}
	recommender := newTestRecommender(nil, []db_models.Product{cushion, oil}, nil)

	req := request_models.QuizSubmissionRequest{
		ProductInterest:   "Yes, please",
		DateOfBirth:       "1990-01-15",
		BirthTime:         "08:30",
		BalanceActivities: []string{"Meditation & Mindfulness"},
	}

	got, err := recommender.RecommendProducts(context.Background(), req)
	if err != nil {
		t.Fatalf("RecommendProducts: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d products, want the cushion exactly once: %v", len(got), got)
	}
	if got[0].ProductID != cushion.ID.String() {
		t.Errorf("ProductID = %s, want the cushion", got[0].ProductID)
	}
	if want := "Perfect for Capricorn energy - "; got[0].Description != want {
		t.Errorf("Description = %q, want %q", got[0].Description, want)
	}
	if got[0].ProductURL != "/shop/crystal-meditation-cushion" {
		t.Errorf("ProductURL = %q", got[0].ProductURL)
	}
}

func TestRecommendProductsFullCatalogFallback(t *testing.T) {
	candle := db_models.Product{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Soy Candle",
		Price:     15,
	}
	recommender := newTestRecommender(nil, []db_models.Product{candle}, nil)

	got, err := recommender.RecommendProducts(context.Background(), request_models.QuizSubmissionRequest{
		ProductInterest: "Yes, please",
	})
	if err != nil {
		t.Fatalf("RecommendProducts: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Soy Candle" {
		t.Errorf("full-catalog fallback not applied, got %v", got)
	}
}

func TestRecommendProductsEmptyCatalog(t *testing.T) {
	recommender := newTestRecommender(nil, nil, nil)

	_, err := recommender.RecommendProducts(context.Background(), request_models.QuizSubmissionRequest{
		ProductInterest: "Yes, please",
	})
	if !errors.Is(err, utils.ErrEmptyCatalog) {
		t.Errorf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestRecommendPodcasts(t *testing.T) {
	meditation := db_models.Podcast{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Title:       "Calm Minds",
		PodcastType: "meditation",
	}
	spiritual := db_models.Podcast{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Title:       "Soul Journeys",
		PodcastType: "spiritual_growth",
	}
	recommender := newTestRecommender(nil, nil, []db_models.Podcast{meditation, spiritual})

	got, err := recommender.RecommendPodcasts(context.Background(), "anxiety")
	if err != nil {
		t.Fatalf("RecommendPodcasts: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Calm Minds" {
		t.Errorf("anxiety podcasts = %v, want Calm Minds", got)
	}
	if got[0].Episode != "Featured Episode" {
		t.Errorf("Episode = %q, want Featured Episode", got[0].Episode)
	}

	// Unmapped challenge falls to spiritual_growth.
	got, err = recommender.RecommendPodcasts(context.Background(), "no_such_challenge")
	if err != nil {
		t.Fatalf("RecommendPodcasts: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Soul Journeys" {
		t.Errorf("default podcasts = %v, want Soul Journeys", got)
	}
}

func TestRecommendPodcastsFullCatalogFallback(t *testing.T) {
	other := db_models.Podcast{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Title:       "Healing Hour",
		PodcastType: "energy_healing",
	}
	recommender := newTestRecommender(nil, nil, []db_models.Podcast{other})

	got, err := recommender.RecommendPodcasts(context.Background(), "anxiety")
	if err != nil {
		t.Fatalf("RecommendPodcasts: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Healing Hour" {
		t.Errorf("full-catalog fallback not applied, got %v", got)
	}
}
