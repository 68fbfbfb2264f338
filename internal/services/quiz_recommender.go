package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

// QuizRecommender turns a quiz submission into service, product and podcast
// recommendations by loading each catalog in full and applying rule-based
// filters. An empty catalog is a configuration fault and fails the whole
// submission; no recommendations are ever fabricated outside the catalogs.
type QuizRecommender struct {
	serviceRepo repositories.ServiceRepository
	productRepo repositories.ProductRepository
	podcastRepo repositories.PodcastRepository
}

func NewQuizRecommender(
	serviceRepo repositories.ServiceRepository,
	productRepo repositories.ProductRepository,
	podcastRepo repositories.PodcastRepository,
) *QuizRecommender {
	return &QuizRecommender{
		serviceRepo: serviceRepo,
		productRepo: productRepo,
		podcastRepo: podcastRepo,
	}
}

// Challenge and practitioner phrases narrow the service catalog to small
// fixed category sets. Matching is on the raw answer text, substring style,
// so "Anxiety & Stress Relief" and "Stress management" hit the same branch.
func challengeCategories(challenge string) []string {
	switch {
	case strings.Contains(challenge, "Anxiety") || strings.Contains(challenge, "Stress"):
		return []string{"aura_cleansing", "reiki", "meditation"}
	case strings.Contains(challenge, "Trauma"):
		return []string{"life_coaching", "reiki", "crystal_healing"}
	case strings.Contains(challenge, "Spiritual"):
		return []string{"astrology", "tarot", "numerology"}
	default:
		return nil
	}
}

func practitionerCategories(practitionerType string) []string {
	switch {
	case strings.Contains(practitionerType, "Energy healer"):
		return []string{"reiki", "crystal_healing", "aura_cleansing"}
	case strings.Contains(practitionerType, "Mind-body"):
		return []string{"meditation"}
	case strings.Contains(practitionerType, "Talk-based"):
		return []string{"life_coaching"}
	case strings.Contains(practitionerType, "Spiritual guide"):
		return []string{"astrology", "tarot", "numerology"}
	default:
		return nil
	}
}

func filterServicesByType(services []db_models.Service, categories []string) []db_models.Service {
	if categories == nil {
		return services
	}
	allowed := make(map[string]bool, len(categories))
	for _, category := range categories {
		allowed[category] = true
	}

	filtered := make([]db_models.Service, 0, len(services))
	for _, service := range services {
		if allowed[service.ServiceType] {
			filtered = append(filtered, service)
		}
	}
	return filtered
}

// budgetCap returns the price ceiling for the caller's budget phrase, or -1
// when the top tier (or an unknown phrase) leaves prices untouched.
func budgetCap(budget string) float64 {
	switch {
	case strings.Contains(budget, "Under $50"):
		return 45
	case strings.Contains(budget, "$50–$100"):
		return 85
	case strings.Contains(budget, "$100–$200"):
		return 175
	default:
		return -1
	}
}

// RecommendServices applies the challenge filter, then the practitioner
// filter on top of it. Fallback order when a filter empties the set:
// practitioner-filtered -> challenge-filtered -> full catalog. Prices in the
// returned projections are clamped down to the budget cap; catalog rows are
// never mutated.
func (r *QuizRecommender) RecommendServices(ctx context.Context, req request_models.QuizSubmissionRequest) ([]db_models.ServiceRecommendation, error) {
	allServices, err := r.serviceRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(allServices) == 0 {
		return nil, fmt.Errorf("%w: services", utils.ErrEmptyCatalog)
	}

	challengeFiltered := filterServicesByType(allServices, challengeCategories(req.CurrentChallenge))

	filtered := challengeFiltered
	if req.PractitionerType != "" {
		filtered = filterServicesByType(challengeFiltered, practitionerCategories(req.PractitionerType))
	}

	if len(filtered) == 0 {
		filtered = challengeFiltered
	}
	if len(filtered) == 0 {
		filtered = allServices
	}

	priceCap := budgetCap(req.Budget)

	recommendations := make([]db_models.ServiceRecommendation, 0, len(filtered))
	for _, service := range filtered {
		price := service.Price
		if priceCap >= 0 && price > priceCap {
			price = priceCap
		}
		recommendations = append(recommendations, db_models.ServiceRecommendation{
			ServiceID:        service.ID.String(),
			Name:             service.Name,
			Price:            price,
			Description:      service.Description,
			PractitionerType: service.ServiceProviderName,
			Image:            service.Image,
		})
	}

	return recommendations, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func productSlug(name string) string {
	return "/shop/" + whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

func nameMatchesAny(name string, terms ...string) bool {
	lower := strings.ToLower(name)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func normalizedActivities(req request_models.QuizSubmissionRequest) map[string]bool {
	activities := make(map[string]bool, len(req.BalanceActivities))
	for _, activity := range req.BalanceActivities {
		activities[mapBalanceActivity(activity)] = true
	}
	return activities
}

// RecommendProducts is gated on an explicit opt-in. With birth info present,
// crystal products are included with the sun sign woven into the
// description; meditation and nature activities each pull in their own
// product families, de-duplicated by catalog id. When nothing matched, the
// whole catalog comes back rather than an empty list.
func (r *QuizRecommender) RecommendProducts(ctx context.Context, req request_models.QuizSubmissionRequest) ([]db_models.ProductRecommendation, error) {
	recommendations := []db_models.ProductRecommendation{}

	if req.ProductInterest != "Yes, please" {
		return recommendations, nil
	}

	allProducts, err := r.productRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(allProducts) == 0 {
		return nil, fmt.Errorf("%w: products", utils.ErrEmptyCatalog)
	}

	seen := make(map[string]bool)
	add := func(product db_models.Product, description string) {
		id := product.ID.String()
		if seen[id] {
			return
		}
		seen[id] = true
		recommendations = append(recommendations, db_models.ProductRecommendation{
			ProductID:   id,
			Name:        product.Name,
			Price:       product.Price,
			ProductURL:  productSlug(product.Name),
			Description: description,
			Image:       product.ImageURL,
		})
	}

	if req.DateOfBirth != "" && req.BirthTime != "" {
		astrology := CalculateAstrology(req.DateOfBirth, req.BirthTime)
		for _, product := range allProducts {
			if nameMatchesAny(product.Name, "crystal", "amethyst") {
				add(product, fmt.Sprintf("Perfect for %s energy - %s", astrology.SunSign, product.Description))
			}
		}
	}

	activities := normalizedActivities(req)

	if activities["meditation"] {
		for _, product := range allProducts {
			if nameMatchesAny(product.Name, "meditation", "cushion") {
				add(product, product.Description)
			}
		}
	}

	if activities["nature"] {
		for _, product := range allProducts {
			if nameMatchesAny(product.Name, "essential", "oil") {
				add(product, product.Description)
			}
		}
	}

	if len(recommendations) == 0 {
		for _, product := range allProducts {
			add(product, product.Description)
		}
	}

	return recommendations, nil
}

// Normalized challenge value to podcast category.
var challengeToPodcastType = map[string]string{
	"anxiety":           "meditation",
	"stress_management": "meditation",
	"trauma_recovery":   "energy_healing",
	"emotional_balance": "crystal_healing",
	"spiritual_growth":  "spiritual_growth",
	"physical_health":   "energy_healing",
}

// RecommendPodcasts matches the catalog on the category mapped from the
// normalized challenge, defaulting to spiritual_growth, and falls back to
// the full catalog when nothing matches. Never empty for a non-empty
// catalog.
func (r *QuizRecommender) RecommendPodcasts(ctx context.Context, normalizedChallenge string) ([]db_models.PodcastRecommendation, error) {
	allPodcasts, err := r.podcastRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(allPodcasts) == 0 {
		return nil, fmt.Errorf("%w: podcasts", utils.ErrEmptyCatalog)
	}

	podcastType, ok := challengeToPodcastType[strings.ToLower(normalizedChallenge)]
	if !ok {
		podcastType = "spiritual_growth"
	}

	matching := make([]db_models.Podcast, 0, len(allPodcasts))
	for _, podcast := range allPodcasts {
		if podcast.PodcastType == podcastType {
			matching = append(matching, podcast)
		}
	}
	if len(matching) == 0 {
		matching = allPodcasts
	}

	recommendations := make([]db_models.PodcastRecommendation, 0, len(matching))
	for _, podcast := range matching {
		recommendations = append(recommendations, db_models.PodcastRecommendation{
			PodcastID:   podcast.ID.String(),
			Title:       podcast.Title,
			Episode:     "Featured Episode",
			Description: podcast.Description,
			Link:        podcast.PodcastURL,
			Image:       podcast.PodcastImageURL,
		})
	}

	return recommendations, nil
}
