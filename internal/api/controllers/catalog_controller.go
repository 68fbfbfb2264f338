package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListServices godoc
// @Summary List all wellness services
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /services [get]
func (cc *CatalogController) ListServices(c *gin.Context) {
	services, err := cc.catalogService.ListServices(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, services, "Services retrieved successfully")
}

func (cc *CatalogController) GetService(c *gin.Context) {
	service, err := cc.catalogService.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, service, "Service retrieved successfully")
}

func (cc *CatalogController) CreateService(c *gin.Context) {
	var req request_models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := cc.catalogService.CreateService(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, gin.H{"id": id}, "Service created successfully")
}

// ListProducts godoc
// @Summary List all shop products
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /products [get]
func (cc *CatalogController) ListProducts(c *gin.Context) {
	products, err := cc.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, products, "Products retrieved successfully")
}

func (cc *CatalogController) GetProduct(c *gin.Context) {
	product, err := cc.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, product, "Product retrieved successfully")
}

func (cc *CatalogController) CreateProduct(c *gin.Context) {
	var req request_models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := cc.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, gin.H{"id": id}, "Product created successfully")
}

// ListPodcasts godoc
// @Summary List all podcasts
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /podcasts [get]
func (cc *CatalogController) ListPodcasts(c *gin.Context) {
	podcasts, err := cc.catalogService.ListPodcasts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, podcasts, "Podcasts retrieved successfully")
}

func (cc *CatalogController) GetPodcast(c *gin.Context) {
	podcast, err := cc.catalogService.GetPodcast(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, podcast, "Podcast retrieved successfully")
}

func (cc *CatalogController) CreatePodcast(c *gin.Context) {
	var req request_models.CreatePodcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := cc.catalogService.CreatePodcast(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, gin.H{"id": id}, "Podcast created successfully")
}
