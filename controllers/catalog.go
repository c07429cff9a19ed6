package controllers

import (
	"net/http"

	"nailstudio-backend/services"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// ListCatalog returns the services in display order, filtered by ?q=
func (cc *CatalogController) ListCatalog(c *gin.Context) {
	items, err := cc.catalog.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve catalog")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (cc *CatalogController) GetCatalogItem(c *gin.Context) {
	item, err := cc.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve service")
		return
	}
	c.JSON(http.StatusOK, item)
}

// ShareCatalogItem returns a ready-to-send share message for a service
func (cc *CatalogController) ShareCatalogItem(c *gin.Context) {
	share, err := cc.catalog.Share(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to build share text")
		return
	}
	c.JSON(http.StatusOK, share)
}

// CreateCatalogItem adds a new service to the catalog
func (cc *CatalogController) CreateCatalogItem(c *gin.Context) {
	var input services.CatalogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	item, err := cc.catalog.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (cc *CatalogController) UpdateCatalogItem(c *gin.Context) {
	var input services.CatalogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	item, err := cc.catalog.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, item)
}

// UploadCatalogImage replaces the service photo with a compressed upload
func (cc *CatalogController) UploadCatalogImage(c *gin.Context) {
	image, ok := readImage(c)
	if !ok {
		return
	}
	item, err := cc.catalog.SetImage(c.Request.Context(), c.Param("id"), image)
	if err != nil {
		respondServiceError(c, err, "Failed to update service image")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (cc *CatalogController) DeleteCatalogItem(c *gin.Context) {
	if err := cc.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
