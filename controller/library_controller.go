// controller/library_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	"github.com/dev-mohitbeniwal/bookfeed/model"
	"github.com/dev-mohitbeniwal/bookfeed/service"
	"github.com/dev-mohitbeniwal/bookfeed/util"
	helper_util "github.com/dev-mohitbeniwal/bookfeed/util/helper"
)

type LibraryController struct {
	libraryService service.ILibraryService
}

func NewLibraryController(libraryService service.ILibraryService) *LibraryController {
	return &LibraryController{
		libraryService: libraryService,
	}
}

// RegisterRoutes registers the API routes
func (lc *LibraryController) RegisterRoutes(r *gin.RouterGroup) {
	libraries := r.Group("/libraries")
	{
		libraries.POST("", lc.CreateLibrary)
		libraries.GET("", lc.ListLibraries)
		libraries.GET("/:id", lc.GetLibrary)
		libraries.PUT("/:id", lc.UpdateLibrary)
		libraries.DELETE("/:id", lc.DeleteLibrary)
	}
}

// CreateLibrary endpoint
func (lc *LibraryController) CreateLibrary(c *gin.Context) {
	var library model.Library
	if err := c.ShouldBindJSON(&library); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid library data", feed_errors.ErrInvalidLibraryData)
		return
	}
	requester, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	created, err := lc.libraryService.CreateLibrary(c.Request.Context(), library, requester)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create library")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateLibrary endpoint
func (lc *LibraryController) UpdateLibrary(c *gin.Context) {
	var library model.Library
	if err := c.ShouldBindJSON(&library); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid library data", feed_errors.ErrInvalidLibraryData)
		return
	}
	library.ID = c.Param("id")
	requester, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	updated, err := lc.libraryService.UpdateLibrary(c.Request.Context(), library, requester)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update library")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteLibrary endpoint
func (lc *LibraryController) DeleteLibrary(c *gin.Context) {
	requester, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := lc.libraryService.DeleteLibrary(c.Request.Context(), c.Param("id"), requester); err != nil {
		respondWithServiceError(c, err, "Failed to delete library")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetLibrary endpoint
func (lc *LibraryController) GetLibrary(c *gin.Context) {
	library, err := lc.libraryService.GetLibrary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to get library")
		return
	}

	c.JSON(http.StatusOK, library)
}

// ListLibraries endpoint
func (lc *LibraryController) ListLibraries(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	libraries, err := lc.libraryService.ListLibraries(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to list libraries")
		return
	}

	c.JSON(http.StatusOK, helper_util.Page(libraries, limit, offset))
}
