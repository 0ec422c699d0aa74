// controller/user_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	"github.com/dev-mohitbeniwal/bookfeed/model"
	"github.com/dev-mohitbeniwal/bookfeed/service"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("", uc.CreateUser)
		users.GET("/me", uc.GetCurrentUser)
		users.GET("/:id", uc.GetUser)
		users.PUT("/:id/libraries", uc.UpdateLibraries)
	}
}

// CreateUser endpoint
func (uc *UserController) CreateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", feed_errors.ErrInvalidUserData)
		return
	}
	requester, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	created, err := uc.userService.CreateUser(c.Request.Context(), user, requester)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetCurrentUser returns the authenticated user.
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	requester, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	c.JSON(http.StatusOK, requester)
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	requester, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	user, err := uc.userService.GetUser(c.Request.Context(), c.Param("id"), requester)
	if err != nil {
		respondWithServiceError(c, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateLibraries replaces a user's library memberships.
func (uc *UserController) UpdateLibraries(c *gin.Context) {
	var body model.LibrariesUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "libraries must be a list of library ids", feed_errors.ErrInvalidUserData)
		return
	}
	requester, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	updated, err := uc.userService.UpdateLibraries(c.Request.Context(), c.Param("id"), body.Libraries, requester)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update libraries")
		return
	}

	c.JSON(http.StatusOK, updated)
}
