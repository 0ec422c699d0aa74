// controller/feed_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	"github.com/dev-mohitbeniwal/bookfeed/service"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

type FeedController struct {
	feedService  service.IFeedService
	defaultLimit int
}

func NewFeedController(feedService service.IFeedService, defaultLimit int) *FeedController {
	if defaultLimit < 1 || defaultLimit > 100 {
		defaultLimit = 10
	}
	return &FeedController{
		feedService:  feedService,
		defaultLimit: defaultLimit,
	}
}

// RegisterRoutes registers the API routes
func (fc *FeedController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/feed", fc.GetFeed)
}

type feedQuery struct {
	Limit *int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// GetFeed endpoint
func (fc *FeedController) GetFeed(c *gin.Context) {
	var q feedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "limit must be an integer between 1 and 100", feed_errors.ErrInvalidLimit)
		return
	}
	limit := fc.defaultLimit
	if q.Limit != nil {
		limit = *q.Limit
	}

	user, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	books, err := fc.feedService.GetFeed(c.Request.Context(), user, limit)
	if err != nil {
		respondWithServiceError(c, err, "Failed to load feed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}
