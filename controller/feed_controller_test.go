// controller/feed_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/bookfeed/controller"
	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	"github.com/dev-mohitbeniwal/bookfeed/model"
	mock_service "github.com/dev-mohitbeniwal/bookfeed/test/service_mock"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

func setupRouter(user *model.User) (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/")
	if user != nil {
		api.Use(func(c *gin.Context) {
			c.Set(util.RequestingUserKey, *user)
			c.Next()
		})
	}
	return r, api
}

func TestFeedController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := model.User{ID: "u1", Country: "USA", Libraries: []string{"L"}}
	mockFeedService := mock_service.NewMockIFeedService(ctrl)
	router, api := setupRouter(&user)
	controller.NewFeedController(mockFeedService, 10).RegisterRoutes(api)

	t.Run("GetFeed_DefaultLimit", func(t *testing.T) {
		mockFeedService.EXPECT().
			GetFeed(gomock.Any(), user, 10).
			Return([]model.Book{{ID: "P1"}, {ID: "P2"}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/feed", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Books []model.Book `json:"books"`
			Count int          `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Count)
		assert.Equal(t, "P1", body.Books[0].ID)
	})

	t.Run("GetFeed_ExplicitLimit", func(t *testing.T) {
		mockFeedService.EXPECT().
			GetFeed(gomock.Any(), user, 100).
			Return([]model.Book{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/feed?limit=100", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"books":[],"count":0}`, w.Body.String())
	})

	for _, limit := range []string{"0", "101", "-1", "ten"} {
		t.Run("GetFeed_InvalidLimit_"+limit, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/feed?limit="+limit, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	t.Run("GetFeed_SourceFailure", func(t *testing.T) {
		mockFeedService.EXPECT().
			GetFeed(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, feed_errors.ErrDatabaseOperation)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/feed", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestFeedController_RequiresUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, api := setupRouter(nil)
	controller.NewFeedController(mock_service.NewMockIFeedService(ctrl), 10).RegisterRoutes(api)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/feed", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
