// controller/library_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/bookfeed/controller"
	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	"github.com/dev-mohitbeniwal/bookfeed/model"
	mock_service "github.com/dev-mohitbeniwal/bookfeed/test/service_mock"
)

func TestLibraryController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := model.User{ID: "admin", Role: model.Admin}
	mockLibraryService := mock_service.NewMockILibraryService(ctrl)
	router, api := setupRouter(&admin)
	controller.NewLibraryController(mockLibraryService).RegisterRoutes(api)

	t.Run("CreateLibrary_Success", func(t *testing.T) {
		mockLibraryService.EXPECT().
			CreateLibrary(gomock.Any(), model.Library{Name: "Central", Location: "Main St"}, admin).
			Return(model.Library{ID: "L1", Name: "Central", Location: "Main St"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/libraries", strings.NewReader(`{"name":"Central","location":"Main St"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("UpdateLibrary_UsesPathID", func(t *testing.T) {
		mockLibraryService.EXPECT().
			UpdateLibrary(gomock.Any(), model.Library{ID: "L1", Name: "Central", Location: "Elm St"}, admin).
			Return(model.Library{ID: "L1"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/libraries/L1", strings.NewReader(`{"id":"other","name":"Central","location":"Elm St"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DeleteLibrary_Forbidden", func(t *testing.T) {
		mockLibraryService.EXPECT().
			DeleteLibrary(gomock.Any(), "L1", admin).
			Return(feed_errors.ErrForbidden)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/libraries/L1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("GetLibrary_NotFound", func(t *testing.T) {
		mockLibraryService.EXPECT().
			GetLibrary(gomock.Any(), "L9").
			Return(model.Library{}, feed_errors.ErrLibraryNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/libraries/L9", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListLibraries_Success", func(t *testing.T) {
		mockLibraryService.EXPECT().
			ListLibraries(gomock.Any()).
			Return([]model.Library{{ID: "L1"}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/libraries", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
