// controller/user_controller_test.go
package controller_test

import (
	"fmt"
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

func TestUserController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	self := model.User{ID: "u1", Country: "UK", Libraries: []string{"L1"}}
	mockUserService := mock_service.NewMockIUserService(ctrl)
	router, api := setupRouter(&self)
	controller.NewUserController(mockUserService).RegisterRoutes(api)

	t.Run("UpdateLibraries_Success", func(t *testing.T) {
		mockUserService.EXPECT().
			UpdateLibraries(gomock.Any(), "u1", []string{"L1", "L2"}, self).
			Return(model.User{ID: "u1", Libraries: []string{"L1", "L2"}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/users/u1/libraries", strings.NewReader(`{"libraries":["L1","L2"]}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UpdateLibraries_Empty", func(t *testing.T) {
		mockUserService.EXPECT().
			UpdateLibraries(gomock.Any(), "u1", []string{}, self).
			Return(model.User{ID: "u1", Libraries: []string{}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/users/u1/libraries", strings.NewReader(`{"libraries":[]}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UpdateLibraries_MissingField", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/users/u1/libraries", strings.NewReader(`{}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UpdateLibraries_UnknownLibrary", func(t *testing.T) {
		mockUserService.EXPECT().
			UpdateLibraries(gomock.Any(), "u1", []string{"L9"}, self).
			Return(model.User{}, fmt.Errorf("%w: L9", feed_errors.ErrLibraryNotFound))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/users/u1/libraries", strings.NewReader(`{"libraries":["L9"]}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("CreateUser_UnknownRole", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/users", strings.NewReader(`{"username":"ada","role":"owner"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CreateUser_Success", func(t *testing.T) {
		mockUserService.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), self).
			DoAndReturn(func(_ any, user model.User, _ model.User) (model.User, error) {
				assert.True(t, user.IsAdmin())
				user.ID = "u9"
				return user, nil
			})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/users", strings.NewReader(`{"username":"ada","country":"UK","role":"admin"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"admin"`)
	})

	t.Run("GetCurrentUser", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"u1"`)
	})

	t.Run("GetUser_Forbidden", func(t *testing.T) {
		mockUserService.EXPECT().
			GetUser(gomock.Any(), "u2", self).
			Return(model.User{}, feed_errors.ErrForbidden)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/u2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
