// controller/book_controller.go
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

type BookController struct {
	bookService service.IBookService
}

func NewBookController(bookService service.IBookService) *BookController {
	return &BookController{
		bookService: bookService,
	}
}

// RegisterRoutes registers the API routes
func (bc *BookController) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.POST("", bc.CreateBook)
		books.GET("", bc.ListBooks)
		books.GET("/:id", bc.GetBook)
		books.PUT("/:id", bc.UpdateBook)
		books.DELETE("/:id", bc.DeleteBook)
	}
}

// CreateBook endpoint
func (bc *BookController) CreateBook(c *gin.Context) {
	var book model.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid book data", feed_errors.ErrInvalidBookData)
		return
	}
	requester, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	created, err := bc.bookService.CreateBook(c.Request.Context(), book, requester)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create book")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateBook endpoint
func (bc *BookController) UpdateBook(c *gin.Context) {
	var update model.BookUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid book data", feed_errors.ErrInvalidBookData)
		return
	}
	requester, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	updated, err := bc.bookService.UpdateBook(c.Request.Context(), c.Param("id"), update, requester)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update book")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteBook endpoint
func (bc *BookController) DeleteBook(c *gin.Context) {
	requester, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := bc.bookService.DeleteBook(c.Request.Context(), c.Param("id"), requester); err != nil {
		respondWithServiceError(c, err, "Failed to delete book")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBook endpoint
func (bc *BookController) GetBook(c *gin.Context) {
	requester, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	book, err := bc.bookService.GetBook(c.Request.Context(), c.Param("id"), requester)
	if err != nil {
		respondWithServiceError(c, err, "Failed to get book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// ListBooks endpoint
func (bc *BookController) ListBooks(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	requester, err := util.GetRequestingUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	books, err := bc.bookService.ListBooks(c.Request.Context(), requester)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list books")
		return
	}

	c.JSON(http.StatusOK, helper_util.Page(books, limit, offset))
}
