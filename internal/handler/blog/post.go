// Package blog 提供文章的公開查詢與管理員維護
package blog

import (
	"net/http"
	"strconv"
	"strings"

	"personal-site/internal/api"
	"personal-site/internal/database"
	"personal-site/internal/middleware"
	"personal-site/internal/model"
	"personal-site/internal/service"
	"personal-site/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listPosts  = store.ListPosts
	getPost    = store.GetPost
	createPost = store.CreatePost
	updatePost = store.UpdatePost
	deletePost = store.DeletePost
)

func postID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("post_id"))
	return id, err == nil && id > 0
}

// @Summary     List posts
// @Description 依建立時間新到舊列出文章，q 會比對標題與內容
// @Tags        blog
// @Produce     json
// @Param       q   query    string false "搜尋關鍵字"
// @Success     200 {array}  model.Post
// @Failure     500 {object} api.ErrorResponse
// @Router      /blog/posts [get]
func ListPostsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := listPosts(c.Request().Context(), db, strings.TrimSpace(c.QueryParam("q")))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if posts == nil {
			posts = []model.Post{}
		}
		return c.JSON(http.StatusOK, posts)
	}
}

// @Summary     Get a post
// @Tags        blog
// @Produce     json
// @Param       post_id path     int true "文章 ID"
// @Success     200     {object} model.Post
// @Failure     400     {object} api.ErrorResponse
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Router      /blog/posts/{post_id} [get]
func GetPostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := postID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid post ID"})
		}
		post, err := getPost(c.Request().Context(), db, id)
		if store.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "post not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, post)
	}
}

// @Summary     Create a post
// @Tags        blog
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       title   formData string true "標題 (最多 200 字)"
// @Param       content formData string true "內容"
// @Success     201     {object} model.Post
// @Failure     400     {object} api.ErrorResponse
// @Failure     401     {object} api.ErrorResponse
// @Failure     403     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /blog/posts [post]
func CreatePostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.PostRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		post := &model.Post{Title: strings.TrimSpace(req.Title), Content: req.Content}
		if claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims); ok {
			post.UserID = &claims.UserID
		}
		post, err := createPost(c.Request().Context(), db, post)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, post)
	}
}

// @Summary     Update a post
// @Tags        blog
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       post_id path     int    true "文章 ID"
// @Param       title   formData string true "標題"
// @Param       content formData string true "內容"
// @Success     200     {object} model.Post
// @Failure     400     {object} api.ErrorResponse
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /blog/posts/{post_id} [put]
func UpdatePostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := postID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid post ID"})
		}
		var req api.PostRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		post := &model.Post{ID: id, Title: strings.TrimSpace(req.Title), Content: req.Content}
		err := updatePost(c.Request().Context(), db, post)
		if store.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "post not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, post)
	}
}

// @Summary     Delete a post
// @Tags        blog
// @Param       post_id path int true "文章 ID"
// @Success     204     "No Content"
// @Failure     400     {object} api.ErrorResponse
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /blog/posts/{post_id} [delete]
func DeletePostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := postID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid post ID"})
		}
		err := deletePost(c.Request().Context(), db, id)
		if store.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "post not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
