package hobbies

import (
	"net/http"
	"strings"

	"personal-site/internal/api"
	"personal-site/internal/database"
	"personal-site/internal/media"
	"personal-site/internal/model"
	"personal-site/internal/worker"

	"github.com/labstack/echo/v4"
)

// @Summary     Get an entry
// @Description 條目內容轉為 HTML (content_html)，並附上前一篇 (較舊) 與下一篇 (較新) 的 ID
// @Tags        hobbies
// @Produce     json
// @Param       slug     path     string true "興趣 slug"
// @Param       entry_id path     int    true "條目 ID"
// @Success     200      {object} api.EntryDetailResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     404      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /hobbies/{slug}/entries/{entry_id} [get]
func GetEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		entryID, ok := intParam(c, "entry_id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid entry ID"})
		}
		hobby, err := getHobbyBySlug(ctx, db, c.Param("slug"))
		if err != nil {
			return notFoundOr500(c, err, "hobby")
		}
		entry, err := getEntryForHobby(ctx, db, hobby.ID, entryID)
		if err != nil {
			return notFoundOr500(c, err, "entry")
		}

		images, err := listEntryImages(ctx, db, []int{entry.ID})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		imgs := images[entry.ID]
		if imgs == nil {
			imgs = []model.EntryImage{}
		}
		prev, next, err := getEntryNeighbours(ctx, db, entry)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.EntryDetailResponse{
			Entry:       *entry,
			HobbySlug:   hobby.Slug,
			HobbyTitle:  hobby.Title,
			Images:      imgs,
			ContentHTML: renderContent(entry.Content, imgs, MediaURL),
			PrevEntry:   prev,
			NextEntry:   next,
		})
	}
}

// @Summary     Create an entry
// @Tags        hobbies
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       slug    path     string true "興趣 slug"
// @Param       title   formData string true "標題"
// @Param       content formData string true "內容，可用 [image:N] 標記插入圖片"
// @Success     201     {object} model.Entry
// @Failure     400     {object} api.ErrorResponse
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /hobbies/{slug}/entries [post]
func CreateEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		hobby, err := getHobbyBySlug(ctx, db, c.Param("slug"))
		if err != nil {
			return notFoundOr500(c, err, "hobby")
		}
		e, errResp := bindEntry(c)
		if errResp != nil {
			return c.JSON(http.StatusBadRequest, errResp)
		}
		e.HobbyID = hobby.ID

		e, err = createEntry(ctx, db, e)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, e)
	}
}

// @Summary     Update an entry
// @Tags        hobbies
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       slug     path     string true "興趣 slug"
// @Param       entry_id path     int    true "條目 ID"
// @Param       title    formData string true "標題"
// @Param       content  formData string true "內容"
// @Success     200      {object} model.Entry
// @Failure     400      {object} api.ErrorResponse
// @Failure     404      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /hobbies/{slug}/entries/{entry_id} [put]
func UpdateEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		entryID, ok := intParam(c, "entry_id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid entry ID"})
		}
		hobby, err := getHobbyBySlug(ctx, db, c.Param("slug"))
		if err != nil {
			return notFoundOr500(c, err, "hobby")
		}
		e, errResp := bindEntry(c)
		if errResp != nil {
			return c.JSON(http.StatusBadRequest, errResp)
		}
		e.ID = entryID
		e.HobbyID = hobby.ID

		if err := updateEntry(ctx, db, e); err != nil {
			return notFoundOr500(c, err, "entry")
		}
		return c.JSON(http.StatusOK, e)
	}
}

// @Summary     Delete an entry
// @Tags        hobbies
// @Param       slug     path string true "興趣 slug"
// @Param       entry_id path int    true "條目 ID"
// @Success     204      "No Content"
// @Failure     400      {object} api.ErrorResponse
// @Failure     404      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /hobbies/{slug}/entries/{entry_id} [delete]
func DeleteEntryHandler(db database.DB, storage *media.Storage, pool worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		entryID, ok := intParam(c, "entry_id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid entry ID"})
		}
		hobby, err := getHobbyBySlug(ctx, db, c.Param("slug"))
		if err != nil {
			return notFoundOr500(c, err, "hobby")
		}

		images, err := listEntryImages(ctx, db, []int{entryID})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := deleteEntry(ctx, db, hobby.ID, entryID); err != nil {
			return notFoundOr500(c, err, "entry")
		}

		var files []string
		for _, img := range images[entryID] {
			files = append(files, imageFiles(img)...)
		}
		removeLater(c, storage, pool, files)
		return c.NoContent(http.StatusNoContent)
	}
}

func bindEntry(c echo.Context) (*model.Entry, *api.ErrorResponse) {
	var req api.EntryRequest
	if err := c.Bind(&req); err != nil {
		return nil, &api.ErrorResponse{Message: "invalid form data"}
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := c.Validate(&req); err != nil {
		return nil, &api.ErrorResponse{Message: err.Error()}
	}
	return &model.Entry{Title: req.Title, Content: req.Content}, nil
}
