package hobbies

import (
	"net/http"
	"strconv"
	"strings"

	"personal-site/internal/api"
	"personal-site/internal/database"
	"personal-site/internal/media"
	"personal-site/internal/model"
	"personal-site/internal/store"
	"personal-site/internal/worker"

	"github.com/labstack/echo/v4"
)

// @Summary     List hobbies
// @Description 依建立時間新到舊分頁列出興趣，每頁 12 筆；超出範圍的頁碼回傳最後一頁
// @Tags        hobbies
// @Produce     json
// @Param       page query    int false "頁碼，從 1 開始"
// @Success     200  {object} api.HobbyListResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /hobbies [get]
func ListHobbiesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		page, err := strconv.Atoi(c.QueryParam("page"))
		if err != nil || page < 1 {
			page = 1
		}

		items, total, err := listHobbies(ctx, db, PageSize, (page-1)*PageSize)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		totalPages := (total + PageSize - 1) / PageSize
		if totalPages < 1 {
			totalPages = 1
		}
		if page > totalPages {
			page = totalPages
			items, total, err = listHobbies(ctx, db, PageSize, (page-1)*PageSize)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}
		if items == nil {
			items = []model.Hobby{}
		}

		return c.JSON(http.StatusOK, api.HobbyListResponse{
			Items:      items,
			Page:       page,
			TotalPages: totalPages,
			Total:      total,
		})
	}
}

// @Summary     Get a hobby
// @Description 興趣與其所有條目 (新到舊)，每筆條目附摘要 (前三句) 與圖片
// @Tags        hobbies
// @Produce     json
// @Param       slug path     string true "興趣 slug"
// @Success     200  {object} api.HobbyDetailResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /hobbies/{slug} [get]
func GetHobbyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		hobby, err := getHobbyBySlug(ctx, db, c.Param("slug"))
		if err != nil {
			return notFoundOr500(c, err, "hobby")
		}

		entries, err := listEntriesByHobby(ctx, db, hobby.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		ids := make([]int, len(entries))
		for i, e := range entries {
			ids[i] = e.ID
		}
		images, err := listEntryImages(ctx, db, ids)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.HobbyDetailResponse{Hobby: *hobby, Entries: make([]api.EntrySummary, 0, len(entries))}
		for _, e := range entries {
			imgs := images[e.ID]
			if imgs == nil {
				imgs = []model.EntryImage{}
			}
			resp.Entries = append(resp.Entries, api.EntrySummary{
				Entry:   e,
				Summary: firstSentences(e.Content, summarySentences),
				Images:  imgs,
			})
		}
		resp.EntryCount = len(entries)
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a hobby
// @Description slug 留空時由標題產生
// @Tags        hobbies
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       title       formData string true  "標題"
// @Param       slug        formData string false "網址代稱"
// @Param       description formData string false "說明"
// @Success     201         {object} model.Hobby
// @Failure     400         {object} api.ErrorResponse
// @Failure     409         {object} api.ErrorResponse
// @Failure     500         {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /hobbies [post]
func CreateHobbyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		h, errResp := bindHobby(c, "")
		if errResp != nil {
			return c.JSON(http.StatusBadRequest, errResp)
		}

		h, err := createHobby(c.Request().Context(), db, h)
		if store.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "slug already exists"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, h)
	}
}

// @Summary     Update a hobby
// @Tags        hobbies
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       slug        path     string true  "興趣 slug"
// @Param       title       formData string true  "標題"
// @Param       slug        formData string false "新的網址代稱，留空則不變"
// @Param       description formData string false "說明"
// @Success     200         {object} model.Hobby
// @Failure     400         {object} api.ErrorResponse
// @Failure     404         {object} api.ErrorResponse
// @Failure     409         {object} api.ErrorResponse
// @Failure     500         {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /hobbies/{slug} [put]
func UpdateHobbyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		current, err := getHobbyBySlug(ctx, db, c.Param("slug"))
		if err != nil {
			return notFoundOr500(c, err, "hobby")
		}

		h, errResp := bindHobby(c, current.Slug)
		if errResp != nil {
			return c.JSON(http.StatusBadRequest, errResp)
		}
		h.ID = current.ID

		err = updateHobby(ctx, db, h)
		if store.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "slug already exists"})
		}
		if err != nil {
			return notFoundOr500(c, err, "hobby")
		}
		return c.JSON(http.StatusOK, h)
	}
}

// @Summary     Delete a hobby
// @Description 連同條目與圖片一併刪除
// @Tags        hobbies
// @Param       slug path string true "興趣 slug"
// @Success     204  "No Content"
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /hobbies/{slug} [delete]
func DeleteHobbyHandler(db database.DB, storage *media.Storage, pool worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		hobby, err := getHobbyBySlug(ctx, db, c.Param("slug"))
		if err != nil {
			return notFoundOr500(c, err, "hobby")
		}

		// 先記下檔案，資料列刪除後就查不到了
		var files []string
		if hobby.Image != nil {
			files = append(files, *hobby.Image)
		}
		entries, err := listEntriesByHobby(ctx, db, hobby.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		ids := make([]int, len(entries))
		for i, e := range entries {
			ids[i] = e.ID
		}
		images, err := listEntryImages(ctx, db, ids)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		for _, imgs := range images {
			for _, img := range imgs {
				files = append(files, imageFiles(img)...)
			}
		}

		if err := deleteHobby(ctx, db, hobby.ID); err != nil {
			return notFoundOr500(c, err, "hobby")
		}
		removeLater(c, storage, pool, files)
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Upload a hobby cover image
// @Tags        hobbies
// @Accept      multipart/form-data
// @Produce     json
// @Param       slug  path     string true "興趣 slug"
// @Param       image formData file   true "jpg, jpeg, png, gif 或 webp，最大 10 MiB"
// @Success     200   {object} model.Hobby
// @Failure     400   {object} api.ErrorResponse
// @Failure     404   {object} api.ErrorResponse
// @Failure     500   {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /hobbies/{slug}/image [post]
func UploadHobbyImageHandler(db database.DB, storage *media.Storage, pool worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		hobby, err := getHobbyBySlug(ctx, db, c.Param("slug"))
		if err != nil {
			return notFoundOr500(c, err, "hobby")
		}

		fh, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "image is required"})
		}
		rel, err := saveUpload(storage, "hobbies", fh)
		if err != nil {
			return uploadError(c, err)
		}
		if err := setHobbyImage(ctx, db, hobby.ID, rel); err != nil {
			_ = removeFile(storage, rel)
			return notFoundOr500(c, err, "hobby")
		}

		if hobby.Image != nil {
			removeLater(c, storage, pool, []string{*hobby.Image})
		}
		hobby.Image = &rel
		return c.JSON(http.StatusOK, hobby)
	}
}

// bindHobby 綁定並驗證表單；slug 留空時沿用 keepSlug，新建時則由標題產生
func bindHobby(c echo.Context, keepSlug string) (*model.Hobby, *api.ErrorResponse) {
	var req api.HobbyRequest
	if err := c.Bind(&req); err != nil {
		return nil, &api.ErrorResponse{Message: "invalid form data"}
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.TrimSpace(req.Slug)
	if err := c.Validate(&req); err != nil {
		return nil, &api.ErrorResponse{Message: err.Error()}
	}
	slug := req.Slug
	if slug == "" {
		slug = keepSlug
	}
	if slug == "" {
		slug = slugify(req.Title)
	}
	if slug == "" {
		return nil, &api.ErrorResponse{Message: "slug could not be derived from the title"}
	}
	return &model.Hobby{Title: req.Title, Slug: slug, Description: req.Description}, nil
}
