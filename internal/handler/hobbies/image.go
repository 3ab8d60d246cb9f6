package hobbies

import (
	"context"
	"net/http"
	"strings"

	"personal-site/internal/api"
	"personal-site/internal/database"
	"personal-site/internal/media"
	"personal-site/internal/model"
	"personal-site/internal/store"
	"personal-site/internal/worker"

	"github.com/labstack/echo/v4"
)

// @Summary     Upload an entry image
// @Description 縮圖於背景產生，完成前 thumbnail 為空
// @Tags        hobbies
// @Accept      multipart/form-data
// @Produce     json
// @Param       slug     path     string true  "興趣 slug"
// @Param       entry_id path     int    true  "條目 ID"
// @Param       image    formData file   true  "jpg, jpeg, png, gif 或 webp，最大 10 MiB"
// @Param       caption  formData string false "說明 (最多 200 字)"
// @Param       order    formData int    false "排序，對應內容中的 [image:N]"
// @Success     201      {object} model.EntryImage
// @Failure     400      {object} api.ErrorResponse
// @Failure     404      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /hobbies/{slug}/entries/{entry_id}/images [post]
func UploadEntryImageHandler(db database.DB, storage *media.Storage, pool worker.Pool) echo.HandlerFunc {
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

		var req api.EntryImageRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		req.Caption = strings.TrimSpace(req.Caption)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		fh, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "image is required"})
		}

		rel, err := saveUpload(storage, "entries", fh)
		if err != nil {
			return uploadError(c, err)
		}
		img, err := createEntryImage(ctx, db, &model.EntryImage{
			EntryID: entry.ID,
			Image:   rel,
			Caption: req.Caption,
			Order:   req.Order,
		})
		if err != nil {
			_ = removeFile(storage, rel)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// echo.Context 在回應後會被重用，背景工作只能帶走 logger
		logger := c.Logger()
		imageID := img.ID
		if !pool.Submit(func(ctx context.Context) {
			thumb, err := makeThumbnail(storage, rel)
			if err != nil {
				logger.Errorf("thumbnail for image %d: %v", imageID, err)
				return
			}
			if err := setEntryImageThumbnail(ctx, db, imageID, thumb); err != nil {
				// 沒有資料列指向縮圖，檔案不能留著
				if rmErr := removeFile(storage, thumb); rmErr != nil {
					logger.Warnf("remove thumbnail %s: %v", thumb, rmErr)
				}
				if store.IsNotFound(err) {
					logger.Infof("image %d was deleted before its thumbnail was saved", imageID)
					return
				}
				logger.Errorf("save thumbnail for image %d: %v", imageID, err)
			}
		}) {
			logger.Warnf("worker pool stopped, image %d has no thumbnail", imageID)
		}
		return c.JSON(http.StatusCreated, img)
	}
}

// @Summary     Delete an entry image
// @Tags        hobbies
// @Param       slug     path string true "興趣 slug"
// @Param       entry_id path int    true "條目 ID"
// @Param       image_id path int    true "圖片 ID"
// @Success     204      "No Content"
// @Failure     400      {object} api.ErrorResponse
// @Failure     404      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /hobbies/{slug}/entries/{entry_id}/images/{image_id} [delete]
func DeleteEntryImageHandler(db database.DB, storage *media.Storage, pool worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		entryID, ok := intParam(c, "entry_id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid entry ID"})
		}
		imageID, ok := intParam(c, "image_id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid image ID"})
		}
		hobby, err := getHobbyBySlug(ctx, db, c.Param("slug"))
		if err != nil {
			return notFoundOr500(c, err, "hobby")
		}
		if _, err := getEntryForHobby(ctx, db, hobby.ID, entryID); err != nil {
			return notFoundOr500(c, err, "entry")
		}

		img, err := deleteEntryImage(ctx, db, entryID, imageID)
		if err != nil {
			return notFoundOr500(c, err, "image")
		}
		removeLater(c, storage, pool, imageFiles(*img))
		return c.NoContent(http.StatusNoContent)
	}
}

func imageFiles(img model.EntryImage) []string {
	files := []string{img.Image}
	if img.Thumbnail != nil {
		files = append(files, *img.Thumbnail)
	}
	return files
}

// removeLater 交給 worker 刪除檔案，失敗只記錄
func removeLater(c echo.Context, storage *media.Storage, pool worker.Pool, files []string) {
	if len(files) == 0 {
		return
	}
	logger := c.Logger()
	task := func(context.Context) {
		for _, f := range files {
			if err := removeFile(storage, f); err != nil {
				logger.Errorf("remove %s: %v", f, err)
			}
		}
	}
	if !pool.Submit(task) {
		task(context.Background())
	}
}
