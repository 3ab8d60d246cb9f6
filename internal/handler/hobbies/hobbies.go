// Package hobbies 提供興趣、條目與圖片的查詢及管理員維護
package hobbies

import (
	"errors"
	"net/http"
	"strconv"

	"personal-site/internal/api"
	"personal-site/internal/content"
	"personal-site/internal/media"
	"personal-site/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	// PageSize 列表每頁筆數
	PageSize = 12
	// MediaURL 上傳檔案對外的 URL 前綴
	MediaURL = "/media/"
	// summarySentences 條目摘要取前幾句
	summarySentences = 3
)

var (
	listHobbies            = store.ListHobbies
	getHobbyBySlug         = store.GetHobbyBySlug
	createHobby            = store.CreateHobby
	updateHobby            = store.UpdateHobby
	setHobbyImage          = store.SetHobbyImage
	deleteHobby            = store.DeleteHobby
	listEntriesByHobby     = store.ListEntriesByHobby
	getEntryForHobby       = store.GetEntryForHobby
	getEntryNeighbours     = store.GetEntryNeighbours
	createEntry            = store.CreateEntry
	updateEntry            = store.UpdateEntry
	deleteEntry            = store.DeleteEntry
	listEntryImages        = store.ListEntryImages
	createEntryImage       = store.CreateEntryImage
	setEntryImageThumbnail = store.SetEntryImageThumbnail
	deleteEntryImage       = store.DeleteEntryImage

	saveUpload    = (*media.Storage).Save
	makeThumbnail = (*media.Storage).Thumbnail
	removeFile    = (*media.Storage).Remove

	slugify        = content.Slugify
	firstSentences = content.FirstSentences
	renderContent  = content.Render
)

func intParam(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	return id, err == nil && id > 0
}

func notFoundOr500(c echo.Context, err error, what string) error {
	if store.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: what + " not found"})
	}
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
}

// uploadError 驗證失敗回 400，其餘為 500
func uploadError(c echo.Context, err error) error {
	if errors.Is(err, media.ErrUnsupportedImage) ||
		errors.Is(err, media.ErrImageTooLarge) ||
		errors.Is(err, media.ErrInvalidImage) ||
		errors.Is(err, media.ErrImageDimensions) {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
}
