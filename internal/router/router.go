// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"personal-site/internal/cache"
	"personal-site/internal/database"
	"personal-site/internal/handler"
	"personal-site/internal/handler/auth"
	"personal-site/internal/handler/blog"
	"personal-site/internal/handler/hobbies"
	"personal-site/internal/handler/passwords"
	"personal-site/internal/handler/users"
	"personal-site/internal/media"
	"personal-site/internal/middleware"
	"personal-site/internal/worker"
)

// Deps 路由需要的其他元件
type Deps struct {
	Media            *media.Storage
	Workers          worker.Pool
	TelegramBotToken string
	VaultSessionTTL  time.Duration
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, deps Deps) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(rdb)
	requireAdmin := middleware.RequireAdmin(rdb)

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	// 註冊、登入、登出
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))
	api.POST("/auth/logout", auth.LogoutHandler(rdb), requireAuth)
	api.GET("/auth/telegram/callback", auth.TelegramCallbackHandler(db, rdb, deps.TelegramBotToken))

	// 取得、更新、刪除當前使用者個人資料
	// 中介層掛在各路由上，群組層級的中介層會額外註冊 catch-all 路由
	apiUsersMe := api.Group("/users/me")
	apiUsersMe.GET("", users.GetMyUserHandler(db), requireAuth)
	apiUsersMe.PUT("", users.UpdateMyUserHandler(db), requireAuth)
	apiUsersMe.DELETE("", users.DeleteMyUserHandler(db), requireAuth)
	apiUsersMe.PATCH("/password", users.UpdateMyUserPasswordHandler(db), requireAuth)

	// 部落格：公開讀取，管理員維護
	apiBlog := api.Group("/blog/posts")
	apiBlog.GET("", blog.ListPostsHandler(db))
	apiBlog.GET("/:post_id", blog.GetPostHandler(db))
	apiBlog.POST("", blog.CreatePostHandler(db), requireAdmin)
	apiBlog.PUT("/:post_id", blog.UpdatePostHandler(db), requireAdmin)
	apiBlog.DELETE("/:post_id", blog.DeletePostHandler(db), requireAdmin)

	// 興趣與條目
	apiHobbies := api.Group("/hobbies")
	apiHobbies.GET("", hobbies.ListHobbiesHandler(db))
	apiHobbies.GET("/:slug", hobbies.GetHobbyHandler(db))
	apiHobbies.GET("/:slug/entries/:entry_id", hobbies.GetEntryHandler(db))
	apiHobbies.POST("", hobbies.CreateHobbyHandler(db), requireAdmin)
	apiHobbies.PUT("/:slug", hobbies.UpdateHobbyHandler(db), requireAdmin)
	apiHobbies.DELETE("/:slug", hobbies.DeleteHobbyHandler(db, deps.Media, deps.Workers), requireAdmin)
	apiHobbies.POST("/:slug/image", hobbies.UploadHobbyImageHandler(db, deps.Media, deps.Workers), requireAdmin)
	apiHobbies.POST("/:slug/entries", hobbies.CreateEntryHandler(db), requireAdmin)
	apiHobbies.PUT("/:slug/entries/:entry_id", hobbies.UpdateEntryHandler(db), requireAdmin)
	apiHobbies.DELETE("/:slug/entries/:entry_id", hobbies.DeleteEntryHandler(db, deps.Media, deps.Workers), requireAdmin)
	apiHobbies.POST("/:slug/entries/:entry_id/images", hobbies.UploadEntryImageHandler(db, deps.Media, deps.Workers), requireAdmin)
	apiHobbies.DELETE("/:slug/entries/:entry_id/images/:image_id", hobbies.DeleteEntryImageHandler(db, deps.Media, deps.Workers), requireAdmin)

	// 密碼保險庫（管理員專屬），讀寫項目需先解鎖
	apiPasswords := api.Group("/passwords")
	apiPasswords.GET("/status", passwords.StatusHandler(db, rdb), requireAdmin)
	apiPasswords.POST("/setup", passwords.SetupHandler(db, rdb, deps.VaultSessionTTL), requireAdmin)
	apiPasswords.POST("/unlock", passwords.UnlockHandler(db, rdb, deps.VaultSessionTTL), requireAdmin)
	apiPasswords.POST("/session/clear", passwords.ClearSessionHandler(rdb), requireAdmin)
	apiPasswords.POST("/master", passwords.ChangeMasterHandler(db, rdb, deps.VaultSessionTTL), requireAdmin)

	unlocked := middleware.RequireVaultSession(db, rdb)
	apiPasswords.GET("", passwords.ListHandler(db), requireAdmin, unlocked)
	apiPasswords.POST("", passwords.CreateHandler(db), requireAdmin, unlocked)
	apiPasswords.PUT("/:entry_id", passwords.UpdateHandler(db), requireAdmin, unlocked)
	apiPasswords.DELETE("/:entry_id", passwords.DeleteHandler(db), requireAdmin, unlocked)
}
