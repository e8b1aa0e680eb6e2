package router

import (
	"github.com/zigac9/ElectricalCarBlog-backend/internal/application"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/container"
	pginfra "github.com/zigac9/ElectricalCarBlog-backend/internal/infrastructure/postgres"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/infrastructure/search"
	handlers "github.com/zigac9/ElectricalCarBlog-backend/internal/interface/http"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/interface/middleware"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/router/modules"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/helpers"
)

// InitModules wires the repositories, services and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	chargers := pginfra.NewChargerRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)
	messages := pginfra.NewEmailMessageRepository(pool)

	guard := application.NewModerationGuard(users, container.GetClassifier(), logger)
	tokens := helpers.NewRedisStore(container.GetRedis())
	uploader := &helpers.GCSUploader{Client: container.GetGCS(), Bucket: cfg.GCSBucket}
	postIndex := search.NewPostIndex(container.GetES(), cfg.ESPostsIndex)
	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)
	jwt := container.GetJWT()
	queue := container.GetRabbitPub()

	userSvc := application.NewUserService(users, guard, tokens, jwt, queue, uploader, cfg, logger)
	postSvc := application.NewPostService(posts, users, chargers, guard, postIndex, uploader, logger)
	commentSvc := application.NewCommentService(comments, posts, users, guard, logger)
	chargerSvc := application.NewChargerService(chargers, users, guard, logger)
	categorySvc := application.NewCategoryService(categories, users, guard, logger)
	emailSvc := application.NewEmailService(messages, users, guard, queue, logger)

	auth := middleware.Auth(container.GetRedis(), jwt, users)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, cookies, logger), auth))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), auth))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc, logger), auth))
	r.Add(modules.NewChargerModule(handlers.NewChargerHandler(chargerSvc, logger), auth))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(categorySvc, logger), auth))
	r.Add(modules.NewEmailModule(handlers.NewEmailHandler(emailSvc, logger), auth))
}
