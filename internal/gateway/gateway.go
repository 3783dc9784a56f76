// Package gateway is the process's request boundary: it serves the local
// application API, applies the cache-first policy to static asset requests,
// and routes mutating API calls through the sync queue.
package gateway

import (
	"context"
	"net/http"
	"time"

	"mojicode/internal/assetcache"
	"mojicode/internal/config"
	"mojicode/internal/repository"
	"mojicode/internal/service"
	"mojicode/internal/session"
	"mojicode/internal/syncq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Gateway holds all dependencies and provides handlers.
type Gateway struct {
	config   *config.Config
	app      *fiber.App
	cache    *assetcache.Controller
	queue    *syncq.Queue
	client   *syncq.Client
	replayer *syncq.Replayer
	sessions *session.Manager

	identity      *service.IdentityService
	posts         *service.PostService
	comments      *service.CommentService
	media         *service.MediaService
	relationships *service.RelationshipService
}

// New wires a Gateway over the open database handle and redis client.
// rdb may be nil; the asset cache then degrades to pass-through.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *Gateway {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	cache := assetcache.NewController(rdb, httpClient, cfg.CacheVersion, cfg.Origin)
	queue := syncq.NewQueue(repository.NewPendingRequestRepository(db))

	g := &Gateway{
		config:        cfg,
		cache:         cache,
		queue:         queue,
		client:        syncq.NewClient(queue, httpClient, cache),
		replayer:      syncq.NewReplayer(queue, httpClient),
		sessions:      session.NewManager(cfg.JWTSecret, time.Duration(cfg.SessionTTLHours)*time.Hour),
		identity:      service.NewIdentityService(repository.NewUserRepository(db)),
		posts:         service.NewPostService(repository.NewPostRepository(db)),
		comments:      service.NewCommentService(repository.NewCommentRepository(db)),
		media:         service.NewMediaService(repository.NewMediaRepository(db)),
		relationships: service.NewRelationshipService(db),
	}

	g.app = fiber.New(fiber.Config{
		AppName:               "mojicode",
		DisableStartupMessage: true,
		BodyLimit:             32 * 1024 * 1024,
	})
	g.setupRoutes()
	return g
}

// Cache exposes the asset cache controller for install/activate at startup.
func (g *Gateway) Cache() *assetcache.Controller {
	return g.cache
}

// Replayer exposes the sync replayer so the runner can start its loop.
func (g *Gateway) Replayer() *syncq.Replayer {
	return g.replayer
}

func (g *Gateway) setupRoutes() {
	g.app.Use(recover.New())
	g.app.Use(requestid.New())

	g.app.Get("/healthz", g.Health)
	g.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	g.app.Post("/internal/sync", g.TriggerSync)

	app := g.app.Group("/app")
	app.Post("/auth/signup", g.Signup)
	app.Post("/auth/login", g.Login)
	app.Post("/auth/refresh", g.Refresh)

	app.Get("/users/search", g.SearchUsers)
	app.Get("/users/:email", g.GetUser)
	app.Put("/users/:email", g.authRequired, g.UpdateUser)
	app.Get("/users/:email/followers", g.GetFollowers)
	app.Get("/users/:email/following", g.GetFollowing)
	app.Post("/users/:email/follow", g.authRequired, g.ToggleFollow)

	app.Get("/posts", g.ListPosts)
	app.Post("/posts", g.authRequired, g.CreatePost)
	app.Get("/posts/:id", g.GetPost)
	app.Put("/posts/:id", g.authRequired, g.UpdatePost)
	app.Delete("/posts/:id", g.authRequired, g.DeletePost)
	app.Get("/posts/:id/comments", g.ListComments)
	app.Post("/posts/:id/comments", g.authRequired, g.AddComment)
	app.Get("/posts/:id/likes", g.ListLikes)
	app.Post("/posts/:id/like", g.authRequired, g.ToggleLike)

	app.Post("/media", g.authRequired, g.UploadMedia)
	app.Get("/media/:id", g.GetMedia)

	// Everything else follows the service-worker policy: API prefix goes
	// through the sync-queue client, same-origin statics are cache-first.
	g.app.All(g.config.APIPrefix+"*", g.HandleAPI)
	g.app.Get("/*", g.HandleStatic)
}

// Health handles GET /healthz.
func (g *Gateway) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// TriggerSync handles POST /internal/sync: the reconnect signal. One signal
// triggers one replay pass over the pending-request list.
func (g *Gateway) TriggerSync(c *fiber.Ctx) error {
	tag := c.Query("tag", syncq.SyncTag)
	g.replayer.Signal(tag)
	return c.JSON(fiber.Map{"signaled": tag})
}

// Listen serves until the listener fails.
func (g *Gateway) Listen(addr string) error {
	return g.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (g *Gateway) Shutdown(ctx context.Context) error {
	return g.app.ShutdownWithContext(ctx)
}

// App exposes the fiber app for tests.
func (g *Gateway) App() *fiber.App {
	return g.app
}
