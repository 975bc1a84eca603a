package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/banners"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/cache"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/categories"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/config"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/contacts"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/customers"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/db"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/discounts"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/middleware"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/orders"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/products"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/ratings"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/servicecategories"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/services"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/stats"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/uploads"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	uploader := uploads.NewClient(cfg.ImageHostURL, cfg.ImageHostAPIKey, cfg.ImageHostFolder)
	if uploader == nil {
		logger.Info("image uploads disabled")
	} else {
		logger.Info("image uploads enabled", slog.String("folder", cfg.ImageHostFolder))
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	productsRepo := products.NewRepository(cols.Products)
	productsService := products.NewService(productsRepo, uploaderOrNil(uploader), cfg.Timezone)
	productsHandler := products.NewHandler(productsService, val, logger)

	categoriesRepo := categories.NewRepository(cols.Categories)
	categoriesService := categories.NewService(categoriesRepo, productsRepo, cfg.Timezone)
	categoriesHandler := categories.NewHandler(categoriesService, val, logger, cacheStore, cacheTTL)

	customersRepo := customers.NewRepository(cols.Customers)
	customersService := customers.NewService(customersRepo, cfg.Timezone)
	customersHandler := customers.NewHandler(customersService, val, logger)

	serviceCategoriesRepo := servicecategories.NewRepository(cols.ServiceCategories)
	serviceCategoriesService := servicecategories.NewService(serviceCategoriesRepo, cfg.Timezone)
	serviceCategoriesHandler := servicecategories.NewHandler(serviceCategoriesService, val, logger)

	servicesRepo := services.NewRepository(cols.Services)
	servicesManager := services.NewManager(servicesRepo, cfg.Timezone)
	servicesHandler := services.NewHandler(servicesManager, val, logger)

	discountsRepo := discounts.NewRepository(cols.Discounts)
	discountsService := discounts.NewService(discountsRepo, cfg.Timezone)
	discountsHandler := discounts.NewHandler(discountsService, val, logger)

	ratingsRepo := ratings.NewRepository(cols.Ratings)
	ratingsService := ratings.NewService(ratingsRepo, cfg.Timezone)
	ratingsHandler := ratings.NewHandler(ratingsService, val, logger)

	bannersRepo := banners.NewRepository(cols.Banners)
	bannersService := banners.NewService(bannersRepo, uploaderOrNil(uploader), cfg.Timezone)
	bannersHandler := banners.NewHandler(bannersService, val, logger, cacheStore, cacheTTL)

	contactsRepo := contacts.NewRepository(cols.Contacts)
	contactsService := contacts.NewService(contactsRepo, cfg.Timezone)
	contactsHandler := contacts.NewHandler(contactsService, val, logger)

	ordersRepo := orders.NewRepository(cols.OrderRequests)
	ordersService := orders.NewService(ordersRepo, cfg.Timezone)
	ordersHandler := orders.NewHandler(ordersService, val, logger)

	statsRepo := stats.NewRepository(cols.Stats)
	statsService := stats.NewService(statsRepo, cfg.Timezone)
	statsHandler := stats.NewHandler(statsService, val, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	window := time.Duration(cfg.RateLimitWindowSec) * time.Second
	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, window)
	orderLimiter := middleware.NewRateLimiter(cfg.RateLimitOrders, window)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/customers", func(rt chi.Router) {
			rt.Get("/", customersHandler.List)
			rt.Post("/", customersHandler.Create)
			rt.Get("/{id}", customersHandler.Get)
			rt.Put("/{id}", customersHandler.Update)
			rt.Delete("/{id}", customersHandler.Delete)
		})

		api.Route("/categories", func(rt chi.Router) {
			rt.Get("/", categoriesHandler.List)
			rt.Post("/", categoriesHandler.Create)
			rt.Get("/{id}", categoriesHandler.Get)
			rt.Put("/{id}", categoriesHandler.Update)
			rt.Delete("/{id}", categoriesHandler.Delete)
		})

		api.Route("/products", func(rt chi.Router) {
			rt.Get("/", productsHandler.List)
			rt.Get("/search", productsHandler.Search)
			rt.Post("/", productsHandler.Create)
			rt.Get("/{id}", productsHandler.Get)
			rt.Put("/{id}", productsHandler.Update)
			rt.Delete("/{id}", productsHandler.Delete)
		})

		api.Route("/service-categories", func(rt chi.Router) {
			rt.Get("/", serviceCategoriesHandler.List)
			rt.Post("/", serviceCategoriesHandler.Create)
			rt.Get("/slug/{slug}", serviceCategoriesHandler.GetBySlug)
			rt.Get("/{id}", serviceCategoriesHandler.Get)
			rt.Put("/{id}", serviceCategoriesHandler.Update)
			rt.Delete("/{id}", serviceCategoriesHandler.Delete)
		})

		api.Route("/services", func(rt chi.Router) {
			rt.Get("/", servicesHandler.List)
			rt.Get("/search", servicesHandler.Search)
			rt.Post("/", servicesHandler.Create)
			rt.Get("/{id}", servicesHandler.Get)
			rt.Put("/{id}", servicesHandler.Update)
			rt.Delete("/{id}", servicesHandler.Delete)
		})

		api.Route("/discounts", func(rt chi.Router) {
			rt.Get("/", discountsHandler.List)
			rt.Post("/", discountsHandler.Create)
			rt.Get("/{productId}", discountsHandler.GetByProduct)
			rt.Put("/{productId}", discountsHandler.UpdateByProduct)
			rt.Delete("/{productId}", discountsHandler.DeleteByProduct)
		})

		api.Route("/ratings", func(rt chi.Router) {
			rt.Post("/", ratingsHandler.Create)
			rt.Get("/product/{productId}", ratingsHandler.ListByProduct)
			rt.Get("/service/{id}", ratingsHandler.ListByService)
			rt.Delete("/{id}", ratingsHandler.Delete)
		})

		api.Route("/banners", func(rt chi.Router) {
			rt.Get("/", bannersHandler.List)
			rt.Post("/", bannersHandler.Create)
			rt.Get("/{id}", bannersHandler.Get)
			rt.Put("/{id}", bannersHandler.Update)
			rt.Delete("/{id}", bannersHandler.Delete)
		})

		api.Route("/contacts", func(rt chi.Router) {
			rt.Get("/", contactsHandler.Get)
			rt.With(contactLimiter.Middleware).Post("/", contactsHandler.Create)
			rt.Put("/{id}", contactsHandler.Update)
			rt.Delete("/{id}", contactsHandler.Delete)
		})

		api.Route("/orders", func(rt chi.Router) {
			rt.Get("/", ordersHandler.List)
			rt.With(orderLimiter.Middleware).Post("/", ordersHandler.Create)
			rt.Get("/{id}", ordersHandler.Get)
			rt.Put("/{id}", ordersHandler.Update)
			rt.Delete("/{id}", ordersHandler.Delete)
		})

		api.Route("/stats", func(rt chi.Router) {
			rt.Get("/", statsHandler.Get)
			rt.Put("/", statsHandler.Update)
			rt.Post("/visit", statsHandler.RecordVisit)
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

// uploaderOrNil avoids storing a typed nil *uploads.Client inside the
// Uploader interface, which would defeat the services' nil checks.
func uploaderOrNil(c *uploads.Client) uploads.Uploader {
	if c == nil {
		return nil
	}
	return c
}
