package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aifriendzone/voice-backend/internal/api/handlers"
	"github.com/aifriendzone/voice-backend/internal/api/middleware"
	"github.com/aifriendzone/voice-backend/internal/config"
	"github.com/aifriendzone/voice-backend/internal/murf"
	"github.com/aifriendzone/voice-backend/internal/speech"
	"github.com/aifriendzone/voice-backend/internal/translate"
	"github.com/aifriendzone/voice-backend/internal/voices"
)

type Router struct {
	mux     *chi.Mux
	cfg     *config.Config
	catalog *voices.Catalog
	svc     *speech.Service
}

func NewRouter(cfg *config.Config) (*Router, error) {
	catalog := voices.NewCatalog()
	client := murf.NewClient(murf.Config{APIKey: cfg.Murf.APIKey, BaseURL: cfg.Murf.BaseURL})

	translator, err := translate.New(cfg.Translate, client)
	if err != nil {
		return nil, err
	}

	return &Router{
		mux:     chi.NewRouter(),
		cfg:     cfg,
		catalog: catalog,
		svc:     speech.NewService(catalog, translator, client),
	}, nil
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	rl := middleware.NewRateLimiter(100, 200)
	r.Use(rl.Limit)

	health := handlers.NewHealthHandler()
	r.Get("/", health.Home)
	r.Get("/healthz", health.Healthz)

	voicesH := handlers.NewVoicesHandler(rt.catalog)
	generateH := handlers.NewGenerateHandler(rt.svc)
	downloadH := handlers.NewDownloadHandler(time.Duration(rt.cfg.Download.TimeoutSeconds) * time.Second)
	qrH := handlers.NewQRHandler()

	r.Route("/api", func(r chi.Router) {
		r.Get("/voices", voicesH.List)
		r.Post("/generate", generateH.Generate)
		r.Post("/download", downloadH.Download)
		r.Post("/qr", qrH.Encode)
	})

	return r
}
