package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/analysis"
	"resume-matcher/internal/chat"
	"resume-matcher/internal/llm"
	"resume-matcher/internal/llm/gemini"
	"resume-matcher/internal/session"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
	"resume-matcher/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.FrontendOrigins),
	)

	codec, err := session.NewCodec(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	cookieSettings := session.CookieSettings{
		Secure:   cfg.CookieSecure,
		SameSite: cfg.CookieSameSite,
	}

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn.Close()
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var analysisRepo analysis.Repo
	if sqlDB != nil {
		analysisRepo = &analysis.PGRepo{DB: sqlDB}
	} else {
		analysisRepo = analysis.NewMemoryRepo()
	}

	var llmClient llm.Client = llm.PlaceholderClient{}
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout)
		if err != nil {
			log.Printf("failed to init gemini client, analysis disabled: %v", err)
		} else {
			llmClient = client
		}
	}

	analysisSvc := analysis.NewService(analysisRepo, llmClient)
	analysisHandler := analysis.NewHandler(analysisSvc)
	chatSvc := chat.NewService(analysisRepo, llmClient)
	chatHandler := chat.NewHandler(chatSvc)

	public := r.Group("/")
	public.GET("/", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"message": "AI Resume Matcher API",
			"version": "1.0.0",
		})
	})
	public.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		if sqlDB == nil {
			dbStatus = "memory"
		}
		aiStatus := "ready"
		if _, ok := llmClient.(llm.PlaceholderClient); ok {
			aiStatus = "not configured"
		}
		respond.JSON(c, http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"services": gin.H{
				"database":    dbStatus,
				"ai_analyzer": aiStatus,
			},
		})
	})

	protected := r.Group("/")
	protected.Use(middleware.Auth(codec))

	registerAuthRoutes(public, protected, codec, cookieSettings)
	analysisHandler.RegisterRoutes(protected)
	chatHandler.RegisterRoutes(protected)

	return r, nil
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
