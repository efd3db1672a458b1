package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/archive"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/auth"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/dashboard"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/db"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/export"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/mailer"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/middleware"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/pdf"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/submission"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/wizard"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"SMTP_HOST",
		"SMTP_PORT",
		"SMTP_USERNAME",
		"SMTP_PASSWORD",
		"MAIL_FROM",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── CATALOG ─────────────────────────
	menu, err := catalog.NewPostgresSource(pgDB).Load(context.Background())
	if err != nil {
		// The wizard must not start without a menu.
		log.Fatal("❌ Catalog load failed:", err)
	}
	log.Printf("✅ Menu catalog loaded (%d categories)", len(menu))

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── ARCHIVE (optional) ─────────────────────────
	var pdfArchive export.Archive
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := archive.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		pdfArchive = r2Client
		log.Println("✅ Quote archive enabled")
	} else {
		log.Println("Quote archive disabled (R2_ENDPOINT not set)")
	}

	// ───────────────────────── MAIL ─────────────────────────
	smtpMailer, err := mailer.NewSMTPMailerFromEnv()
	if err != nil {
		log.Fatal("❌ SMTP init failed:", err)
	}
	notifier := mailer.NewNotifier(smtpMailer, catererRecipients())

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── WIZARD ─────────────────────────
	submissionRepo := submission.NewPostgresRepository(pgDB)
	renderer := pdf.NewRenderer()
	coordinator := export.NewCoordinator(renderer, pdfArchive, submissionRepo, notifier, pdf.FileName)

	sessionStore := wizard.NewStore()
	wizardHandler := wizard.NewHandler(sessionStore, menu, coordinator, pdf.FileName)

	sessions := r.Group("/sessions")
	{
		sessions.POST("", wizardHandler.CreateSession())
		sessions.GET("/:id", wizardHandler.GetSession())
		sessions.POST("/:id/details", wizardHandler.SubmitDetails())
		sessions.POST("/:id/items/toggle", wizardHandler.ToggleItem())
		sessions.POST("/:id/next", wizardHandler.Next())
		sessions.POST("/:id/back", wizardHandler.Back())
		sessions.POST("/:id/restart", wizardHandler.Restart())
		sessions.GET("/:id/review", wizardHandler.Review())
		sessions.POST("/:id/export", wizardHandler.Export())
		sessions.GET("/:id/quote.pdf", wizardHandler.DownloadPDF())
	}

	// ───────────────────────── DASHBOARD ─────────────────────────
	dashboardService := dashboard.NewService(submissionRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	dash := r.Group("/dashboard")
	dash.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleCaterer),
	)
	{
		dash.GET("/submissions", dashboardHandler.ListSubmissions())
		dash.GET("/stats", dashboardHandler.GetStats())
		dash.PATCH("/submissions/:id/reviewed", dashboardHandler.SetReviewed())
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server running on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// catererRecipients reads the comma-separated CATERER_EMAILS override;
// empty means the built-in defaults.
func catererRecipients() []string {
	raw := os.Getenv("CATERER_EMAILS")
	if raw == "" {
		return nil
	}

	var out []string
	for _, addr := range strings.Split(raw, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
