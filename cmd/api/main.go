package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sellerdesk/internal/config"
	"sellerdesk/internal/database"
	"sellerdesk/internal/domain/audit"
	"sellerdesk/internal/domain/auth"
	"sellerdesk/internal/domain/document"
	"sellerdesk/internal/domain/invoice"
	"sellerdesk/internal/domain/lifecycle"
	"sellerdesk/internal/domain/note"
	"sellerdesk/internal/domain/payment"
	"sellerdesk/internal/domain/proposal"
	"sellerdesk/internal/domain/seller"
	"sellerdesk/internal/domain/uploadlink"
	"sellerdesk/internal/middleware"
	jwtsvc "sellerdesk/internal/pkg/jwt"
	"sellerdesk/internal/pkg/pdf"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&auth.Operator{},
		&seller.Seller{},
		&document.Document{},
		&uploadlink.UploadLink{},
		&payment.Payment{},
		&invoice.Invoice{},
		&note.InternalNote{},
		&proposal.Proposal{},
		&lifecycle.Entry{},
		&audit.Entry{},
	); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	operatorRepo := auth.NewRepository(db)
	sellerRepo := seller.NewRepository(db)
	documentRepo := document.NewRepository(db)
	linkRepo := uploadlink.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	invoiceRepo := invoice.NewRepository(db)
	noteRepo := note.NewRepository(db)
	proposalRepo := proposal.NewRepository(db)
	lifecycleRepo := lifecycle.NewRepository(db)
	auditRepo := audit.NewRepository(db)

	auditService := audit.NewService(auditRepo)

	authService := auth.NewService(operatorRepo, j)
	sellerService := seller.NewService(sellerRepo, auditService)
	documentService := document.NewService(documentRepo, sellerRepo)
	linkService := uploadlink.NewService(linkRepo, sellerRepo, auditService, cfg.UploadLinkTTL)
	paymentService := payment.NewService(paymentRepo, sellerRepo, auditService)
	invoiceService := invoice.NewService(invoiceRepo, paymentRepo, sellerRepo, auditService, pdf.CompanyData{
		Name:    "SellerDesk B.V.",
		Address: "Keizersgracht 123",
		City:    "1015 CJ Amsterdam",
		Email:   "billing@sellerdesk.example",
		Phone:   "+31 20 123 4567",
	})
	noteService := note.NewService(noteRepo, sellerRepo)
	proposalService := proposal.NewService(proposalRepo, sellerRepo)
	lifecycleService := lifecycle.NewService(lifecycleRepo, sellerRepo)

	authHandler := auth.NewHandler(authService)
	sellerHandler := seller.NewHandler(sellerService)
	documentHandler := document.NewHandler(documentService)
	linkHandler := uploadlink.NewHandler(linkService)
	paymentHandler := payment.NewHandler(paymentService)
	invoiceHandler := invoice.NewHandler(invoiceService)
	noteHandler := note.NewHandler(noteService)
	proposalHandler := proposal.NewHandler(proposalService)
	lifecycleHandler := lifecycle.NewHandler(lifecycleService)
	auditHandler := audit.NewHandler(auditService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		uploadlink.RegisterPublicRoutes(v1, linkHandler)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			seller.RegisterRoutes(protected, sellerHandler)
			document.RegisterRoutes(protected, documentHandler)
			uploadlink.RegisterProtectedRoutes(protected, linkHandler)
			paymentHandler.RegisterRoutes(protected)
			invoiceHandler.RegisterRoutes(protected)
			noteHandler.RegisterRoutes(protected)
			proposalHandler.RegisterRoutes(protected)
			lifecycleHandler.RegisterRoutes(protected)
			auditHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
