package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

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
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
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
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (child tables first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM audit_entries")
	db.Exec("DELETE FROM lifecycle_entries")
	db.Exec("DELETE FROM proposals")
	db.Exec("DELETE FROM internal_notes")
	db.Exec("DELETE FROM invoices")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM documents")
	db.Exec("DELETE FROM upload_links")
	db.Exec("DELETE FROM sellers")
	db.Exec("DELETE FROM operators")

	// ================== OPERATORS ==================
	log.Println("Creating operators...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := auth.Operator{
		Email:        "admin@sellerdesk.example",
		PasswordHash: string(adminHash),
		Name:         "Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@sellerdesk.example / admin123")

	operatorEmails := []string{"marta@sellerdesk.example", "jeroen@sellerdesk.example"}
	for i, email := range operatorEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("operator123"), bcrypt.DefaultCost)
		db.Create(&auth.Operator{
			Email:        email,
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Operator %d", i+1),
		})
	}

	// ================== SELLERS ==================
	log.Println("Creating sellers...")

	sellers := []seller.Seller{
		{
			ID:             uuid.NewString(),
			BusinessName:   "Acme Trading BV",
			ContactName:    "Jan de Vries",
			Email:          "jan@acmetrading.example",
			Phone:          "+31 6 1234 5678",
			Address:        "Herengracht 45, Amsterdam",
			AccountManager: "Marta",
			ServiceNote:    "Full-service account since 2024",
		},
		{
			ID:             uuid.NewString(),
			BusinessName:   "Nordwind Imports",
			ContactName:    "Sofie Jansen",
			Email:          "sofie@nordwind.example",
			Phone:          "+31 6 8765 4321",
			Address:        "Westersingel 12, Rotterdam",
			AccountManager: "Jeroen",
		},
		{
			ID:           uuid.NewString(),
			BusinessName: "Bloemen & Zo",
			ContactName:  "Pieter Bakker",
			Email:        "pieter@bloemenzo.example",
		},
	}
	for i := range sellers {
		db.Create(&sellers[i])
	}

	// ================== PAYMENTS ==================
	log.Println("Creating payments...")

	for i, s := range sellers {
		for j := 0; j < 2; j++ {
			db.Create(&payment.Payment{
				ID:          uuid.NewString(),
				SellerID:    s.ID,
				Amount:      250 + float64(i*100+j*50),
				PaymentDate: time.Now().AddDate(0, 0, -(i*7 + j*3)),
				Reference:   fmt.Sprintf("SEED-%d-%d", i+1, j+1),
			})
		}
	}

	// ================== LIFECYCLE ==================
	log.Println("Creating lifecycle history...")

	stages := []lifecycle.Entry{
		{ID: uuid.NewString(), SellerID: sellers[0].ID, Marketplace: "bol.com", Stage: "onboarding"},
		{ID: uuid.NewString(), SellerID: sellers[0].ID, Marketplace: "bol.com", Stage: "live"},
		{ID: uuid.NewString(), SellerID: sellers[1].ID, Marketplace: "amazon.nl", Stage: "onboarding"},
	}
	for i := range stages {
		db.Create(&stages[i])
	}

	log.Println("Seed completed.")
	log.Println("Test accounts:")
	log.Println("Admin: admin@sellerdesk.example / admin123")
	log.Println("Operators: marta@sellerdesk.example, jeroen@sellerdesk.example / operator123")
}
