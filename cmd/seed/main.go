package main

import (
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tripbill-be-svc/internal/config"
	"tripbill-be-svc/internal/database"
	"tripbill-be-svc/internal/models"
)

// Seeds a demo tenant with an admin user, one trip-model vendor and a
// month of random trips. Intended for local development only.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	tenant := &models.Tenant{Name: "AcmeCorp"}
	if err := db.DB.Create(tenant).Error; err != nil {
		log.Fatalf("Failed to create tenant: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	admin := &models.User{
		TenantID:       tenant.ID,
		Email:          "admin@acme.com",
		HashedPassword: string(hash),
		IsAdmin:        true,
		Role:           "admin",
	}
	if err := db.DB.Create(admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	vendor := &models.Vendor{
		TenantID:     tenant.ID,
		Name:         "Vendor A",
		BillingModel: "trip",
		BillingConfig: models.RateConfig{
			"per_km":        2.0,
			"per_hour":      10.0,
			"extra_km_rate": 3.0,
		},
	}
	if err := db.DB.Create(vendor).Error; err != nil {
		log.Fatalf("Failed to create vendor: %v", err)
	}

	now := time.Now().UTC()
	trips := make([]*models.Trip, 0, 50)
	for i := 0; i < 50; i++ {
		trips = append(trips, &models.Trip{
			TenantID:        tenant.ID,
			VendorID:        vendor.ID,
			EmployeeID:      admin.ID,
			DistanceKM:      5 + rand.Float64()*15,
			DurationMinutes: 10 + rand.Intn(51),
			Date:            now.AddDate(0, 0, -rand.Intn(31)),
			ExtraKM:         float64(rand.Intn(3)),
			ExtraHours:      float64(rand.Intn(2)),
			Payload:         models.JSONMap{},
		})
	}
	if err := db.DB.Create(&trips).Error; err != nil {
		log.Fatalf("Failed to create trips: %v", err)
	}

	log.Printf("Seeded tenant %d with vendor %d and %d trips", tenant.ID, vendor.ID, len(trips))
}
