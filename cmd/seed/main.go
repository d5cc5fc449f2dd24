package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rfqdesk/internal/config"
	"rfqdesk/internal/db"
	"rfqdesk/internal/model"
)

const seedPassword = "changeme123"

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.RFQ{}, &model.Activity{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	users := []model.User{
		{FirstName: "Alice", LastName: "Morgan", Email: "alice@rfqdesk.local", PhoneNo: "5550000001", Role: model.RoleAdmin},
		{FirstName: "Evan", LastName: "Brooks", Email: "evan@rfqdesk.local", PhoneNo: "5550000002", Role: model.RoleEmployee},
		{FirstName: "Nora", LastName: "Feld", Email: "nora@rfqdesk.local", PhoneNo: "5550000003", Role: model.RoleEmployee},
		{FirstName: "Jane", LastName: "Carter", Email: "jane@acme.com", PhoneNo: "5551234567", Role: model.RoleClient},
	}

	created := 0
	for i := range users {
		users[i].PasswordHash = string(hash)
		err := gormDB.Where("email = ?", users[i].Email).First(&model.User{}).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", users[i].Email, err)
		}
		if err := gormDB.Create(&users[i]).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", users[i].Email, err)
		}
		created++
	}
	log.Printf("Seeded %d users (password %q)", created, seedPassword)

	budget := decimal.NewFromInt(12000)
	rfqs := []model.RFQ{
		{
			CompanyName:        "Acme Fabrication",
			Name:               "Jane Carter",
			Email:              "jane@acme.com",
			PhoneNumber:        "5551234567",
			ServiceRequired:    "Welding",
			ProjectDescription: "Custom bracket run for a conveyor retrofit",
			EstimatedBudget:    &budget,
			Deadline:           time.Now().AddDate(0, 1, 0),
		},
		{
			CompanyName:        "Northwind Mills",
			Name:               "Sam Ode",
			Email:              "sam@northwind.example",
			PhoneNumber:        "5559876543",
			ServiceRequired:    "CNC machining",
			ProjectDescription: "Prototype housings, aluminum, batch of 50",
			Deadline:           time.Now().AddDate(0, 2, 0),
		},
	}

	seeded := 0
	for i := range rfqs {
		var count int64
		if err := gormDB.Model(&model.RFQ{}).
			Where("email = ? AND company_name = ?", rfqs[i].Email, rfqs[i].CompanyName).
			Count(&count).Error; err != nil {
			log.Fatalf("Failed to check RFQ for %s: %v", rfqs[i].CompanyName, err)
		}
		if count > 0 {
			continue
		}
		if err := gormDB.Create(&rfqs[i]).Error; err != nil {
			log.Fatalf("Failed to create RFQ for %s: %v", rfqs[i].CompanyName, err)
		}
		seeded++
	}
	log.Printf("Seeded %d RFQs", seeded)

	log.Println("Seed completed")
}
