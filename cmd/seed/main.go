package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nigerland_backend/internal/models"
	"nigerland_backend/internal/services"
)

var books = []models.Book{
	{Title: "Nigeria's Hero Vol 1", Author: "Nigerland Consult", Description: "Inspiring stories of Nigerian heroes and nation builders", Price: 5000, Category: "Nation Building", Image: "/assets/books/building courage.jpg", PdfURL: "/assets/books/Nigeria's hero Vol 1.pdf", IsPaid: true},
	{Title: "Nigeria's Hero Vol 2", Author: "Nigerland Consult", Description: "Continuing the journey of Nigerian excellence", Price: 5000, Category: "Nation Building", Image: "/assets/books/salute to .jpg", PdfURL: "/assets/books/Nigeria's hero Vol 2 .pdf", IsPaid: true},
	{Title: "The Good Nigerian", Author: "Nigerland Consult", Description: "Stories of integrity and nation building", Price: 4500, Category: "Ethics & Values", Image: "/assets/books/the good nigerian.jpg", PdfURL: "/assets/books/the good nigerian.pdf", IsPaid: true},
	{Title: "Yomi and the Three Thieves", Author: "Nigerland Consult", Description: "A captivating children's story with moral lessons", Price: 3000, Category: "Children's Books", Image: "/assets/books/yomi.jpg", PdfURL: "/assets/books/yomi n d three thieves (4).pdf", IsPaid: true},
	{Title: "Building Courage", Author: "Nigerland Consult", Description: "Developing leadership and courage in young Nigerians", Price: 4000, Category: "Leadership", Image: "/assets/books/building courage.jpg", IsPaid: true},
}

var teamMembers = []models.TeamMember{
	{Name: "Mr. Kelechi Ngwaba", Title: "Managing Director", Credentials: "MBA, FCIT", Bio: "Visionary leader with over 20 years of experience in management consulting", Image: "/assets/team/kelechi.jpg", Order: 1},
	{Name: "Mrs. Uduak Nkanga Ngwaba", Title: "Executive Director", Credentials: "MSc, ACCA", Bio: "Expert in business development and strategic planning", Image: "/assets/team/uduak.jpg", Order: 2},
}

var projects = []models.Project{
	{Title: "Children's Foundation Initiative", Description: "Supporting underprivileged children through education and welfare programs", Status: "active"},
	{Title: "Business Development Program", Description: "Empowering SMEs with modern business strategies and tools", Status: "active"},
	{Title: "Government Advisory Services", Description: "Providing strategic advice to government institutions", Status: "active"},
}

var announcements = []models.Announcement{
	{Title: "Tax Conference 2025 Registration Open", Content: "Join us for the biggest tax conference of the year! Early bird registration now available with special discounts.", Type: "info", IsActive: true},
	{Title: "New Book Release: Building Courage", Content: "Our latest publication on leadership and courage development is now available for purchase.", Type: "success", IsActive: true},
}

var conferences = []models.Conference{
	{Title: "Tax Conference 2025", Description: "Annual tax and fiscal policy conference for professionals and public servants", Date: "2025-11-20", Location: "Abuja", Fee: 25000, ForWhom: "Accountants, tax practitioners, policy makers", IsActive: true},
}

var trainingPrograms = []models.TrainingProgram{
	{Title: "Strategic Leadership Masterclass", Category: "Leadership", Description: "Intensive leadership development for senior managers", Duration: "3 days", Fee: 150000, Objectives: `["Develop strategic thinking","Lead organisational change"]`, TargetAudience: "Senior managers and directors", IsActive: true},
	{Title: "SME Business Growth Workshop", Category: "Business", Description: "Practical tools for growing a small or medium enterprise", Duration: "2 days", Fee: 75000, Objectives: `["Build a growth plan","Improve financial discipline"]`, TargetAudience: "Business owners and founders", IsActive: true},
}

// seedIfEmpty inserts rows only when the table has none, so the
// command is safe to run more than once.
func seedIfEmpty[T any](db *gorm.DB, rows []T, label string) {
	var count int64
	var model T
	db.Model(&model).Count(&count)
	if count > 0 {
		log.Printf("%s already exist (%d found), skipping", label, count)
		return
	}
	if err := db.Create(&rows).Error; err != nil {
		log.Fatalf("Failed to seed %s: %v", label, err)
	}
	log.Printf("Inserted %d %s", len(rows), label)
}

func seedAdmin(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	var count int64
	db.Model(&models.Admin{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Printf("Admin %q already exists, skipping", username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	admin := models.Admin{
		Username: username,
		Password: string(hash),
		Email:    os.Getenv("ADMIN_EMAIL"),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("Created admin account %q", username)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	db, err := services.InitDB(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := services.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	log.Println("Starting database seeding...")

	seedAdmin(db)
	seedIfEmpty(db, books, "books")
	seedIfEmpty(db, teamMembers, "team members")
	seedIfEmpty(db, projects, "projects")
	seedIfEmpty(db, announcements, "announcements")
	seedIfEmpty(db, conferences, "conferences")
	seedIfEmpty(db, trainingPrograms, "training programs")

	log.Println("Database seeding completed")
}
