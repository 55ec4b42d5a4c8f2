// Command seed loads a demo account and a handful of placement records so a
// fresh database has something to show on the dashboard.
package main

import (
	"context"
	"log"
	"time"

	"placementhub/internal/config"
	"placementhub/internal/database"
	"placementhub/internal/domain"
	"placementhub/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(repository.Models()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()

	users := repository.NewUserRepository(db)
	students := repository.NewStudentRepository(db)
	internships := repository.NewInternshipRepository(db)
	companies := repository.NewCompanyRepository(db)

	exists, err := users.ExistsByEmail(ctx, "admin@placementhub.dev")
	if err != nil {
		log.Fatalf("Failed to check for existing admin: %v", err)
	}
	if exists {
		log.Println("Seed data already present, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	admin := &domain.User{
		Name:         "Placement Admin",
		Email:        "admin@placementhub.dev",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	cgpa := func(v float64) *float64 { return &v }
	demoStudents := []*domain.Student{
		{Name: "Aruzhan Bekova", Email: "aruzhan@example.com", Department: "Computer Science", CGPA: cgpa(8.7), PlacementStatus: domain.StatusPlaced},
		{Name: "Daniyar Seitov", Email: "daniyar@example.com", Department: "Computer Science", CGPA: cgpa(7.1), PlacementStatus: domain.StatusNotPlaced},
		{Name: "Madina Orazbay", Email: "madina@example.com", Department: "Electronics", CGPA: cgpa(9.2), PlacementStatus: domain.StatusPlaced},
		{Name: "Timur Akhmetov", Email: "timur@example.com", Department: "Mechanical", PlacementStatus: domain.StatusNotPlaced},
	}
	for _, s := range demoStudents {
		if err := students.Create(ctx, s); err != nil {
			log.Fatalf("Failed to seed student %s: %v", s.Email, err)
		}
	}

	demoInternships := []*domain.Internship{
		{Name: "Aruzhan Bekova", Company: "Halyk Digital", Position: "Backend Intern", Duration: "3 months", Stipend: "150000 KZT"},
		{Name: "Madina Orazbay", Company: "Kaspi Lab", Position: "Data Intern", Duration: "6 months", Stipend: "200000 KZT"},
	}
	for _, i := range demoInternships {
		if err := internships.Create(ctx, i); err != nil {
			log.Fatalf("Failed to seed internship for %s: %v", i.Name, err)
		}
	}

	demoCompanies := []*domain.Company{
		{CompanyName: "Halyk Digital", VisitDate: time.Now().AddDate(0, -1, 0), StudentsPlaced: 4, Package: "6 LPA"},
		{CompanyName: "Kaspi Lab", VisitDate: time.Now().AddDate(0, 0, -10), StudentsPlaced: 7, Package: "8 LPA"},
	}
	for _, c := range demoCompanies {
		if err := companies.Create(ctx, c); err != nil {
			log.Fatalf("Failed to seed company %s: %v", c.CompanyName, err)
		}
	}

	log.Println("Seeded admin account and demo placement records")
}
