package main

import (
	"flag"

	"go-salestrack/internal/repository"
	"go-salestrack/internal/service"
	"go-salestrack/pkg/database"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Bootstraps the single admin account from the command line. The API also
// exposes /api/auth/register-admin, but a CLI path is handy for deployments
// where that route is blocked at the proxy.
func main() {
	firstName := flag.String("first-name", "Admin", "admin first name")
	lastName := flag.String("last-name", "User", "admin last name")
	email := flag.String("email", "", "admin email (required)")
	phone := flag.String("phone", "", "admin phone (required)")
	password := flag.String("password", "", "admin password (required, min 6 chars)")
	flag.Parse()

	if *email == "" || *phone == "" || *password == "" {
		logrus.Fatal("email, phone, and password are required")
	}
	if len(*password) < 6 {
		logrus.Fatal("Password must be at least 6 characters")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Create the admin through the same service the API uses
	adminService := service.NewAdminService(repository.NewAccountRepo(db))
	admin, err := adminService.RegisterAdmin(&service.RegisterAdminRequest{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Phone:     *phone,
		Password:  *password,
	})
	if err != nil {
		logrus.Fatalf("Failed to create admin: %v", err)
	}

	logrus.Infof("Admin created: %s (%s)", admin.Email, admin.ID)
}
