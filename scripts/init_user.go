package main

import (
	"fmt"
	"log"
	"os"

	"github.com/petitspas/backend/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := db.Init(os.Getenv("DATABASE_PATH")); err != nil {
		log.Fatal("failed to initialize database: ", err)
	}

	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("an admin account already exists, nothing to do")
		return
	}

	email := os.Getenv("SUPER_ADMIN_EMAIL")
	if email == "" {
		email = "admin@lespetitspas.org"
	}
	password := os.Getenv("SUPER_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}

	if err := db.DB.Create(&db.User{Email: email, Password: string(hashed)}).Error; err != nil {
		log.Fatal("failed to create admin account: ", err)
	}

	fmt.Println("admin account created")
	fmt.Println("email:", email)
}
