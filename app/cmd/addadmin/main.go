// Command addadmin creates an admin account from the shell, for
// bootstrapping a fresh install.
package main

import (
	"flag"
	"fmt"
	"os"

	"mvpi-scorecard/app/config"
	"mvpi-scorecard/app/database"
	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/routes/auth"
	"mvpi-scorecard/app/storage"
)

func main() {
	name := flag.String("name", "", "full name")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		fmt.Println("Usage: addadmin -name NAME -email EMAIL -password PASSWORD")
		os.Exit(1)
	}

	config.InitStorage()
	store := config.GetStore()
	if err := storage.MigrateLegacyKeys(store); err != nil {
		fmt.Printf("Error migrating storage keys: %v\n", err)
		os.Exit(1)
	}

	if _, err := database.GetUserByEmail(store, *email); err == nil {
		fmt.Printf("A user with email %s already exists\n", *email)
		os.Exit(1)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Name:     *name,
		Email:    *email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	if err := database.CreateUser(store, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin created successfully: %s (%s)\n", user.Name, user.Email)
}
