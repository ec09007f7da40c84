package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ordersadmin.com/app/internal/config"
	"ordersadmin.com/app/internal/session"
)

// devsession mints a session for local development and prints the cookie to set.
func main() {
	userID := flag.String("user", "dev-admin-1", "User ID")
	email := flag.String("email", "admin@example.com", "Email")
	role := flag.String("role", session.RoleAdmin, "Role")
	token := flag.String("token", "", "Bearer token forwarded to the order service")
	ttl := flag.Duration("ttl", 24*time.Hour, "Session lifetime (db store)")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch cfg.SessionStore {
	case config.SessionStoreDB:
		db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		if err := db.AutoMigrate(&session.Row{}); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating sessions table: %v\n", err)
			os.Exit(1)
		}

		row := session.Row{ID: uuid.NewString(), UserID: *userID, ExpiresAt: time.Now().Add(*ttl)}
		if err := db.Create(&row).Error; err != nil {
			fmt.Fprintf(os.Stderr, "Error inserting session: %v\n", err)
			os.Exit(1)
		}
		store := session.NewDBStore(db, cfg.SessionCookie)
		fmt.Printf("%s=%s\n", store.CookieName, row.ID)
		fmt.Println("The users table must hold a row for", *userID, "with role", *role)

	default:
		store := session.NewCookieStore([]byte(cfg.SessionSecret), cfg.SessionCookie)
		v, err := store.Encode(session.Session{UserID: *userID, Email: *email, Role: *role, Token: *token})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding session: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s=%s\n", store.CookieName, v)
	}
}
