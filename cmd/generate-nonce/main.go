// Package main provides a CLI tool to mint an assessment nonce.
// Usage: go run cmd/generate-nonce/main.go
// This is useful for development and for exercising the submit endpoint
// with curl when no frontend is running.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/brixon-tools/maltacheck_backend/internal/auth"
)

func main() {
	// Define command line flags
	envFile := flag.String("env", "", "Path to .env file (defaults to .env in current dir)")
	secret := flag.String("secret", "", "Override MALTA_NONCE_SECRET from environment")
	expiry := flag.Duration("expiry", 0, "Override MALTA_NONCE_EXPIRY from environment")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Mints an anti-forgery nonce for assessment submissions (development use).\n\n")
		fmt.Fprintf(os.Stderr, "Configuration is loaded from .env file and/or environment variables.\n\n")
		fmt.Fprintf(os.Stderr, "Required config (via .env, environment, or -secret):\n")
		fmt.Fprintf(os.Stderr, "  MALTA_NONCE_SECRET  HMAC signing secret\n")
		fmt.Fprintf(os.Stderr, "  MALTA_NONCE_EXPIRY  Nonce lifetime (default: 24h)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -secret \"dev-secret\" -expiry 1h\n", os.Args[0])
	}

	flag.Parse()

	// Load .env file
	loadEnvFile(*envFile)

	nonceSecret := *secret
	if nonceSecret == "" {
		nonceSecret = os.Getenv("MALTA_NONCE_SECRET")
	}
	if nonceSecret == "" {
		log.Fatal("Error: MALTA_NONCE_SECRET environment variable or -secret is required")
	}

	nonceExpiry := *expiry
	if nonceExpiry == 0 {
		if raw := os.Getenv("MALTA_NONCE_EXPIRY"); raw != "" {
			parsed, err := time.ParseDuration(raw)
			if err != nil {
				log.Fatalf("Error: invalid MALTA_NONCE_EXPIRY: %v", err)
			}
			nonceExpiry = parsed
		}
	}

	nonceService, err := auth.NewNonceService(auth.NonceConfig{
		Secret: nonceSecret,
		Expiry: nonceExpiry,
		Issuer: "maltacheck-backend",
	})
	if err != nil {
		log.Fatalf("Failed to initialize nonce service: %v", err)
	}

	token, expiresAt, err := nonceService.Issue()
	if err != nil {
		log.Fatalf("Failed to issue nonce: %v", err)
	}

	fmt.Println("Nonce minted successfully.")
	fmt.Println()
	fmt.Printf("  Token:   %s\n", token)
	fmt.Printf("  Expires: %s\n", expiresAt.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Example submission:")
	fmt.Printf("  curl -X POST http://localhost:8080/api/v1/assess/submit \\\n")
	fmt.Printf("    --data-urlencode 'nonce=%s' \\\n", token)
	fmt.Printf("    --data-urlencode 'data={\"answers\":{\"q001\":\"10\"}}'\n")
}

// loadEnvFile loads environment variables from a .env file
func loadEnvFile(path string) {
	if path == "" {
		cwd, _ := os.Getwd()
		if _, err := os.Stat(filepath.Join(cwd, ".env")); err == nil {
			path = ".env"
		}
	}

	if path != "" {
		if err := godotenv.Load(path); err != nil {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}
}
