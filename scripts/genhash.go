package main

import (
	"fmt"
	"os"

	"go-jobboard-backend/pkg/auth"
)

// Prints bcrypt hashes for seeding users by hand:
//
//	go run ./scripts/genhash.go <password> [password...]
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [password...]")
		os.Exit(2)
	}

	for _, pass := range os.Args[1:] {
		if len(pass) < auth.MinPasswordLength {
			fmt.Fprintf(os.Stderr, "Skipping %q: shorter than %d characters\n", pass, auth.MinPasswordLength)
			continue
		}
		hash, err := auth.HashPassword(pass)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, hash)
	}
}
