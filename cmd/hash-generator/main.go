// Command hash-generator prints password digests in the format the users
// collection stores, for seeding accounts by hand.
//
// Usage:
//
//	hash-generator [-cost N] password...
//
// With no arguments, passwords are read one per line from standard input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/web420/restapi/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if err := run(os.Stdout, os.Stdin, *cost, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, in io.Reader, cost int, passwords []string) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	hasher := auth.NewBcryptVerifier(cost)

	if len(passwords) == 0 {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				passwords = append(passwords, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read passwords: %w", err)
		}
	}

	for i, password := range passwords {
		digest, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("password %d: %w", i+1, err)
		}
		fmt.Fprintln(out, digest)
	}
	return nil
}
