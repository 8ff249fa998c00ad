package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/guttosm/mapsim/internal/middleware"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

type keyOptions struct {
	subject string
	issuer  string
	ttl     time.Duration
}

func newKeysCmd() *cobra.Command {
	var opts keyOptions

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Generate credentials for the HTTP service",
		Long: "keys prints a JWT secret, an API key with its bcrypt hash and a bearer token " +
			"signed with the new secret, ready to paste into the service environment.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateKeys(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.subject, "subject", "operator", "Subject of the sample bearer token")
	cmd.Flags().StringVar(&opts.issuer, "issuer", "mapsim", "Issuer of the sample bearer token (JWT_ISSUER)")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 24*time.Hour, "Lifetime of the sample bearer token")
	return cmd
}

func generateSecureKey(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func generateKeys(cmd *cobra.Command, opts keyOptions) error {
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		return fmt.Errorf("generate jwt secret: %w", err)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		return fmt.Errorf("generate api key: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash api key: %w", err)
	}

	token, err := middleware.IssueToken(jwtSecret, opts.issuer, opts.subject, opts.ttl)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "# Service environment")
	fmt.Fprintln(w, "AUTH_ENABLED=true")
	fmt.Fprintf(w, "JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Fprintf(w, "JWT_ISSUER=%s\n", opts.issuer)
	fmt.Fprintf(w, "API_KEY_HASHES=%s\n", hash)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Client credentials (keep out of version control)")
	fmt.Fprintf(w, "X-API-Key: %s\n", apiKey)
	fmt.Fprintf(w, "Authorization: Bearer %s\n", token)
	return nil
}
