// Command client is a command-line front end for the vault API.
//
//	client -address localhost:5000 -email a@x.com -password secret list
//	client ... add <website> <username> <password> [notes]
//	client ... update <id> <website> <username> <password> [notes]
//	client ... delete <id>
//	client ... -name Alice signup
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var errUsage = errors.New("usage: client [flags] signup|list|add|update|delete [args]")

func main() {
	fs := flag.NewFlagSet("client", flag.ExitOnError)
	address := fs.String("address", "localhost:5000", "vault server address")
	name := fs.String("name", "", "display name (signup only)")
	email := fs.String("email", os.Getenv("VAULT_EMAIL"), "account email")
	password := fs.String("password", os.Getenv("VAULT_PASSWORD"), "account password")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLogger("go-pass-vault-client")
	if err := logger.SetLevel("warn"); err != nil {
		log.Fatal().Err(err).Send()
	}

	client, err := adapter.NewVaultClient(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create vault client")
	}

	ctx := context.Background()
	result, err := run(ctx, client, fs.Args(), *name, *email, *password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
}

func run(ctx context.Context, client *adapter.VaultClient, args []string, name, email, password string) (any, error) {
	if len(args) == 0 {
		return nil, errUsage
	}

	command, args := args[0], args[1:]
	if command == "signup" {
		return client.Signup(ctx, name, email, password)
	}

	if _, err := client.Login(ctx, email, password); err != nil {
		return nil, err
	}

	switch command {
	case "list":
		return client.List(ctx)
	case "add":
		input, err := credentialInput(args)
		if err != nil {
			return nil, err
		}
		return client.Create(ctx, input)
	case "update":
		if len(args) < 1 {
			return nil, errUsage
		}
		input, err := credentialInput(args[1:])
		if err != nil {
			return nil, err
		}
		return client.Update(ctx, args[0], input)
	case "delete":
		if len(args) != 1 {
			return nil, errUsage
		}
		if err := client.Delete(ctx, args[0]); err != nil {
			return nil, err
		}
		return models.MessageResponse{Message: "deleted " + args[0]}, nil
	default:
		return nil, errUsage
	}
}

func credentialInput(args []string) (models.CredentialInput, error) {
	if len(args) < 3 || len(args) > 4 {
		return models.CredentialInput{}, errUsage
	}

	input := models.CredentialInput{Website: args[0], Username: args[1], Password: args[2]}
	if len(args) == 4 {
		input.Notes = args[3]
	}
	return input, nil
}
