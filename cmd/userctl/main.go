// Command userctl is a small CLI over the identity service. One invocation
// is one session: gated commands log in first and act with that identity.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"user-admin/internal/client"
)

const defaultServer = "http://localhost:8080"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: userctl <register|login|list|update|delete> [flags]")
	}

	ctx := context.Background()
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "register":
		fs := flag.NewFlagSet("register", flag.ContinueOnError)
		server := fs.String("server", defaultServer, "service base URL")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		admin := fs.Bool("admin", false, "create as admin")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		c := client.New(*server)
		ident, err := c.Register(ctx, *email, *password, *admin)
		if err != nil {
			return err
		}
		fmt.Printf("registered %s (id=%s admin=%v); log in to act\n", ident.Email, ident.ID, ident.IsAdmin)
		return nil

	case "login":
		fs := flag.NewFlagSet("login", flag.ContinueOnError)
		server := fs.String("server", defaultServer, "service base URL")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		c := client.New(*server)
		ident, err := c.Login(ctx, *email, *password)
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (id=%s admin=%v)\n", ident.Email, ident.ID, ident.IsAdmin)
		return nil

	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		server := fs.String("server", defaultServer, "service base URL")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		c := client.New(*server)
		users, count, err := c.ListUsers(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			role := "user"
			if u.IsAdmin {
				role = "admin"
			}
			fmt.Printf("%s\t%s\t%s\n", u.ID, u.Email, role)
		}
		fmt.Printf("%d users\n", count)
		return nil

	case "update":
		fs := flag.NewFlagSet("update", flag.ContinueOnError)
		server := fs.String("server", defaultServer, "service base URL")
		asEmail := fs.String("as-email", "", "email of the acting account")
		asPassword := fs.String("as-password", "", "password of the acting account")
		id := fs.String("id", "", "target user ID")
		email := fs.String("email", "", "new email (optional)")
		password := fs.String("password", "", "new password (optional)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		c := client.New(*server)
		if _, err := c.Login(ctx, *asEmail, *asPassword); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		user, err := c.UpdateUser(ctx, *id, *email, *password)
		if err != nil {
			return err
		}
		fmt.Printf("updated %s (%s)\n", user.ID, user.Email)
		return nil

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ContinueOnError)
		server := fs.String("server", defaultServer, "service base URL")
		asEmail := fs.String("as-email", "", "email of the acting account")
		asPassword := fs.String("as-password", "", "password of the acting account")
		id := fs.String("id", "", "target user ID")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		c := client.New(*server)
		if _, err := c.Login(ctx, *asEmail, *asPassword); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		deleted, err := c.DeleteUser(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("deleted %s (%s)\n", deleted.ID, deleted.Email)
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}
