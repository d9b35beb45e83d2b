package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/stendrelay/internal/client/api"
	pkgapi "github.com/iudanet/stendrelay/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	fs := c.newFlagSet("login")
	responseType := fs.String("response-type", api.ResponseTypeHTML, "How the server shows the code: plain, html or redirect")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loginURL, err := c.api.LoginURL(*responseType)
	if err != nil {
		return err
	}

	c.io.Println("=== Login ===")
	c.io.Println()
	c.io.Println("Open this address in a browser and sign in with Google:")
	c.io.Println("  " + loginURL)
	c.io.Println()

	code, err := c.io.ReadPassword("Auth code: ")
	if err != nil {
		return fmt.Errorf("failed to read auth code: %w", err)
	}
	if code == "" {
		return errors.New("auth code cannot be empty")
	}

	resp, err := c.api.CheckCode(ctx, code)
	if err != nil {
		return err
	}
	if resp.Action != pkgapi.ActionSaveToken || resp.Token == "" {
		return fmt.Errorf("unexpected server response: action %q", resp.Action)
	}
	if err := c.saveToken(ctx, resp.Token); err != nil {
		return err
	}

	c.io.Println("✓ Login successful!")
	c.io.Println("Your session has been saved.")
	return nil
}
