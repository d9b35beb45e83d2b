package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pkgapi "github.com/iudanet/stendrelay/pkg/api"
)

func (c *Cli) runReset(ctx context.Context) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	resp, err := c.api.Reset(ctx, token)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}
	if resp.Action != pkgapi.ActionSaveToken || resp.Token == "" {
		return fmt.Errorf("unexpected server response: action %q", resp.Action)
	}
	if err := c.saveToken(ctx, resp.Token); err != nil {
		return err
	}

	c.io.Println("✓ Session token rotated.")
	return nil
}

func (c *Cli) runDeleteAccount(ctx context.Context, args []string) error {
	fs := c.newFlagSet("delete-account")
	yes := fs.Bool("yes", false, "Do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	if !*yes {
		answer, err := c.io.ReadInput("Delete your account on " + c.api.BaseURL() + "? Type 'yes' to confirm: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !strings.EqualFold(answer, "yes") {
			return errors.New("account deletion cancelled")
		}
	}

	resp, err := c.api.DeleteAccount(ctx, token)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}
	if resp.Action == pkgapi.ActionDeleteToken {
		if err := c.store.DeleteSession(ctx, c.api.BaseURL()); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
	}

	c.io.Println("✓ Account deleted.")
	return nil
}

func (c *Cli) runMine(ctx context.Context) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	resp, err := c.api.AccountTransfers(ctx, token)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.printTransfers(resp.Transferts)
	return nil
}
