package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stendrelay/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()
	c.io.Printf("Server: %s\n", c.api.BaseURL())

	instance, err := c.api.Instance(ctx)
	if err != nil {
		c.io.Printf("Server unreachable: %v\n", err)
	} else {
		c.io.Printf("API version: %s\n", instance.APIVersion)
	}

	session, err := c.store.GetSession(ctx, c.api.BaseURL())
	if err != nil {
		if !errors.Is(err, storage.ErrSessionNotFound) {
			return fmt.Errorf("failed to get session: %w", err)
		}
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'stendrelay login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Token saved: %s\n", time.Unix(session.SavedAt, 0).Format(time.RFC3339))
	return nil
}
