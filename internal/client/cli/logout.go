package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/stendrelay/internal/client/storage"
)

// runLogout забывает токен только локально: сервер сессии не отслеживает
func (c *Cli) runLogout(ctx context.Context) error {
	server := c.api.BaseURL()

	if _, err := c.store.GetSession(ctx, server); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Printf("No session stored for %s.\n", server)
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	if err := c.store.DeleteSession(ctx, server); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Printf("✓ Logged out from %s.\n", server)
	c.io.Println("Run 'stendrelay reset' before logging out if the token may have leaked.")
	return nil
}
