package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/iudanet/stendrelay/internal/client/storage"
	pkgapi "github.com/iudanet/stendrelay/pkg/api"
)

// location координаты из флагов -lat и -lon
type location struct {
	lat, lon       float64
	latSet, lonSet bool
}

func (l *location) register(fs *flag.FlagSet) {
	fs.Func("lat", "Latitude", func(s string) error {
		l.latSet = true
		return parseFloatFlag(s, &l.lat)
	})
	fs.Func("lon", "Longitude", func(s string) error {
		l.lonSet = true
		return parseFloatFlag(s, &l.lon)
	})
}

func (l *location) pointers() (*float64, *float64, error) {
	if l.latSet != l.lonSet {
		return nil, nil, errors.New("-lat and -lon must be given together")
	}
	if !l.latSet {
		return nil, nil, nil
	}
	lat, lon := l.lat, l.lon
	return &lat, &lon, nil
}

func (c *Cli) runSend(ctx context.Context, args []string) error {
	fs := c.newFlagSet("send")
	webURL := fs.String("url", "", "Address the file can be downloaded from (required)")
	fileName := fs.String("file", "", "File name shown to receivers")
	nickname := fs.String("nickname", "", "Sender name shown to receivers")
	apiURL := fs.String("api-url", "", "Instance URL, enables discovery by instance and IP")
	expires := fs.Int("expires", 0, "Lifetime in minutes (1-60, default 60)")
	anonymous := fs.Bool("anonymous", false, "Do not attach the account token")
	var loc location
	loc.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *webURL == "" {
		return errors.New("-url is required")
	}

	req := pkgapi.CreateTransferRequest{
		WebURL:   webURL,
		FileName: fileName,
		Nickname: optionalString(*nickname),
		APIURL:   optionalString(*apiURL),
	}
	if *expires != 0 {
		m := pkgapi.Minutes(*expires)
		req.ExpiresTime = &m
	}
	var err error
	if req.Latitude, req.Longitude, err = loc.pointers(); err != nil {
		return err
	}

	token := ""
	if !*anonymous {
		if token, err = c.optionalToken(ctx); err != nil {
			return err
		}
	}

	resp, err := c.api.CreateTransfer(ctx, token, req)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	sent := &storage.SentTransfer{
		ServerURL:   c.api.BaseURL(),
		TransferID:  resp.TransferID,
		FileName:    resp.FileName,
		Nickname:    resp.Nickname,
		WebURL:      *webURL,
		ExpiresDate: resp.ExpiresDate,
	}
	if err := c.store.AddSent(ctx, sent); err != nil {
		c.io.Printf("Warning: failed to save local history: %v\n", err)
	}

	c.io.Println("✓ Transfer published.")
	c.io.Printf("ID:        %s\n", resp.TransferID)
	c.io.Printf("File:      %s\n", resp.FileName)
	c.io.Printf("Nickname:  %s\n", resp.Nickname)
	c.io.Printf("Expires:   %s\n", formatMillis(resp.ExpiresDate))
	c.io.Printf("Discovery: %s\n", formatMethods(resp.Method))
	return nil
}

func (c *Cli) runFind(ctx context.Context, args []string) error {
	fs := c.newFlagSet("find")
	apiURL := fs.String("api-url", "", "Instance URL to match transfers by instance and IP")
	anonymous := fs.Bool("anonymous", false, "Do not attach the account token")
	var loc location
	loc.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := pkgapi.ListTransfersRequest{APIURL: optionalString(*apiURL)}
	var err error
	if req.Latitude, req.Longitude, err = loc.pointers(); err != nil {
		return err
	}

	token := ""
	if !*anonymous {
		if token, err = c.optionalToken(ctx); err != nil {
			return err
		}
	}

	resp, err := c.api.ListTransfers(ctx, token, req)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.io.Printf("Searched by: %s\n", formatMethods(resp.Method))
	c.printTransfers(resp.Transferts)
	return nil
}

func (c *Cli) runHistory(ctx context.Context) error {
	if _, err := c.store.PruneSent(ctx, c.now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	sent, err := c.store.ListSent(ctx, c.api.BaseURL())
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	summaries := make([]pkgapi.TransferSummary, 0, len(sent))
	for _, s := range sent {
		summaries = append(summaries, pkgapi.TransferSummary{
			ID:          s.TransferID,
			WebURL:      s.WebURL,
			Nickname:    s.Nickname,
			FileName:    s.FileName,
			ExpiresDate: s.ExpiresDate,
		})
	}
	c.printTransfers(summaries)
	return nil
}

func (c *Cli) runIP(ctx context.Context) error {
	resp, err := c.api.IP(ctx)
	if err != nil {
		return err
	}
	c.io.Println(resp.IP)
	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
