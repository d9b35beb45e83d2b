package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/stendrelay/internal/client/api"
	"github.com/iudanet/stendrelay/internal/client/iocli"
	"github.com/iudanet/stendrelay/internal/client/storage"
	"github.com/iudanet/stendrelay/internal/client/storage/boltdb"
	pkgapi "github.com/iudanet/stendrelay/pkg/api"
)

const testServer = "https://relay.test"

type fixture struct {
	cli    *Cli
	io     *iocli.IOMock
	api    *RelayAPIMock
	store  *boltdb.Storage
	out    bytes.Buffer
	inputs []string
}

// newFixture собирает Cli на моках IO и RelayAPI и настоящем bbolt файле.
// Методы RelayAPI, кроме BaseURL и LoginURL, тест задает сам.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	f := &fixture{store: store}

	readNext := func(string) (string, error) {
		if len(f.inputs) == 0 {
			return "", errors.New("no input")
		}
		in := f.inputs[0]
		f.inputs = f.inputs[1:]
		return in, nil
	}
	f.io = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			_, _ = fmt.Fprintln(&f.out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			_, _ = fmt.Fprintf(&f.out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			return f.out.Write(p)
		},
		ReadInputFunc:    readNext,
		ReadPasswordFunc: readNext,
	}
	f.api = &RelayAPIMock{
		BaseURLFunc:  func() string { return testServer },
		LoginURLFunc: api.NewClient(testServer).LoginURL,
	}
	f.cli = New(f.io, f.api, store)
	return f
}

func (f *fixture) login(t *testing.T, token string) {
	t.Helper()
	require.NoError(t, f.store.SaveSession(context.Background(), &storage.Session{ServerURL: testServer, Token: token}))
}

func (f *fixture) storedToken(t *testing.T) (string, error) {
	t.Helper()
	session, err := f.store.GetSession(context.Background(), testServer)
	if err != nil {
		return "", err
	}
	return session.Token, nil
}

func staleTokenError() error {
	return &api.APIError{
		StatusCode: http.StatusUnauthorized,
		Title:      "Unauthorized",
		Message:    "Invalid token",
		Action:     pkgapi.ActionDeleteToken,
	}
}
