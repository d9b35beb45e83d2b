package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stendrelay/pkg/api"
)

func TestTransferHandler_InstanceAndIP(t *testing.T) {
	f := newFixture(t)

	before := time.Now()
	rr := f.postJSON("/transferts/create", api.CreateTransferRequest{
		FileName:    strPtr("report.pdf"),
		WebURL:      strPtr("https://files.example/t/abc/"),
		APIURL:      strPtr("https://Stend.Example:8080/api"),
		Nickname:    strPtr("Ana"),
		ExpiresTime: minutesOf(10),
	}, fromIP("198.51.100.5"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	created := decodeJSON[api.CreateTransferResponse](t, rr)
	assert.True(t, created.Success)
	assert.Len(t, created.TransferID, 16)
	assert.Equal(t, "Ana", created.Nickname)
	assert.Equal(t, "report.pdf", created.FileName)
	assert.Equal(t, api.Methods{InstanceAndIP: true}, created.Method)
	expires := time.UnixMilli(created.ExpiresDate)
	assert.WithinDuration(t, before.Add(10*time.Minute), expires, 5*time.Second)

	t.Run("same instance and ip finds it", func(t *testing.T) {
		rr := f.postJSON("/transferts/list", api.ListTransfersRequest{
			APIURL: strPtr("http://stend.example/"),
		}, fromIP("198.51.100.5"))
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		list := decodeJSON[api.ListTransfersResponse](t, rr)
		assert.True(t, list.Success)
		assert.Equal(t, api.Methods{InstanceAndIP: true}, list.Method)
		require.Len(t, list.Transferts, 1)
		assert.Equal(t, created.TransferID, list.Transferts[0].ID)
		assert.Equal(t, "https://files.example/t/abc", list.Transferts[0].WebURL)
	})

	t.Run("other ip does not", func(t *testing.T) {
		rr := f.postJSON("/transferts/list", api.ListTransfersRequest{
			APIURL: strPtr("http://stend.example/"),
		}, fromIP("198.51.100.6"))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, decodeJSON[api.ListTransfersResponse](t, rr).Transferts)
	})
}

func TestTransferHandler_LocationViaForm(t *testing.T) {
	f := newFixture(t)

	rr := f.postForm("/transferts/create", url.Values{
		"fileName":  {"holiday photos.zip"},
		"webUrl":    {"https://files.example/t/xyz"},
		"latitude":  {"48.8566"},
		"longitude": {"2.3522"},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	created := decodeJSON[api.CreateTransferResponse](t, rr)
	assert.Equal(t, api.Methods{Location: true}, created.Method)
	assert.Equal(t, "holiday_photos.zip", created.FileName)
	assert.Equal(t, "Anonyme", created.Nickname)

	// ~1 km
	rr = f.postForm("/transferts/list", url.Values{
		"latitude":  {"48.8656"},
		"longitude": {"2.3522"},
	}, fromIP("192.0.2.99"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	list := decodeJSON[api.ListTransfersResponse](t, rr)
	require.Len(t, list.Transferts, 1)
	assert.Equal(t, created.TransferID, list.Transferts[0].ID)

	// ~5.5 km
	rr = f.postForm("/transferts/list", url.Values{
		"latitude":  {"48.9066"},
		"longitude": {"2.3522"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decodeJSON[api.ListTransfersResponse](t, rr).Transferts)
}

func TestTransferHandler_Account(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "google_7", "owner-token")

	rr := f.postJSON("/transferts/create", api.CreateTransferRequest{
		FileName: strPtr("notes.txt"),
		WebURL:   strPtr("https://files.example/t/n"),
	}, withBearer("owner-token"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	created := decodeJSON[api.CreateTransferResponse](t, rr)
	assert.Equal(t, api.Methods{Account: true}, created.Method)

	rr = f.do(http.MethodGet, "/account/transferts", nil, withBearer("owner-token"))
	require.Equal(t, http.StatusOK, rr.Code)
	own := decodeJSON[api.AccountTransfersResponse](t, rr)
	require.Len(t, own.Transferts, 1)
	assert.Equal(t, created.TransferID, own.Transferts[0].ID)

	rr = f.postJSON("/transferts/list", api.ListTransfersRequest{}, withBearer("owner-token"), fromIP("192.0.2.1"))
	require.Equal(t, http.StatusOK, rr.Code)
	list := decodeJSON[api.ListTransfersResponse](t, rr)
	assert.Equal(t, api.Methods{Account: true}, list.Method)
	assert.Len(t, list.Transferts, 1)
}

func TestTransferHandler_Errors(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		body        string
		contentType string
		bearer      string
		wantStatus  int
		wantError   string
		wantMessage string
		wantAction  string
	}{
		{
			name:        "wrong json type",
			target:      "/transferts/create",
			body:        `{"fileName":"a.txt","webUrl":"https://f.example/t","latitude":"north","longitude":2}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid parameters",
			wantMessage: "latitude must be a number",
		},
		{
			name:        "malformed json",
			target:      "/transferts/list",
			body:        `{"apiUrl":`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid parameters",
		},
		{
			name:        "unparseable form number",
			target:      "/transferts/create",
			body:        "fileName=a&webUrl=https%3A%2F%2Ff.example&expiresTime=soon",
			contentType: "application/x-www-form-urlencoded",
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid parameters",
			wantMessage: "expiresTime must be a number",
		},
		{
			name:        "field too long",
			target:      "/transferts/create",
			body:        `{"fileName":"a.txt","webUrl":"https://f.example/` + strings.Repeat("x", 2100) + `","apiUrl":"https://i.example"}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid parameters",
			wantMessage: "webUrl is too long",
		},
		{
			name:        "missing file name",
			target:      "/transferts/create",
			body:        `{"webUrl":"https://f.example/t","apiUrl":"https://i.example"}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantError:   "Missing parameters",
		},
		{
			name:        "no discovery method",
			target:      "/transferts/create",
			body:        `{"fileName":"a.txt","webUrl":"https://f.example/t"}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantError:   "Missing parameters",
		},
		{
			name:        "empty list body",
			target:      "/transferts/list",
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantError:   "Missing parameters",
		},
		{
			name:        "incomplete coordinates",
			target:      "/transferts/list",
			body:        `{"latitude":48.8}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid parameters",
		},
		{
			name:        "stale bearer",
			target:      "/transferts/list",
			body:        `{"apiUrl":"https://i.example"}`,
			contentType: "application/json",
			bearer:      "expired-session",
			wantStatus:  http.StatusUnauthorized,
			wantError:   "Unauthorized",
			wantAction:  api.ActionDeleteToken,
		},
		{
			name:        "bearer header without token",
			target:      "/transferts/create",
			body:        `{"fileName":"a.txt","webUrl":"https://f.example/t","apiUrl":"https://i.example"}`,
			contentType: "application/json",
			bearer:      " ",
			wantStatus:  http.StatusUnauthorized,
			wantError:   "Unauthorized",
			wantAction:  api.ActionDeleteToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			opts := []requestOption{func(r *http.Request) { r.Header.Set("Content-Type", tt.contentType) }}
			if tt.bearer != "" {
				opts = append(opts, withBearer(tt.bearer))
			}

			rr := f.do(http.MethodPost, tt.target, strings.NewReader(tt.body), opts...)
			assert.Equal(t, tt.wantStatus, rr.Code)

			resp := decodeError(t, rr)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Contains(t, resp.Message, tt.wantMessage)
			assert.Equal(t, tt.wantAction, resp.Action)
		})
	}
}

func TestStatusForKind(t *testing.T) {
	f := newFixture(t)
	// запрос к несуществующему коду: NotFound
	rr := f.do(http.MethodGet, "/auth/checkcode?code=zzzzzzzz", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not found", decodeError(t, rr).Error)
}

func TestTransferHandler_ExpiresTimeAnyNumber(t *testing.T) {
	tests := []struct {
		name string
		json string
		form string
		want time.Duration
	}{
		{name: "huge json", json: "1e20", want: 60 * time.Minute},
		{name: "huge negative json", json: "-1e20", want: 60 * time.Minute},
		{name: "fraction json", json: "2.5", want: 2 * time.Minute},
		{name: "below one json", json: "0.5", want: 60 * time.Minute},
		{name: "huge form", form: "1e20", want: 60 * time.Minute},
		{name: "fraction form", form: "2.5", want: 2 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			before := time.Now()

			var rr *httptest.ResponseRecorder
			if tt.json != "" {
				body := `{"fileName":"a.txt","webUrl":"https://f.example/t","apiUrl":"https://i.example","expiresTime":` + tt.json + `}`
				rr = f.do(http.MethodPost, "/transferts/create", strings.NewReader(body), func(r *http.Request) {
					r.Header.Set("Content-Type", "application/json")
				})
			} else {
				rr = f.postForm("/transferts/create", url.Values{
					"fileName":    {"a.txt"},
					"webUrl":      {"https://f.example/t"},
					"apiUrl":      {"https://i.example"},
					"expiresTime": {tt.form},
				})
			}
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

			created := decodeJSON[api.CreateTransferResponse](t, rr)
			assert.WithinDuration(t, before.Add(tt.want), time.UnixMilli(created.ExpiresDate), 5*time.Second)
		})
	}
}
