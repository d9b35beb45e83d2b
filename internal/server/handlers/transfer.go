package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/server/middleware"
	"github.com/iudanet/stendrelay/internal/server/service"
	"github.com/iudanet/stendrelay/pkg/api"
)

// TransferService операции над переводами
type TransferService interface {
	Create(ctx context.Context, in service.CreateTransferInput) (*service.CreateTransferResult, error)
	Match(ctx context.Context, in service.MatchInput) (*service.MatchResult, error)
	ListOwn(ctx context.Context, bearer string) ([]models.TransferSummary, error)
}

// TransferHandler обрабатывает создание и поиск переводов
type TransferHandler struct {
	responder
	transfers TransferService
	validate  *validator.Validate
}

// NewTransferHandler создает новый handler для переводов
func NewTransferHandler(logger *slog.Logger, transfers TransferService) *TransferHandler {
	return &TransferHandler{
		responder: responder{logger: logger},
		transfers: transfers,
		validate:  newValidator(),
	}
}

// createForm заполняет CreateTransferRequest из формы
type createForm struct{ req *api.CreateTransferRequest }

func (f createForm) decodeForm(values url.Values) error {
	var err error
	f.req.FileName = formString(values, "fileName")
	f.req.WebURL = formString(values, "webUrl")
	f.req.APIURL = formString(values, "apiUrl")
	f.req.Nickname = formString(values, "nickname")
	if f.req.Latitude, err = formFloat(values, "latitude"); err != nil {
		return err
	}
	if f.req.Longitude, err = formFloat(values, "longitude"); err != nil {
		return err
	}
	if f.req.ExpiresTime, err = formMinutes(values, "expiresTime"); err != nil {
		return err
	}
	return nil
}

// listForm заполняет ListTransfersRequest из формы
type listForm struct{ req *api.ListTransfersRequest }

func (f listForm) decodeForm(values url.Values) error {
	var err error
	f.req.APIURL = formString(values, "apiUrl")
	if f.req.Latitude, err = formFloat(values, "latitude"); err != nil {
		return err
	}
	if f.req.Longitude, err = formFloat(values, "longitude"); err != nil {
		return err
	}
	return nil
}

// Create обрабатывает POST /transferts/create
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateTransferRequest
	if err := decodeBody(w, r, h.validate, &req, createForm{req: &req}); err != nil {
		h.logger.WarnContext(ctx, "failed to decode create request", slog.Any("error", err))
		h.sendKind(w, service.KindInvalidParameters, err.Error())
		return
	}

	result, err := h.transfers.Create(ctx, service.CreateTransferInput{
		APIURL:      req.APIURL,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ExpiresTime: minutesPtr(req.ExpiresTime),
		FileName:    deref(req.FileName),
		WebURL:      deref(req.WebURL),
		Nickname:    deref(req.Nickname),
		BearerToken: middleware.BearerToken(ctx),
		ClientIP:    middleware.ClientIP(ctx),
	})
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	t := result.Transfer
	h.sendJSON(w, api.CreateTransferResponse{
		Success:     true,
		TransferID:  t.TransferID,
		Nickname:    t.Nickname,
		FileName:    t.FileName,
		ExpiresDate: t.ExpiresDate.UnixMilli(),
		Method:      toAPIMethods(result.Methods),
	}, http.StatusOK)
}

// List обрабатывает POST /transferts/list
func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ListTransfersRequest
	if err := decodeBody(w, r, h.validate, &req, listForm{req: &req}); err != nil {
		h.logger.WarnContext(ctx, "failed to decode list request", slog.Any("error", err))
		h.sendKind(w, service.KindInvalidParameters, err.Error())
		return
	}

	result, err := h.transfers.Match(ctx, service.MatchInput{
		APIURL:      req.APIURL,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		BearerToken: middleware.BearerToken(ctx),
		ClientIP:    middleware.ClientIP(ctx),
	})
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	h.sendJSON(w, api.ListTransfersResponse{
		Success:    true,
		Transferts: toAPISummaries(result.Transfers),
		Method:     toAPIMethods(result.Methods),
	}, http.StatusOK)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toAPIMethods(m models.Methods) api.Methods {
	return api.Methods{
		InstanceAndIP: m.InstanceAndIP,
		Location:      m.Location,
		Account:       m.Account,
	}
}

func toAPISummaries(in []models.TransferSummary) []api.TransferSummary {
	out := make([]api.TransferSummary, 0, len(in))
	for _, s := range in {
		out = append(out, api.TransferSummary{
			ID:          s.ID,
			WebURL:      s.WebURL,
			Nickname:    s.Nickname,
			FileName:    s.FileName,
			ExpiresDate: s.ExpiresDate,
		})
	}
	return out
}

func minutesPtr(m *api.Minutes) *int {
	if m == nil {
		return nil
	}
	n := int(*m)
	return &n
}
