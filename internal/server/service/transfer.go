package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/stendrelay/internal/geo"
	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/sanitize"
	"github.com/iudanet/stendrelay/internal/server/storage"
	"github.com/iudanet/stendrelay/internal/token"
	"github.com/iudanet/stendrelay/internal/validation"
)

// MaxMatchResults максимальное число переводов в ответе на поиск
const MaxMatchResults = 100

// BearerResolver проверяет bearer токен
type BearerResolver interface {
	ResolveBearer(ctx context.Context, bearer string) (*models.Account, error)
}

// CreateTransferInput входные данные для создания перевода
type CreateTransferInput struct {
	APIURL      *string
	Latitude    *float64
	Longitude   *float64
	ExpiresTime *int // минуты
	FileName    string
	WebURL      string
	Nickname    string
	BearerToken string
	ClientIP    string
}

// CreateTransferResult созданный перевод и задействованные способы обнаружения
type CreateTransferResult struct {
	Transfer *models.Transfer
	Methods  models.Methods
}

// MatchInput контекст поиска переводов
type MatchInput struct {
	APIURL      *string
	Latitude    *float64
	Longitude   *float64
	BearerToken string
	ClientIP    string
}

// MatchResult найденные переводы и способы обнаружения контекста поиска
type MatchResult struct {
	Transfers []models.TransferSummary
	Methods   models.Methods
}

// TransferRegistry создает, ищет и удаляет переводы
type TransferRegistry struct {
	logger        *slog.Logger
	transfers     storage.TransferStorage
	accounts      BearerResolver
	sanitizer     *sanitize.Sanitizer
	now           func() time.Time
	newTransferID Generator
}

// RegistryOption настраивает TransferRegistry
type RegistryOption func(*TransferRegistry)

// WithRegistryClock подменяет источник времени
func WithRegistryClock(now func() time.Time) RegistryOption {
	return func(r *TransferRegistry) { r.now = now }
}

// WithTransferIDGenerator подменяет генератор id переводов
func WithTransferIDGenerator(gen Generator) RegistryOption {
	return func(r *TransferRegistry) { r.newTransferID = gen }
}

// NewTransferRegistry создает TransferRegistry
func NewTransferRegistry(
	logger *slog.Logger,
	transfers storage.TransferStorage,
	accounts BearerResolver,
	sanitizer *sanitize.Sanitizer,
	opts ...RegistryOption,
) *TransferRegistry {
	r := &TransferRegistry{
		logger:        logger,
		transfers:     transfers,
		accounts:      accounts,
		sanitizer:     sanitizer,
		now:           time.Now,
		newTransferID: token.NewTransferID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// discovery нормализованный контекст обнаружения (общий для create и match)
type discovery struct {
	apiURL    *string
	authorIP  *string
	latitude  *float64
	longitude *float64
	account   *models.Account
}

func (d discovery) methods() models.Methods {
	return models.Methods{
		InstanceAndIP: d.apiURL != nil,
		Location:      d.latitude != nil && d.longitude != nil,
		Account:       d.account != nil,
	}
}

// normalizeDiscovery проверяет apiUrl и координаты и разрешает bearer токен
func (r *TransferRegistry) normalizeDiscovery(ctx context.Context, apiURL *string, lat, lon *float64, bearer, clientIP string) (discovery, error) {
	var d discovery

	if apiURL != nil && strings.TrimSpace(*apiURL) != "" {
		host, err := validation.NormalizeAPIURL(*apiURL)
		if err != nil {
			return d, errInvalid("the provided api url is not valid", err)
		}
		ip := clientIP
		d.apiURL = &host
		d.authorIP = &ip
	}

	if err := validation.ValidateCoordinates(lat, lon); err != nil {
		switch {
		case errors.Is(err, validation.ErrIncompleteCoordinates):
			return d, errInvalid("the provided coordinates are incomplete", err)
		case errors.Is(err, validation.ErrCoordinatesTooFar):
			return d, errInvalid("the provided coordinates are too far from the center of the world", err)
		default:
			return d, errInvalid("the provided coordinates are invalid", err)
		}
	}
	d.latitude, d.longitude = lat, lon

	if bearer != "" {
		account, err := r.accounts.ResolveBearer(ctx, bearer)
		if err != nil {
			return d, err
		}
		d.account = account
	}

	if !d.methods().Any() {
		return d, errMissing("you must provide at least one discovery method")
	}

	return d, nil
}

// Create создает перевод
func (r *TransferRegistry) Create(ctx context.Context, in CreateTransferInput) (*CreateTransferResult, error) {
	if strings.TrimSpace(in.WebURL) == "" {
		return nil, errMissing("the transfer url is missing")
	}
	if in.FileName == "" {
		return nil, errMissing("the file name is missing")
	}

	webURL, err := validation.NormalizeWebURL(in.WebURL)
	if err != nil {
		return nil, errInvalid("the provided url is not valid", err)
	}

	d, err := r.normalizeDiscovery(ctx, in.APIURL, in.Latitude, in.Longitude, in.BearerToken, in.ClientIP)
	if err != nil {
		return nil, err
	}

	minutes := validation.ClampExpiresMinutes(in.ExpiresTime)

	transfer := &models.Transfer{
		WebURL:    webURL,
		APIURL:    d.apiURL,
		AuthorIP:  d.authorIP,
		Latitude:  d.latitude,
		Longitude: d.longitude,
		Nickname:  r.sanitizer.Nickname(in.Nickname),
		FileName:  r.sanitizer.FileName(in.FileName),
	}
	if d.account != nil {
		id := d.account.ID
		transfer.AuthorID = &id
	}

	if err := r.insert(ctx, transfer, time.Duration(minutes)*time.Minute); err != nil {
		return nil, err
	}

	methods := transfer.Methods()
	r.logger.InfoContext(ctx, "transfer created",
		slog.String("transfer_id", transfer.TransferID),
		slog.Int("expires_minutes", minutes),
		slog.Bool("instance_and_ip", methods.InstanceAndIP),
		slog.Bool("location", methods.Location),
		slog.Bool("account", methods.Account))

	return &CreateTransferResult{Transfer: transfer, Methods: methods}, nil
}

// insert генерирует уникальный transferId и сохраняет перевод
func (r *TransferRegistry) insert(ctx context.Context, transfer *models.Transfer, ttl time.Duration) error {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		id, err := r.newTransferID()
		if err != nil {
			return errStore("generate transfer id", err)
		}

		transfer.TransferID = id
		transfer.ExpiresDate = time.UnixMilli(r.now().Add(ttl).UnixMilli())

		err = r.transfers.CreateTransfer(ctx, transfer)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, storage.ErrConflict):
			continue
		default:
			return errStore("create transfer", err)
		}
	}

	return errStore("create transfer", errTooManyCollisions)
}

// ListOwn возвращает активные переводы владельца токена
func (r *TransferRegistry) ListOwn(ctx context.Context, bearer string) ([]models.TransferSummary, error) {
	account, err := r.accounts.ResolveBearer(ctx, bearer)
	if err != nil {
		return nil, err
	}

	transfers, err := r.transfers.ListActiveTransfersByAuthor(ctx, account.ID, r.now())
	if err != nil {
		return nil, errStore("list transfers", err)
	}

	return summaries(transfers), nil
}

// Match ищет активные переводы, доступные из контекста запроса
func (r *TransferRegistry) Match(ctx context.Context, in MatchInput) (*MatchResult, error) {
	d, err := r.normalizeDiscovery(ctx, in.APIURL, in.Latitude, in.Longitude, in.BearerToken, in.ClientIP)
	if err != nil {
		return nil, err
	}

	now := r.now()
	transfers, err := r.transfers.ListActiveTransfers(ctx, now)
	if err != nil {
		return nil, errStore("list transfers", err)
	}

	matched := make([]*models.Transfer, 0)
	for _, t := range transfers {
		// хранилище уже фильтрует, но запись могла истечь между запросом и проверкой
		if t.IsExpired(now) {
			continue
		}
		if d.matches(t) {
			matched = append(matched, t)
			if len(matched) == MaxMatchResults {
				break
			}
		}
	}

	return &MatchResult{Transfers: summaries(matched), Methods: d.methods()}, nil
}

// matches проверяет, доступен ли перевод хотя бы одним способом
func (d discovery) matches(t *models.Transfer) bool {
	if d.account != nil && t.AuthorID != nil && *t.AuthorID == d.account.ID {
		return true
	}

	if d.apiURL != nil && d.authorIP != nil && t.APIURL != nil && t.AuthorIP != nil &&
		*t.APIURL == *d.apiURL && *t.AuthorIP == *d.authorIP {
		return true
	}

	if d.latitude != nil && d.longitude != nil && t.HasLocation() &&
		geo.IsNearby(*d.latitude, *d.longitude, *t.Latitude, *t.Longitude) {
		return true
	}

	return false
}

// PurgeExpired удаляет истекшие переводы и возвращает число удаленных.
// Ошибка удаления отдельной записи логируется и не прерывает очистку.
func (r *TransferRegistry) PurgeExpired(ctx context.Context) (int, error) {
	ids, err := r.transfers.ListExpiredTransferIDs(ctx, r.now())
	if err != nil {
		return 0, errStore("list expired transfers", err)
	}

	deleted := 0
	for _, id := range ids {
		if err := r.transfers.DeleteTransfer(ctx, id); err != nil {
			if errors.Is(err, storage.ErrTransferNotFound) {
				continue
			}
			r.logger.WarnContext(ctx, "failed to delete expired transfer",
				slog.String("transfer_id", id),
				slog.Any("error", err))
			continue
		}
		deleted++
	}

	return deleted, nil
}

func summaries(transfers []*models.Transfer) []models.TransferSummary {
	out := make([]models.TransferSummary, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, t.Summary())
	}
	return out
}
