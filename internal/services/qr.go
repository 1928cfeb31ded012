package services

//go:generate mockgen -source=qr.go -destination=qr_mock.go -package=services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
	"github.com/sbilibin2017/qr-drive-cashier/internal/reference"
	"github.com/sbilibin2017/qr-drive-cashier/internal/repositories"
	"github.com/skip2/go-qrcode"
)

// QR placeholder defaults used for every transaction created by a QR display.
const (
	QRTransactionType = "Pembayaran Digital"
	QRCustomerName    = "Pelanggan"
	QRNotes           = "Scan QR untuk membayar"

	qrImageSize = 512

	// maxOriginLength keeps origin + "/t/<uuid>?ref=<reference>" within
	// byte-mode capacity at qrcode.Highest (1273 bytes).
	maxOriginLength = 1024
)

var (
	ErrInvalidBaseURL    = errors.New("baseUrl must be an absolute http(s) URL")
	ErrInvalidReference  = errors.New("invalid reference")
	ErrReferenceNotFound = errors.New("reference not found or expired")
)

// TransactionCreator creates and reads transactions on behalf of the QR flow.
type TransactionCreator interface {
	Create(ctx context.Context, data models.NewTransaction) *models.Transaction
	Get(ctx context.Context, id string) (*models.Transaction, error)
}

// ReferenceGenerator issues customer-facing references.
type ReferenceGenerator interface {
	Generate() string
}

// ReferenceCache maps live references to transaction IDs.
type ReferenceCache interface {
	Save(ctx context.Context, reference, transactionID string) error
	Get(ctx context.Context, reference string) (string, error)
}

// QRService issues QR codes for new pending transactions.
type QRService struct {
	transactions  TransactionCreator
	generator     ReferenceGenerator
	cache         ReferenceCache
	publicBaseURL string
	ttl           time.Duration
}

// NewQRService creates a new QRService. When publicBaseURL is set it takes
// precedence over the base URL supplied by the display page.
func NewQRService(
	transactions TransactionCreator,
	generator ReferenceGenerator,
	cache ReferenceCache,
	publicBaseURL string,
	ttl time.Duration,
) *QRService {
	return &QRService{
		transactions:  transactions,
		generator:     generator,
		cache:         cache,
		publicBaseURL: publicBaseURL,
		ttl:           ttl,
	}
}

// Generate creates a placeholder transaction and returns a QR code pointing at it.
func (s *QRService) Generate(ctx context.Context, baseURL string) (*models.QRCode, error) {
	origin := s.publicBaseURL
	if origin == "" {
		origin = baseURL
	}
	origin, err := normalizeOrigin(origin)
	if err != nil {
		logger.Log.Warnw("rejected qr base url", "base_url", baseURL, "error", err)
		return nil, err
	}

	tx := s.transactions.Create(ctx, models.NewTransaction{
		Type:         QRTransactionType,
		CustomerName: QRCustomerName,
		Amount:       0,
		Notes:        QRNotes,
	})

	ref := s.generator.Generate()
	transactionURL := fmt.Sprintf("%s/t/%s?ref=%s", origin, url.PathEscape(tx.ID), url.QueryEscape(ref))

	png, err := qrcode.Encode(transactionURL, qrcode.Highest, qrImageSize)
	if err != nil {
		logger.Log.Errorw("failed to render qr code", "transaction_id", tx.ID, "error", err)
		return nil, fmt.Errorf("render qr code: %w", err)
	}

	if err := s.cache.Save(ctx, ref, tx.ID); err != nil {
		logger.Log.Errorw("failed to cache reference", "reference", ref, "transaction_id", tx.ID, "error", err)
	}

	logger.Log.Infow("qr code issued", "transaction_id", tx.ID, "reference", ref)

	return &models.QRCode{
		TransactionID:  tx.ID,
		Reference:      ref,
		TransactionURL: transactionURL,
		QRCodeDataURL:  "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		ExpiresIn:      int(s.ttl / time.Second),
	}, nil
}

// Resolve returns the transaction behind a live reference.
func (s *QRService) Resolve(ctx context.Context, ref string) (*models.Transaction, error) {
	if _, err := reference.Parse(ref); err != nil {
		return nil, ErrInvalidReference
	}

	id, err := s.cache.Get(ctx, ref)
	if err != nil {
		if errors.Is(err, repositories.ErrReferenceNotFound) {
			return nil, ErrReferenceNotFound
		}
		logger.Log.Errorw("failed to resolve reference", "reference", ref, "error", err)
		return nil, err
	}

	return s.transactions.Get(ctx, id)
}

func normalizeOrigin(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrInvalidBaseURL
	}
	origin := strings.TrimRight(u.Scheme+"://"+u.Host+u.Path, "/")
	if len(origin) > maxOriginLength {
		return "", ErrInvalidBaseURL
	}
	return origin, nil
}
