package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brightpixel/studio-api/internal/entity"
	"github.com/brightpixel/studio-api/pkg/config"
)

type WaveGateway interface {
	CreateCustomer(ctx context.Context, name, email string) (entity.Customer, error)
	CreateInvoice(ctx context.Context, draft entity.InvoiceDraft) (entity.Invoice, error)
	ApproveInvoice(ctx context.Context, invoiceID string) (entity.Invoice, error)
	SendInvoice(ctx context.Context, invoiceID, to string) (entity.Invoice, error)
	CreateProduct(ctx context.Context, name, unitPrice, incomeAccountID string) (string, error)
	Accounts(ctx context.Context) ([]entity.Account, error)
	Products(ctx context.Context) ([]entity.Product, error)
	Businesses(ctx context.Context) ([]entity.Business, error)
}

type ContractStore interface {
	PutFile(ctx context.Context, path, contentB64, commitMessage string) (entity.UploadResult, error)
}

type Producer interface {
	SendInvoiceCreated(ctx context.Context, invoiceID, packageKey string, deposit decimal.Decimal, mode string)
}

type Notifier interface {
	SendMessage(subject, message string) error
}

type Service struct {
	cfg      config.Config
	wave     WaveGateway
	store    ContractStore
	producer Producer
	notifier Notifier
}

func New(cfg config.Config, wave WaveGateway, store ContractStore, producer Producer, notifier Notifier) *Service {
	return &Service{
		cfg:      cfg,
		wave:     wave,
		store:    store,
		producer: producer,
		notifier: notifier,
	}
}

// CreateDepositInvoice runs the deposit-invoice workflow. Business-level
// failures are absorbed: the caller always gets an outcome with a payment
// URL, degrading to the placeholder link in demo and fallback modes.
func (s *Service) CreateDepositInvoice(ctx context.Context, req entity.InvoiceRequest) entity.InvoiceOutcome {
	if s.cfg.Wave.APIKey == "" || s.cfg.Wave.BusinessID == "" {
		outcome := entity.InvoiceOutcome{
			Mode:       entity.ModeDemo,
			PaymentURL: entity.DemoPaymentURL,
			Note:       "Wave credentials are not configured; returning the demo payment link.",
		}

		s.reportOutcome(ctx, req, outcome)

		return outcome
	}

	invoice, paymentURL, deposit, err := s.runInvoiceWorkflow(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "invoice workflow failed", "contract_id", req.ContractID, "error", err)

		outcome := entity.InvoiceOutcome{
			Mode:         entity.ModeFallback,
			PaymentURL:   entity.DemoPaymentURL,
			Err:          err.Error(),
			ErrorDetails: entity.ErrorDetails(err),
		}

		var waveErr *entity.WaveError
		if errors.As(err, &waveErr) {
			outcome.Note = waveErr.FirstInputError()
		}

		s.reportOutcome(ctx, req, outcome)

		return outcome
	}

	outcome := entity.InvoiceOutcome{
		Mode:       entity.ModeLive,
		PaymentURL: paymentURL,
		InvoiceID:  invoice.ID,
		Deposit:    deposit,
	}

	s.reportOutcome(ctx, req, outcome)

	return outcome
}

// runInvoiceWorkflow performs the fatal part of the sequence (customer and
// draft invoice) and the best-effort part (approve and send). Approve and
// send failures are logged and skipped; they never abort a valid invoice.
func (s *Service) runInvoiceWorkflow(ctx context.Context, req entity.InvoiceRequest) (entity.Invoice, string, decimal.Decimal, error) {
	pkg, err := entity.PackageByKey(req.PackageKey)
	if err != nil {
		return entity.Invoice{}, "", decimal.Zero, err
	}

	deposit := pkg.Deposit()

	productID := s.cfg.Wave.ProductIDFor(string(pkg.Key))
	if productID == "" {
		return entity.Invoice{}, "", decimal.Zero, entity.ErrNoProductConfigured
	}

	now := time.Now().UTC()
	invoiceDate := now.Format(time.DateOnly)
	dueDate := now.AddDate(0, 0, 14).Format(time.DateOnly)

	customer, err := s.wave.CreateCustomer(ctx, req.ClientName, req.ClientEmail)
	if err != nil {
		return entity.Invoice{}, "", decimal.Zero, fmt.Errorf("create customer: %w", err)
	}

	invoice, err := s.wave.CreateInvoice(ctx, entity.InvoiceDraft{
		CustomerID:  customer.ID,
		ProductID:   productID,
		UnitPrice:   deposit.String(),
		Memo:        fmt.Sprintf("Deposit for contract %s (%s)", req.ContractID, pkg.Name),
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
	})
	if err != nil {
		return entity.Invoice{}, "", decimal.Zero, fmt.Errorf("create invoice: %w", err)
	}

	paymentURL := invoice.ViewURL

	approved, err := s.wave.ApproveInvoice(ctx, invoice.ID)
	if err != nil {
		slog.WarnContext(ctx, "invoice approve failed, continuing", "invoice_id", invoice.ID, "error", err)
	} else if approved.ViewURL != "" {
		paymentURL = approved.ViewURL
	}

	sent, err := s.wave.SendInvoice(ctx, invoice.ID, req.ClientEmail)
	if err != nil {
		slog.WarnContext(ctx, "invoice send failed, continuing", "invoice_id", invoice.ID, "error", err)
	} else if sent.ViewURL != "" {
		paymentURL = sent.ViewURL
	}

	return invoice, paymentURL, deposit, nil
}

// reportOutcome publishes the invoice event and notifies the operator.
// Neither may affect the caller-facing response.
func (s *Service) reportOutcome(ctx context.Context, req entity.InvoiceRequest, outcome entity.InvoiceOutcome) {
	s.producer.SendInvoiceCreated(ctx, outcome.InvoiceID, string(req.PackageKey), outcome.Deposit, string(outcome.Mode))

	subject := fmt.Sprintf("Deposit invoice %s for contract %s", outcome.Mode, req.ContractID)

	message := fmt.Sprintf("Client: %s <%s>\nPackage: %s\nMode: %s\nPayment URL: %s",
		req.ClientName, req.ClientEmail, req.PackageKey, outcome.Mode, outcome.PaymentURL)
	if outcome.Err != "" {
		message += "\nError: " + outcome.Err
	}

	err := s.notifier.SendMessage(subject, message)
	if err != nil {
		slog.ErrorContext(ctx, "notify operator", "error", err)
	}
}

// UploadContract commits the base64 file to the contract repository and
// returns its durable location.
func (s *Service) UploadContract(ctx context.Context, filename, contentB64 string, contract entity.ContractData) (entity.UploadResult, error) {
	_, err := base64.StdEncoding.DecodeString(contentB64)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("%w: content is not valid base64", entity.ErrIncorrectRequestBody)
	}

	name := entity.SanitizeFilename(filename)
	path := s.cfg.GitHub.ContractsDir + "/" + name

	commitMessage := fmt.Sprintf("Add contract file %s", name)
	if contract.ContractID != "" {
		commitMessage = fmt.Sprintf("Add contract %s (%s)", contract.ContractID, name)
	}

	result, err := s.store.PutFile(ctx, path, contentB64, commitMessage)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("put file %q: %w", path, err)
	}

	return result, nil
}

// ProvisionProducts creates one Wave product per catalog package. Each call
// is independent; a failed package is recorded and the rest still run.
func (s *Service) ProvisionProducts(ctx context.Context) entity.ProvisionReport {
	switch {
	case s.cfg.Wave.APIKey == "":
		return entity.ProvisionReport{Note: "WAVE_API_KEY is not set; nothing was created."}
	case s.cfg.Wave.BusinessID == "":
		return entity.ProvisionReport{Note: "WAVE_BUSINESS_ID is not set; nothing was created."}
	case s.cfg.Wave.IncomeAccountID == "":
		return entity.ProvisionReport{Note: "WAVE_INCOME_ACCOUNT_ID is not set; run the accounts listing to find one."}
	}

	packages := entity.Packages()
	results := make([]entity.ProvisionResult, 0, len(packages))

	for _, pkg := range packages {
		result := entity.ProvisionResult{
			PackageKey: pkg.Key,
			Name:       pkg.Name,
			EnvVar:     "WAVE_PRODUCT_ID_" + strings.ToUpper(string(pkg.Key)),
		}

		id, err := s.wave.CreateProduct(ctx, pkg.Name, pkg.Price.String(), s.cfg.Wave.IncomeAccountID)
		if err != nil {
			slog.ErrorContext(ctx, "provision product", "package", pkg.Key, "error", err)
			result.Err = err.Error()
		} else {
			result.ProductID = id
		}

		results = append(results, result)
	}

	return entity.ProvisionReport{Results: results}
}

func (s *Service) Accounts(ctx context.Context) ([]entity.Account, error) {
	return s.wave.Accounts(ctx)
}

// Products lists products, optionally filtered by a case-insensitive
// substring of the name.
func (s *Service) Products(ctx context.Context, q string) ([]entity.Product, error) {
	products, err := s.wave.Products(ctx)
	if err != nil {
		return nil, err
	}

	if q == "" {
		return products, nil
	}

	needle := strings.ToLower(q)
	filtered := make([]entity.Product, 0, len(products))

	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

func (s *Service) Businesses(ctx context.Context) ([]entity.Business, error) {
	return s.wave.Businesses(ctx)
}
