package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brightpixel/studio-api/internal/entity"
)

// @title Studio Billing API
// @version 1.0
// @description Bridge between the studio client app, the Wave accounting API and the contract file repository
// @BasePath /api

type Service interface {
	CreateDepositInvoice(ctx context.Context, req entity.InvoiceRequest) entity.InvoiceOutcome
	UploadContract(ctx context.Context, filename, contentB64 string, contract entity.ContractData) (entity.UploadResult, error)
	ProvisionProducts(ctx context.Context) entity.ProvisionReport
	Accounts(ctx context.Context) ([]entity.Account, error)
	Products(ctx context.Context, q string) ([]entity.Product, error)
	Businesses(ctx context.Context) ([]entity.Business, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

type CreateInvoiceRequest struct {
	ContractData entity.ContractData `json:"contractData"`
	Invoice      struct {
		PackageKey string `json:"packageKey"`
	} `json:"invoice"`
}

type CreateInvoiceResponse struct {
	Mode         string              `json:"mode"`
	PaymentURL   string              `json:"paymentUrl"`
	InvoiceID    string              `json:"invoiceId,omitempty"`
	Note         string              `json:"note,omitempty"`
	Error        string              `json:"error,omitempty"`
	ErrorDetails []entity.InputError `json:"errorDetails,omitempty"`
}

// CreateInvoice runs the deposit-invoice workflow for a signed contract
// @Summary Create deposit invoice
// @Description Creates a customer and a 50% deposit invoice on the accounting service, then approves and sends it best-effort. Business-level failures degrade to a placeholder payment link instead of an error.
// @Tags invoices
// @Accept json
// @Produce json
// @Param CreateInvoiceRequest body CreateInvoiceRequest true "Contract data and package key"
// @Success 200 {object} CreateInvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /invoices [post]
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	invoiceReq := entity.InvoiceRequest{
		ClientName:  req.ContractData.ClientName,
		ClientEmail: req.ContractData.ClientEmail,
		ContractID:  req.ContractData.ContractID,
		PackageKey:  entity.PackageKey(req.Invoice.PackageKey),
	}

	err = validateInvoiceRequest(invoiceReq)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid request")
		return
	}

	outcome := h.s.CreateDepositInvoice(ctx, invoiceReq)

	SendJSON(ctx, w, http.StatusOK, CreateInvoiceResponse{
		Mode:         string(outcome.Mode),
		PaymentURL:   outcome.PaymentURL,
		InvoiceID:    outcome.InvoiceID,
		Note:         outcome.Note,
		Error:        outcome.Err,
		ErrorDetails: outcome.ErrorDetails,
	})
}

type UploadContractRequest struct {
	Filename     string              `json:"filename"`
	Content      string              `json:"content"` // base64
	ContractData entity.ContractData `json:"contractData"`
}

type UploadContractResponse struct {
	DownloadURL string `json:"downloadUrl"`
	SHA         string `json:"sha"`
}

// UploadContract stores a contract file in the configured repository
// @Summary Upload contract file
// @Description Commits the base64 file to the contract repository and returns a durable download URL
// @Tags contracts
// @Accept json
// @Produce json
// @Param UploadContractRequest body UploadContractRequest true "File name, base64 content and optional contract metadata"
// @Success 200 {object} UploadContractResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Upload failed"
// @Router /contracts [post]
func (h *Handler) UploadContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UploadContractRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	err = validateUploadParams(req.Filename, req.Content)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid request")
		return
	}

	result, err := h.s.UploadContract(ctx, req.Filename, req.Content, req.ContractData)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid request")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to upload contract")

		return
	}

	SendJSON(ctx, w, http.StatusOK, UploadContractResponse{
		DownloadURL: result.DownloadURL,
		SHA:         result.SHA,
	})
}

type ProvisionResultEntity struct {
	PackageKey string `json:"packageKey"`
	Name       string `json:"name"`
	ProductID  string `json:"productId,omitempty"`
	EnvVar     string `json:"envVar"`
	Error      string `json:"error,omitempty"`
}

type ProvisionProductsResponse struct {
	Results []ProvisionResultEntity `json:"results,omitempty"`
	Note    string                  `json:"note,omitempty"`
}

// ProvisionProducts creates one Wave product per catalog package
// @Summary Provision catalog products
// @Description One-shot setup call: creates a product on the accounting service for each package and suggests the env var to pin each resulting id. Per-package failures are reported inline, not as HTTP errors.
// @Tags setup
// @Produce json
// @Success 200 {object} ProvisionProductsResponse
// @Router /products/provision [post]
func (h *Handler) ProvisionProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report := h.s.ProvisionProducts(ctx)

	results := make([]ProvisionResultEntity, 0, len(report.Results))
	for _, res := range report.Results {
		results = append(results, ProvisionResultEntity{
			PackageKey: string(res.PackageKey),
			Name:       res.Name,
			ProductID:  res.ProductID,
			EnvVar:     res.EnvVar,
			Error:      res.Err,
		})
	}

	SendJSON(ctx, w, http.StatusOK, ProvisionProductsResponse{
		Results: results,
		Note:    report.Note,
	})
}

type ListAccountsResponse struct {
	Accounts []entity.Account `json:"accounts"`
	Count    int              `json:"count"`
	Error    string           `json:"error,omitempty"`
}

// ListAccounts lists the ledger accounts of the configured business
// @Summary List accounts
// @Description Operator-facing diagnostic: lists accounts so an income account id can be picked. Failures are reported as a 200 with an error field.
// @Tags setup
// @Produce json
// @Success 200 {object} ListAccountsResponse
// @Router /accounts [get]
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, err := h.s.Accounts(ctx)
	if err != nil {
		SendJSON(ctx, w, http.StatusOK, ListAccountsResponse{Accounts: []entity.Account{}, Error: err.Error()})
		return
	}

	SendJSON(ctx, w, http.StatusOK, ListAccountsResponse{Accounts: accounts, Count: len(accounts)})
}

type ListProductsResponse struct {
	Products []entity.Product `json:"products"`
	Count    int              `json:"count"`
	Error    string           `json:"error,omitempty"`
}

// ListProducts lists the products of the configured business
// @Summary List products
// @Description Operator-facing diagnostic: lists products, optionally filtered by a case-insensitive substring of the name. Failures are reported as a 200 with an error field.
// @Tags setup
// @Produce json
// @Param q query string false "Case-insensitive name filter"
// @Success 200 {object} ListProductsResponse
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.s.Products(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendJSON(ctx, w, http.StatusOK, ListProductsResponse{Products: []entity.Product{}, Error: err.Error()})
		return
	}

	SendJSON(ctx, w, http.StatusOK, ListProductsResponse{Products: products, Count: len(products)})
}

type ListBusinessesResponse struct {
	Businesses []entity.Business `json:"businesses"`
	Count      int               `json:"count"`
	Error      string            `json:"error,omitempty"`
}

// ListBusinesses lists every business visible to the configured API key
// @Summary List businesses
// @Description Operator-facing diagnostic to discover the business id. Failures are reported as a 200 with an error field.
// @Tags setup
// @Produce json
// @Success 200 {object} ListBusinessesResponse
// @Router /businesses [get]
func (h *Handler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	businesses, err := h.s.Businesses(ctx)
	if err != nil {
		SendJSON(ctx, w, http.StatusOK, ListBusinessesResponse{Businesses: []entity.Business{}, Error: err.Error()})
		return
	}

	SendJSON(ctx, w, http.StatusOK, ListBusinessesResponse{Businesses: businesses, Count: len(businesses)})
}

// HealthHandler returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "health check failed")
		return
	}
}
