package wave

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brightpixel/studio-api/internal/entity"
	"github.com/brightpixel/studio-api/pkg/config"
	"github.com/brightpixel/studio-api/pkg/transport"
)

const timeout = 15 * time.Second

// Client talks to the Wave accounting GraphQL API.
type Client struct {
	cfg config.Wave
	c   *http.Client
}

func NewClient(cfg config.Wave) *Client {
	return &Client{
		cfg: cfg,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message    string   `json:"message"`
	Path       []string `json:"path,omitempty"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// execute posts one query or mutation and returns the data payload unwrapped.
// A non-2xx status and a non-empty top-level errors array both collapse into
// the same *entity.WaveError shape.
func (c *Client) execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("wave api key: %w", entity.ErrNotConfigured)
	}

	b, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GraphQLURL, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}

	// The body may not be JSON at all on transport failures; ignore the
	// unmarshal error in that case, the status check below reports it.
	_ = json.Unmarshal(body, &envelope)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || len(envelope.Errors) > 0 {
		return nil, waveErr(resp.Status, envelope.Errors)
	}

	return envelope.Data, nil
}

func waveErr(status string, gqlErrors []graphQLError) *entity.WaveError {
	if len(gqlErrors) == 0 {
		return entity.NewWaveError(fmt.Sprintf("wave api error: %s", status), nil)
	}

	inputErrors := make([]entity.InputError, 0, len(gqlErrors))
	for _, e := range gqlErrors {
		inputErrors = append(inputErrors, entity.InputError{
			Code:    e.Extensions.Code,
			Message: e.Message,
			Path:    e.Path,
		})
	}

	serialized, _ := json.Marshal(gqlErrors)

	return entity.NewWaveError(fmt.Sprintf("wave api error: %s", serialized), inputErrors)
}

// mutationResult is the common didSucceed/inputErrors envelope of Wave
// mutations. A 2xx response with didSucceed=false is still a failed call.
type mutationResult struct {
	DidSucceed  bool                `json:"didSucceed"`
	InputErrors []entity.InputError `json:"inputErrors"`
}

func (r mutationResult) err() *entity.WaveError {
	msg := entity.JoinInputErrors(r.InputErrors)
	if msg == "" {
		msg = "unknown error"
	}

	return entity.NewWaveError(msg, r.InputErrors)
}

const customerCreateMutation = `
mutation ($input: CustomerCreateInput!) {
  customerCreate(input: $input) {
    didSucceed
    inputErrors { code message path }
    customer { id name email }
  }
}`

// CreateCustomer registers a customer record and returns its reference.
func (c *Client) CreateCustomer(ctx context.Context, name, email string) (entity.Customer, error) {
	variables := map[string]any{
		"input": map[string]any{
			"businessId": c.cfg.BusinessID,
			"name":       name,
			"email":      email,
		},
	}

	data, err := c.execute(ctx, customerCreateMutation, variables)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("customer create: %w", err)
	}

	var res struct {
		CustomerCreate struct {
			mutationResult
			Customer *struct {
				ID    string `json:"id"`
				Name  string `json:"name"`
				Email string `json:"email"`
			} `json:"customer"`
		} `json:"customerCreate"`
	}

	err = json.Unmarshal(data, &res)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if !res.CustomerCreate.DidSucceed || res.CustomerCreate.Customer == nil || res.CustomerCreate.Customer.ID == "" {
		return entity.Customer{}, fmt.Errorf("customer create: %w", res.CustomerCreate.err())
	}

	return entity.Customer{
		ID:    res.CustomerCreate.Customer.ID,
		Name:  res.CustomerCreate.Customer.Name,
		Email: res.CustomerCreate.Customer.Email,
	}, nil
}

const invoiceCreateMutation = `
mutation ($input: InvoiceCreateInput!) {
  invoiceCreate(input: $input) {
    didSucceed
    inputErrors { code message path }
    invoice { id status viewUrl }
  }
}`

// CreateInvoice creates a draft invoice referencing an existing customer and
// product.
func (c *Client) CreateInvoice(ctx context.Context, p entity.InvoiceDraft) (entity.Invoice, error) {
	variables := map[string]any{
		"input": map[string]any{
			"businessId":  c.cfg.BusinessID,
			"customerId":  p.CustomerID,
			"currency":    c.cfg.Currency,
			"invoiceDate": p.InvoiceDate,
			"dueDate":     p.DueDate,
			"memo":        p.Memo,
			"items": []map[string]any{
				{
					"productId": p.ProductID,
					"quantity":  1,
					"unitPrice": p.UnitPrice,
				},
			},
		},
	}

	data, err := c.execute(ctx, invoiceCreateMutation, variables)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("invoice create: %w", err)
	}

	var res struct {
		InvoiceCreate struct {
			mutationResult
			Invoice *invoicePayload `json:"invoice"`
		} `json:"invoiceCreate"`
	}

	err = json.Unmarshal(data, &res)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if !res.InvoiceCreate.DidSucceed || res.InvoiceCreate.Invoice == nil || res.InvoiceCreate.Invoice.ID == "" {
		return entity.Invoice{}, fmt.Errorf("invoice create: %w", res.InvoiceCreate.err())
	}

	return res.InvoiceCreate.Invoice.toEntity(), nil
}

type invoicePayload struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	ViewURL string `json:"viewUrl"`
}

func (p *invoicePayload) toEntity() entity.Invoice {
	return entity.Invoice{
		ID:      p.ID,
		Status:  entity.InvoiceStatus(p.Status),
		ViewURL: p.ViewURL,
	}
}

const invoiceApproveMutation = `
mutation ($input: InvoiceApproveInput!) {
  invoiceApprove(input: $input) {
    didSucceed
    inputErrors { code message path }
    invoice { id status viewUrl }
  }
}`

// ApproveInvoice moves a draft invoice to approved.
func (c *Client) ApproveInvoice(ctx context.Context, invoiceID string) (entity.Invoice, error) {
	variables := map[string]any{
		"input": map[string]any{"invoiceId": invoiceID},
	}

	data, err := c.execute(ctx, invoiceApproveMutation, variables)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("invoice approve: %w", err)
	}

	var res struct {
		InvoiceApprove struct {
			mutationResult
			Invoice *invoicePayload `json:"invoice"`
		} `json:"invoiceApprove"`
	}

	err = json.Unmarshal(data, &res)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if !res.InvoiceApprove.DidSucceed || res.InvoiceApprove.Invoice == nil {
		return entity.Invoice{}, fmt.Errorf("invoice approve: %w", res.InvoiceApprove.err())
	}

	return res.InvoiceApprove.Invoice.toEntity(), nil
}

const invoiceSendMutation = `
mutation ($input: InvoiceSendInput!) {
  invoiceSend(input: $input) {
    didSucceed
    inputErrors { code message path }
    invoice { id status viewUrl }
  }
}`

// SendInvoice emails the invoice to the customer. The refreshed view URL is
// returned when the service exposes one.
func (c *Client) SendInvoice(ctx context.Context, invoiceID, to string) (entity.Invoice, error) {
	variables := map[string]any{
		"input": map[string]any{
			"invoiceId": invoiceID,
			"to":        []string{to},
		},
	}

	data, err := c.execute(ctx, invoiceSendMutation, variables)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("invoice send: %w", err)
	}

	var res struct {
		InvoiceSend struct {
			mutationResult
			Invoice *invoicePayload `json:"invoice"`
		} `json:"invoiceSend"`
	}

	err = json.Unmarshal(data, &res)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if !res.InvoiceSend.DidSucceed {
		return entity.Invoice{}, fmt.Errorf("invoice send: %w", res.InvoiceSend.err())
	}

	if res.InvoiceSend.Invoice == nil {
		return entity.Invoice{ID: invoiceID, Status: entity.InvoiceStatusSent}, nil
	}

	return res.InvoiceSend.Invoice.toEntity(), nil
}

const productCreateMutation = `
mutation ($input: ProductCreateInput!) {
  productCreate(input: $input) {
    didSucceed
    inputErrors { code message path }
    product { id name }
  }
}`

// CreateProduct registers a sellable product tied to an income account.
func (c *Client) CreateProduct(ctx context.Context, name, unitPrice, incomeAccountID string) (string, error) {
	variables := map[string]any{
		"input": map[string]any{
			"businessId":      c.cfg.BusinessID,
			"name":            name,
			"unitPrice":       unitPrice,
			"incomeAccountId": incomeAccountID,
		},
	}

	data, err := c.execute(ctx, productCreateMutation, variables)
	if err != nil {
		return "", fmt.Errorf("product create: %w", err)
	}

	var res struct {
		ProductCreate struct {
			mutationResult
			Product *struct {
				ID string `json:"id"`
			} `json:"product"`
		} `json:"productCreate"`
	}

	err = json.Unmarshal(data, &res)
	if err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if !res.ProductCreate.DidSucceed || res.ProductCreate.Product == nil || res.ProductCreate.Product.ID == "" {
		return "", fmt.Errorf("product create: %w", res.ProductCreate.err())
	}

	return res.ProductCreate.Product.ID, nil
}

const accountsQuery = `
query ($businessId: ID!) {
  business(id: $businessId) {
    accounts(page: 1, pageSize: 200) {
      edges {
        node {
          id
          name
          type { value }
          subtype { value }
          currency { code }
        }
      }
    }
  }
}`

// Accounts lists the ledger accounts of the configured business.
func (c *Client) Accounts(ctx context.Context) ([]entity.Account, error) {
	if c.cfg.BusinessID == "" {
		return nil, fmt.Errorf("wave business id: %w", entity.ErrNotConfigured)
	}

	data, err := c.execute(ctx, accountsQuery, map[string]any{"businessId": c.cfg.BusinessID})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	var res struct {
		Business struct {
			Accounts struct {
				Edges []struct {
					Node struct {
						ID   string `json:"id"`
						Name string `json:"name"`
						Type struct {
							Value string `json:"value"`
						} `json:"type"`
						Subtype struct {
							Value string `json:"value"`
						} `json:"subtype"`
						Currency struct {
							Code string `json:"code"`
						} `json:"currency"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"accounts"`
		} `json:"business"`
	}

	err = json.Unmarshal(data, &res)
	if err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	accounts := make([]entity.Account, 0, len(res.Business.Accounts.Edges))
	for _, e := range res.Business.Accounts.Edges {
		accounts = append(accounts, entity.Account{
			ID:       e.Node.ID,
			Name:     e.Node.Name,
			Type:     e.Node.Type.Value,
			Subtype:  e.Node.Subtype.Value,
			Currency: e.Node.Currency.Code,
		})
	}

	return accounts, nil
}

const productsQuery = `
query ($businessId: ID!) {
  business(id: $businessId) {
    products(page: 1, pageSize: 200) {
      edges {
        node {
          id
          name
          unitPrice
        }
      }
    }
  }
}`

// Products lists the sellable products of the configured business.
func (c *Client) Products(ctx context.Context) ([]entity.Product, error) {
	if c.cfg.BusinessID == "" {
		return nil, fmt.Errorf("wave business id: %w", entity.ErrNotConfigured)
	}

	data, err := c.execute(ctx, productsQuery, map[string]any{"businessId": c.cfg.BusinessID})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	var res struct {
		Business struct {
			Products struct {
				Edges []struct {
					Node entity.Product `json:"node"`
				} `json:"edges"`
			} `json:"products"`
		} `json:"business"`
	}

	err = json.Unmarshal(data, &res)
	if err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	products := make([]entity.Product, 0, len(res.Business.Products.Edges))
	for _, e := range res.Business.Products.Edges {
		products = append(products, e.Node)
	}

	return products, nil
}

const businessesQuery = `
query {
  businesses(page: 1, pageSize: 50) {
    edges {
      node {
        id
        name
      }
    }
  }
}`

// Businesses lists every business visible to the configured API key.
func (c *Client) Businesses(ctx context.Context) ([]entity.Business, error) {
	data, err := c.execute(ctx, businessesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}

	var res struct {
		Businesses struct {
			Edges []struct {
				Node entity.Business `json:"node"`
			} `json:"edges"`
		} `json:"businesses"`
	}

	err = json.Unmarshal(data, &res)
	if err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	businesses := make([]entity.Business, 0, len(res.Businesses.Edges))
	for _, e := range res.Businesses.Edges {
		businesses = append(businesses, e.Node)
	}

	return businesses, nil
}
