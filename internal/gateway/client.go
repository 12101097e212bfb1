package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aldric144/blkxchange-frontend-new/internal/models"

	"go.uber.org/zap"
)

// AdminSecretHeader carries the shared admin password on privileged calls.
const AdminSecretHeader = "X-Admin-Secret"

// APIError is a non-2xx response from the backend. Detail is the backend's
// structured message when the body has the {"detail": ...} shape, otherwise a
// generic fallback.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Detail, e.StatusCode)
}

// Unauthorized reports whether the call was refused for a missing or wrong
// admin secret.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Client is the typed facade over the remote marketplace API. It holds no
// state beyond connection settings; every entity it returns is owned by the
// backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, secret string, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if secret != "" {
		req.Header.Set(AdminSecretHeader, secret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: resp.Status}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(data, &payload) == nil && payload.Detail != "" {
			apiErr.Detail = payload.Detail
		}
	}

	c.log.Warn("api request failed",
		zap.Int("status", resp.StatusCode),
		zap.String("detail", apiErr.Detail))
	return apiErr
}

func (c *Client) GetProducts(ctx context.Context, category models.ProductCategory) ([]models.Product, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", string(category))
	}
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", q, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, "", nil, &product)
	return product, err
}

func (c *Client) GetVendors(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := c.do(ctx, http.MethodGet, "/api/vendors", nil, "", nil, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (c *Client) GetVendor(ctx context.Context, id string) (models.Vendor, error) {
	var vendor models.Vendor
	err := c.do(ctx, http.MethodGet, "/api/vendors/"+url.PathEscape(id), nil, "", nil, &vendor)
	return vendor, err
}

func (c *Client) CreateVendor(ctx context.Context, in models.VendorCreate) (models.Vendor, error) {
	var vendor models.Vendor
	err := c.do(ctx, http.MethodPost, "/api/vendors", nil, "", in, &vendor)
	return vendor, err
}

func (c *Client) GetProfessionals(ctx context.Context, category models.ProfessionalCategory) ([]models.Professional, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", string(category))
	}
	var pros []models.Professional
	if err := c.do(ctx, http.MethodGet, "/api/professionals", q, "", nil, &pros); err != nil {
		return nil, err
	}
	return pros, nil
}

func (c *Client) GetProfessional(ctx context.Context, id string) (models.Professional, error) {
	var pro models.Professional
	err := c.do(ctx, http.MethodGet, "/api/professionals/"+url.PathEscape(id), nil, "", nil, &pro)
	return pro, err
}

func (c *Client) GetImpactStats(ctx context.Context) (models.ImpactStats, error) {
	var stats models.ImpactStats
	err := c.do(ctx, http.MethodGet, "/api/impact", nil, "", nil, &stats)
	return stats, err
}

func (c *Client) ListVendorApplications(ctx context.Context, secret string) ([]models.VendorApplication, error) {
	var apps []models.VendorApplication
	if err := c.do(ctx, http.MethodGet, "/api/vendor-applications", nil, secret, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) CreateVendorApplication(ctx context.Context, in models.VendorApplicationCreate) (models.VendorApplication, error) {
	var app models.VendorApplication
	err := c.do(ctx, http.MethodPost, "/api/vendor-applications", nil, "", in, &app)
	return app, err
}

func (c *Client) ApproveVendor(ctx context.Context, secret, id string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/approve-vendor/"+url.PathEscape(id), nil, secret, nil, nil)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// RejectVendor sends the rejection; an empty reason is valid and still sent.
func (c *Client) RejectVendor(ctx context.Context, secret, id, reason string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/reject-vendor/"+url.PathEscape(id), nil, secret, rejectRequest{Reason: reason}, nil)
}

// ListProductSubmissions lists products-enhanced records, optionally scoped to
// one vendor. The secret is sent whenever the caller has one; vendor-facing
// callers pass an empty string.
func (c *Client) ListProductSubmissions(ctx context.Context, secret, vendorID string) ([]models.ProductSubmission, error) {
	q := url.Values{}
	if vendorID != "" {
		q.Set("vendor_id", vendorID)
	}
	var subs []models.ProductSubmission
	if err := c.do(ctx, http.MethodGet, "/api/products-enhanced", q, secret, nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (c *Client) CreateProductSubmission(ctx context.Context, in models.ProductSubmissionCreate) (models.ProductSubmission, error) {
	var sub models.ProductSubmission
	err := c.do(ctx, http.MethodPost, "/api/products-enhanced", nil, "", in, &sub)
	return sub, err
}

func (c *Client) ApproveProduct(ctx context.Context, secret, id string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/approve-product/"+url.PathEscape(id), nil, secret, nil, nil)
}

func (c *Client) RejectProduct(ctx context.Context, secret, id, reason string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/reject-product/"+url.PathEscape(id), nil, secret, rejectRequest{Reason: reason}, nil)
}

// Search runs a cross-entity query. Callers are expected to skip empty
// queries; the widgets never reach here with blank input.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	var payload struct {
		Results []models.SearchResult `json:"results"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/search", q, "", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var payload struct {
		Notifications []models.Notification `json:"notifications"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, "", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/notifications/"+url.PathEscape(id)+"/read", nil, "", nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/notifications/read-all", nil, "", nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notifications/"+url.PathEscape(id), nil, "", nil, nil)
}
