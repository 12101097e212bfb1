package review

import (
	"context"

	"github.com/aldric144/blkxchange-frontend-new/internal/gateway"
	"github.com/aldric144/blkxchange-frontend-new/internal/models"
)

// VendorApplications binds the workflow to the vendor application endpoints.
// The secret is captured at construction; a queue lives no longer than the
// admin view that created it.
func VendorApplications(gw *gateway.Client, secret string) Kind[models.VendorApplication] {
	return Kind[models.VendorApplication]{
		Name: "vendor-application",
		List: func(ctx context.Context) ([]models.VendorApplication, error) {
			return gw.ListVendorApplications(ctx, secret)
		},
		Approve: func(ctx context.Context, id string) error {
			return gw.ApproveVendor(ctx, secret, id)
		},
		Reject: func(ctx context.Context, id, reason string) error {
			return gw.RejectVendor(ctx, secret, id, reason)
		},
		ID:     func(a models.VendorApplication) string { return a.ID },
		Status: func(a models.VendorApplication) models.Status { return a.Status },
		Label:  func(a models.VendorApplication) string { return a.BusinessName },
	}
}

// ProductSubmissions binds the workflow to the products-enhanced endpoints.
// The listing also carries the secret so the admin product queue is gated the
// same way as vendor applications.
func ProductSubmissions(gw *gateway.Client, secret string) Kind[models.ProductSubmission] {
	return Kind[models.ProductSubmission]{
		Name: "product-submission",
		List: func(ctx context.Context) ([]models.ProductSubmission, error) {
			return gw.ListProductSubmissions(ctx, secret, "")
		},
		Approve: func(ctx context.Context, id string) error {
			return gw.ApproveProduct(ctx, secret, id)
		},
		Reject: func(ctx context.Context, id, reason string) error {
			return gw.RejectProduct(ctx, secret, id, reason)
		},
		ID:     func(p models.ProductSubmission) string { return p.ID },
		Status: func(p models.ProductSubmission) models.Status { return p.Status },
		Label:  func(p models.ProductSubmission) string { return p.Name },
	}
}
