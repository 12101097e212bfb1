package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/aldric144/blkxchange-frontend-new/internal/gateway"
	"github.com/aldric144/blkxchange-frontend-new/internal/models"

	"go.uber.org/zap"
)

func (h *Handler) formError(w http.ResponseWriter, target, msg string) {
	w.Header().Set("HX-Retarget", target)
	w.Header().Set("HX-Reswap", "innerHTML")
	fmt.Fprintf(w, `<div class="text-red-600 text-sm">%s</div>`, template.HTMLEscapeString(msg))
}

func apiDetail(err error, fallback string) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return "Error: " + apiErr.Detail
	}
	return fallback
}

func (h *Handler) VendorRegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "vendor_register.html", nil)
}

func (h *Handler) VendorRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	in := models.VendorCreate{
		Email:               r.FormValue("email"),
		Name:                r.FormValue("name"),
		BusinessName:        r.FormValue("business_name"),
		BusinessDescription: r.FormValue("business_description"),
		Phone:               r.FormValue("phone"),
	}

	if _, err := h.Gateway.CreateVendor(r.Context(), in); err != nil {
		h.Log.Error("vendor signup failed", zap.Error(err))
		h.formError(w, "#error", apiDetail(err, "Failed to submit. Please try again."))
		return
	}

	w.Header().Set("HX-Redirect", "/vendor-register/thanks")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) VendorRegisterThanks(w http.ResponseWriter, r *http.Request) {
	h.render(w, "vendor_thanks.html", map[string]interface{}{
		"Heading": "Application Submitted!",
		"Message": "Thank you for your interest in joining BlkXchange. Our team will review your application and contact you within 2-3 business days.",
	})
}

func (h *Handler) VendorApplyPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "vendor_apply.html", map[string]interface{}{
		"Categories":  models.ProductCategories(),
		"PriceRanges": models.PriceRanges(),
	})
}

func splitImageURLs(raw string) []string {
	urls := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}

func (h *Handler) VendorApplySubmit(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("agreement_accepted") == "" {
		h.formError(w, "#error", "Please accept the Vendor Agreement to continue")
		return
	}

	in := models.VendorApplicationCreate{
		BusinessName:      r.FormValue("business_name"),
		ContactName:       r.FormValue("contact_name"),
		Email:             r.FormValue("email"),
		Phone:             r.FormValue("phone"),
		Address:           r.FormValue("address"),
		Website:           r.FormValue("website"),
		Category:          models.ProductCategory(r.FormValue("category")),
		Description:       r.FormValue("description"),
		PriceRange:        models.PriceRange(r.FormValue("price_range")),
		FulfillmentMethod: models.FulfillmentMethod(r.FormValue("fulfillment_method")),
		ImageURLs:         splitImageURLs(r.FormValue("image_urls")),
		AgreementAccepted: true,
	}

	if _, err := h.Gateway.CreateVendorApplication(r.Context(), in); err != nil {
		h.Log.Error("vendor application failed", zap.Error(err))
		h.formError(w, "#error", apiDetail(err, "Failed to submit application. Please try again."))
		return
	}

	w.Header().Set("HX-Redirect", "/vendor-apply/thanks")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) VendorApplyThanks(w http.ResponseWriter, r *http.Request) {
	h.render(w, "vendor_thanks.html", map[string]interface{}{
		"Heading": "Application Submitted Successfully!",
		"Message": "Thank you for applying to become a vendor on BlkXchange. Our admin team will review your application and contact you within 2-3 business days.",
	})
}

// VendorDashboard lists the vendor's own submissions. The vendor id travels in
// the query string, mirroring how the hosted frontend keys the dashboard.
func (h *Handler) VendorDashboard(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendor_id")

	data := map[string]interface{}{
		"VendorID":   vendorID,
		"Categories": models.ProductCategories(),
	}
	if vendorID == "" {
		h.render(w, "vendor_dashboard.html", data)
		return
	}

	subs, err := h.Gateway.ListProductSubmissions(r.Context(), "", vendorID)
	if err != nil {
		h.Log.Error("fetch submissions failed", zap.String("vendor_id", vendorID), zap.Error(err))
		data["LoadError"] = true
		subs = []models.ProductSubmission{}
	}
	data["Submissions"] = subs
	h.render(w, "vendor_dashboard.html", data)
}

func (h *Handler) ProductSubmissionCreate(w http.ResponseWriter, r *http.Request) {
	vendorID := r.FormValue("vendor_id")
	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	quantity, _ := strconv.Atoi(r.FormValue("quantity"))

	in := models.ProductSubmissionCreate{
		VendorID:    vendorID,
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Category:    models.ProductCategory(r.FormValue("category")),
		Quantity:    quantity,
		ImageURLs:   splitImageURLs(r.FormValue("image_urls")),
	}

	if _, err := h.Gateway.CreateProductSubmission(r.Context(), in); err != nil {
		h.Log.Error("product submission failed", zap.Error(err))
		h.formError(w, "#error", apiDetail(err, "Failed to submit product. Please try again."))
		return
	}

	w.Header().Set("HX-Redirect", "/vendor-dashboard?vendor_id="+url.QueryEscape(vendorID))
	w.WriteHeader(http.StatusOK)
}
