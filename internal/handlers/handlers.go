package handlers

import (
	"html/template"
	"net/http"

	"github.com/aldric144/blkxchange-frontend-new/internal/gateway"
	"github.com/aldric144/blkxchange-frontend-new/internal/models"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

type Handler struct {
	Gateway   *gateway.Client
	Store     *sessions.CookieStore
	Templates *template.Template
	Log       *zap.Logger
	Login     LoginWidget
}

func New(gw *gateway.Client, store *sessions.CookieStore, log *zap.Logger, templateGlob string, login LoginWidget) *Handler {
	if login == nil {
		login = NoLoginWidget()
	}
	return &Handler{
		Gateway:   gw,
		Store:     store,
		Templates: template.Must(template.ParseGlob(templateGlob)),
		Log:       log,
		Login:     login,
	}
}

func (h *Handler) render(w http.ResponseWriter, name string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["LoginWidget"] = h.Login.MountHTML()
	if err := h.Templates.ExecuteTemplate(w, name, data); err != nil {
		h.Log.Error("render failed", zap.String("template", name), zap.Error(err))
	}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Gateway.GetImpactStats(r.Context())
	if err != nil {
		h.Log.Warn("impact stats unavailable for landing", zap.Error(err))
		stats = models.ImpactStats{}
	}
	h.render(w, "index.html", map[string]interface{}{
		"Stats": stats,
	})
}

func (h *Handler) Marketplace(w http.ResponseWriter, r *http.Request) {
	category := models.ProductCategory(r.URL.Query().Get("category"))

	data := map[string]interface{}{
		"Categories": models.ProductCategories(),
		"Selected":   category,
	}
	products, err := h.Gateway.GetProducts(r.Context(), category)
	if err != nil {
		h.Log.Error("fetch products failed", zap.Error(err))
		data["LoadError"] = true
		products = []models.Product{}
	}
	data["Products"] = products
	h.render(w, "marketplace.html", data)
}

func (h *Handler) Professionals(w http.ResponseWriter, r *http.Request) {
	category := models.ProfessionalCategory(r.URL.Query().Get("category"))

	data := map[string]interface{}{
		"Categories": models.ProfessionalCategories(),
		"Selected":   category,
	}
	pros, err := h.Gateway.GetProfessionals(r.Context(), category)
	if err != nil {
		h.Log.Error("fetch professionals failed", zap.Error(err))
		data["LoadError"] = true
		pros = []models.Professional{}
	}
	data["Professionals"] = pros
	h.render(w, "professionals.html", data)
}

func (h *Handler) Impact(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{}
	stats, err := h.Gateway.GetImpactStats(r.Context())
	if err != nil {
		h.Log.Error("fetch impact stats failed", zap.Error(err))
		data["LoadError"] = true
	}
	data["Stats"] = stats
	h.render(w, "impact.html", data)
}

func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, "about.html", nil)
}

func (h *Handler) VendorAgreement(w http.ResponseWriter, r *http.Request) {
	h.render(w, "agreement.html", nil)
}
