package models

type ProductCategory string

const (
	CategoryApparel  ProductCategory = "apparel"
	CategoryBeauty   ProductCategory = "beauty"
	CategoryBooks    ProductCategory = "books"
	CategoryArt      ProductCategory = "art"
	CategoryTech     ProductCategory = "tech"
	CategoryFood     ProductCategory = "food"
	CategoryWellness ProductCategory = "wellness"
	CategoryHome     ProductCategory = "home"
	CategoryJewelry  ProductCategory = "jewelry"
	CategoryOther    ProductCategory = "other"
)

func ProductCategories() []ProductCategory {
	return []ProductCategory{
		CategoryApparel, CategoryBeauty, CategoryBooks, CategoryArt, CategoryTech,
		CategoryFood, CategoryWellness, CategoryHome, CategoryJewelry, CategoryOther,
	}
}

type ProfessionalCategory string

const (
	ProfessionalHealth     ProfessionalCategory = "health"
	ProfessionalLegal      ProfessionalCategory = "legal"
	ProfessionalFinance    ProfessionalCategory = "finance"
	ProfessionalCoaching   ProfessionalCategory = "coaching"
	ProfessionalConsulting ProfessionalCategory = "consulting"
	ProfessionalEducation  ProfessionalCategory = "education"
	ProfessionalOther      ProfessionalCategory = "other"
)

func ProfessionalCategories() []ProfessionalCategory {
	return []ProfessionalCategory{
		ProfessionalHealth, ProfessionalLegal, ProfessionalFinance, ProfessionalCoaching,
		ProfessionalConsulting, ProfessionalEducation, ProfessionalOther,
	}
}

type PriceRange string

const (
	PriceUnder25    PriceRange = "<$25"
	PriceRange2550  PriceRange = "$25-$50"
	PriceRange50100 PriceRange = "$50-$100"
	PriceOver100    PriceRange = ">$100"
)

func PriceRanges() []PriceRange {
	return []PriceRange{PriceUnder25, PriceRange2550, PriceRange50100, PriceOver100}
}

type FulfillmentMethod string

const (
	FulfillmentShipping FulfillmentMethod = "shipping"
	FulfillmentLocal    FulfillmentMethod = "local"
)

type Vendor struct {
	ID                    string  `json:"id"`
	Email                 string  `json:"email"`
	Name                  string  `json:"name"`
	BusinessName          string  `json:"business_name"`
	BusinessDescription   string  `json:"business_description"`
	Phone                 string  `json:"phone,omitempty"`
	StripeAccountID       string  `json:"stripe_account_id,omitempty"`
	Verified              bool    `json:"verified"`
	TotalSales            float64 `json:"total_sales"`
	CommunityContribution float64 `json:"community_contribution"`
	CreatedAt             string  `json:"created_at"`
}

type VendorCreate struct {
	Email               string `json:"email"`
	Name                string `json:"name"`
	BusinessName        string `json:"business_name"`
	BusinessDescription string `json:"business_description"`
	Phone               string `json:"phone,omitempty"`
}

type Product struct {
	ID           string          `json:"id"`
	VendorID     string          `json:"vendor_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	Category     ProductCategory `json:"category"`
	ImageURL     string          `json:"image_url,omitempty"`
	Stock        int             `json:"stock"`
	Rating       float64         `json:"rating"`
	ReviewsCount int             `json:"reviews_count"`
	CreatedAt    string          `json:"created_at"`
}

type Professional struct {
	ID           string               `json:"id"`
	Email        string               `json:"email"`
	Name         string               `json:"name"`
	Title        string               `json:"title"`
	Category     ProfessionalCategory `json:"category"`
	Bio          string               `json:"bio"`
	Credentials  string               `json:"credentials"`
	HourlyRate   *float64             `json:"hourly_rate,omitempty"`
	Phone        string               `json:"phone,omitempty"`
	ImageURL     string               `json:"image_url,omitempty"`
	Verified     bool                 `json:"verified"`
	Rating       float64              `json:"rating"`
	ReviewsCount int                  `json:"reviews_count"`
	CreatedAt    string               `json:"created_at"`
}

// HourlyRateValue unwraps the optional rate for display; zero means unset.
func (p Professional) HourlyRateValue() float64 {
	if p.HourlyRate != nil {
		return *p.HourlyRate
	}
	return 0
}

type ImpactStats struct {
	TotalDonations       float64 `json:"total_donations"`
	TotalOrders          int     `json:"total_orders"`
	TotalVendors         int     `json:"total_vendors"`
	TotalProfessionals   int     `json:"total_professionals"`
	HBCUDonations        float64 `json:"hbcu_donations"`
	ScholarshipDonations float64 `json:"scholarship_donations"`
	NonprofitDonations   float64 `json:"nonprofit_donations"`
}

type VendorApplication struct {
	ID                string            `json:"id"`
	BusinessName      string            `json:"business_name"`
	ContactName       string            `json:"contact_name"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Address           string            `json:"address"`
	Website           string            `json:"website,omitempty"`
	Category          ProductCategory   `json:"category"`
	Description       string            `json:"description"`
	PriceRange        PriceRange        `json:"price_range"`
	FulfillmentMethod FulfillmentMethod `json:"fulfillment_method"`
	ImageURLs         []string          `json:"image_urls"`
	Status            Status            `json:"status"`
	AgreementAccepted bool              `json:"agreement_accepted"`
	CreatedAt         string            `json:"created_at"`
	UpdatedAt         string            `json:"updated_at"`
}

type VendorApplicationCreate struct {
	BusinessName      string            `json:"business_name"`
	ContactName       string            `json:"contact_name"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Address           string            `json:"address"`
	Website           string            `json:"website,omitempty"`
	Category          ProductCategory   `json:"category"`
	Description       string            `json:"description"`
	PriceRange        PriceRange        `json:"price_range"`
	FulfillmentMethod FulfillmentMethod `json:"fulfillment_method"`
	ImageURLs         []string          `json:"image_urls"`
	AgreementAccepted bool              `json:"agreement_accepted"`
}

// ProductSubmission is the products-enhanced record that goes through admin
// review before it appears in the public catalog.
type ProductSubmission struct {
	ID           string          `json:"id"`
	VendorID     string          `json:"vendor_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	Category     ProductCategory `json:"category"`
	Quantity     int             `json:"quantity"`
	ImageURLs    []string        `json:"image_urls"`
	Status       Status          `json:"status"`
	Rating       float64         `json:"rating"`
	ReviewsCount int             `json:"reviews_count"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

type ProductSubmissionCreate struct {
	VendorID    string          `json:"vendor_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    ProductCategory `json:"category"`
	Quantity    int             `json:"quantity"`
	ImageURLs   []string        `json:"image_urls"`
}

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	Timestamp string           `json:"timestamp"`
	ActionURL string           `json:"actionUrl,omitempty"`
}

type SearchResultType string

const (
	SearchResultVendor       SearchResultType = "vendor"
	SearchResultProduct      SearchResultType = "product"
	SearchResultProfessional SearchResultType = "professional"
	SearchResultOrder        SearchResultType = "order"
)

type SearchResult struct {
	ID       string           `json:"id"`
	Type     SearchResultType `json:"type"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	URL      string           `json:"url"`
}
