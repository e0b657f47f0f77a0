package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CompanySearchResult is one brand returned by the lookup service.
type CompanySearchResult struct {
	BrandID string  `json:"brandId"`
	Name    string  `json:"name"`
	Domain  string  `json:"domain"`
	Icon    string  `json:"icon"`
	Score   float64 `json:"_score"`
}

// BrandClient queries the BrandFetch search API for company names and icons,
// falling back to a fixed local list when the API is unreachable or empty.
type BrandClient struct {
	Client   *http.Client
	BaseURL  string
	ClientID string
}

func NewBrandClient(clientID string) *BrandClient {
	return &BrandClient{
		Client:   &http.Client{Timeout: 10 * time.Second},
		BaseURL:  "https://api.brandfetch.io/v2",
		ClientID: clientID,
	}
}

// FallbackIconURL derives a brand icon URL from a company name by
// lower-casing it and stripping spaces.
func FallbackIconURL(companyName string) string {
	clean := strings.ToLower(strings.Join(strings.Fields(companyName), ""))
	return fmt.Sprintf("https://cdn.brandfetch.io/%s.com?c=1idy7WQ5YtpRvbd1DQy", clean)
}

// SearchCompanies looks a query up against BrandFetch. Queries shorter than
// two characters return nothing; a failed or empty remote lookup falls back
// to the local company list.
func (bc *BrandClient) SearchCompanies(ctx context.Context, query string) ([]CompanySearchResult, error) {
	if len(query) < 2 {
		return []CompanySearchResult{}, nil
	}

	results, err := bc.fetchFromAPI(ctx, query)
	if err != nil {
		zap.L().Warn("brand search failed, using fallback list", zap.String("query", query), zap.Error(err))
		return filterFallback(query), nil
	}
	if len(results) == 0 {
		return filterFallback(query), nil
	}
	return results, nil
}

func (bc *BrandClient) fetchFromAPI(ctx context.Context, query string) ([]CompanySearchResult, error) {
	apiURL := fmt.Sprintf("%s/search/%s?c=%s", bc.BaseURL, url.PathEscape(query), url.QueryEscape(bc.ClientID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %v", err)
	}

	resp, err := bc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send search request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brandfetch API returned non-200 status: %s", resp.Status)
	}

	var results []CompanySearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode brandfetch response: %v", err)
	}
	return results, nil
}

func filterFallback(query string) []CompanySearchResult {
	term := strings.ToLower(query)
	out := make([]CompanySearchResult, 0)
	for _, c := range fallbackCompanies {
		if strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, c)
		}
	}
	return out
}

// Fallback company data used when the API fails or for development.
var fallbackCompanies = []CompanySearchResult{
	{BrandID: "google", Name: "Google", Domain: "google.com", Icon: FallbackIconURL("Google"), Score: 1},
	{BrandID: "microsoft", Name: "Microsoft", Domain: "microsoft.com", Icon: FallbackIconURL("Microsoft"), Score: 1},
	{BrandID: "apple", Name: "Apple", Domain: "apple.com", Icon: FallbackIconURL("Apple"), Score: 1},
	{BrandID: "amazon", Name: "Amazon", Domain: "amazon.com", Icon: FallbackIconURL("Amazon"), Score: 1},
	{BrandID: "meta", Name: "Meta", Domain: "meta.com", Icon: FallbackIconURL("Meta"), Score: 1},
	{BrandID: "netflix", Name: "Netflix", Domain: "netflix.com", Icon: FallbackIconURL("Netflix"), Score: 1},
	{BrandID: "tesla", Name: "Tesla", Domain: "tesla.com", Icon: FallbackIconURL("Tesla"), Score: 1},
	{BrandID: "uber", Name: "Uber", Domain: "uber.com", Icon: FallbackIconURL("Uber"), Score: 1},
	{BrandID: "airbnb", Name: "Airbnb", Domain: "airbnb.com", Icon: FallbackIconURL("Airbnb"), Score: 1},
	{BrandID: "shopify", Name: "Shopify", Domain: "shopify.com", Icon: FallbackIconURL("Shopify"), Score: 1},
	{BrandID: "spotify", Name: "Spotify", Domain: "spotify.com", Icon: FallbackIconURL("Spotify"), Score: 1},
	{BrandID: "adobe", Name: "Adobe", Domain: "adobe.com", Icon: FallbackIconURL("Adobe"), Score: 1},
	{BrandID: "salesforce", Name: "Salesforce", Domain: "salesforce.com", Icon: FallbackIconURL("Salesforce"), Score: 1},
	{BrandID: "openai", Name: "OpenAI", Domain: "openai.com", Icon: FallbackIconURL("OpenAI"), Score: 1},
	{BrandID: "stripe", Name: "Stripe", Domain: "stripe.com", Icon: FallbackIconURL("Stripe"), Score: 1},
}
