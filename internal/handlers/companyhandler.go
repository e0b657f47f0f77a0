package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yash-4120/applyflow/internal/integrations"
)

// CompanyHandler fronts the brand lookup service for icon auto-fill.
type CompanyHandler struct {
	Brands *integrations.BrandClient
}

func NewCompanyHandler(b *integrations.BrandClient) *CompanyHandler {
	return &CompanyHandler{Brands: b}
}

// Search is GET /companies/search?q=. Lookup failures degrade to the local
// fallback list inside the client, so this only errors on bad input.
func (h *CompanyHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondError(c, http.StatusBadRequest, errBadRequest, "Search query is required")
		return
	}

	results, err := h.Brands.SearchCompanies(c.Request.Context(), query)
	if err != nil {
		respondError(c, http.StatusInternalServerError, errInternal, err.Error())
		return
	}

	respondOK(c, http.StatusOK, gin.H{"companies": results, "total": len(results)}, "Companies retrieved successfully")
}
