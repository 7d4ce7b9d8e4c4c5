package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/domain"
)

// euCountries is the set of EU member state codes the COO rule fires on.
// Hardcoded demo heuristic, not a maintained regulatory dataset.
var euCountries = map[string]bool{
	"AT": true, "BE": true, "BG": true, "HR": true, "CY": true,
	"CZ": true, "DK": true, "EE": true, "FI": true, "FR": true,
	"DE": true, "GR": true, "HU": true, "IE": true, "IT": true,
	"LV": true, "LT": true, "LU": true, "MT": true, "NL": true,
	"PL": true, "PT": true, "RO": true, "SK": true, "SI": true,
	"ES": true, "SE": true,
}

// agriPrefixes are the HS chapter prefixes the PHYTO rule treats as
// agricultural. Broader than the hscode package's phytosanitary predicate,
// matching the original split between the two lists.
var agriPrefixes = []string{"09", "18", "10", "11", "12", "07", "08"}

// routeDestination matches the legacy route convention: an arrow separator
// followed by a trailing 2-uppercase-letter country token.
var routeDestination = regexp.MustCompile(`(?:->|→).*\b([A-Z]{2})\b\s*$`)

// ParseRouteDestination extracts the destination country code from a legacy
// route string ("Douala → Paris FR" yields "FR"). Routes that do not follow
// the convention yield "", which simply keeps country rules from firing.
func ParseRouteDestination(route string) string {
	m := routeDestination.FindStringSubmatch(route)
	if m == nil {
		return ""
	}
	return m[1]
}

// RequirementService derives the compliance documents a shipment requires
type RequirementService struct{}

// NewRequirementService creates a requirement service
func NewRequirementService() *RequirementService {
	return &RequirementService{}
}

// Destination returns a shipment's destination country code, preferring the
// structured field and falling back to the legacy route parser.
func (s *RequirementService) Destination(shipment *domain.Shipment) string {
	if shipment.DestinationCountry != "" {
		return shipment.DestinationCountry
	}
	return ParseRouteDestination(shipment.Route)
}

// Evaluate returns the documents the shipment requires and why. Rules fire
// in a fixed order (COO, PHYTO, INSURANCE); the Required list preserves that
// order because consumers treat it as priority. New rules must append.
// Evaluate never fails: unmatched product references and malformed routes
// mean the corresponding rule does not apply.
func (s *RequirementService) Evaluate(shipment *domain.Shipment, catalog []domain.Product) domain.DocumentRequirement {
	req := domain.DocumentRequirement{
		Required: []domain.DocKey{},
		Reasons:  make(map[domain.DocKey]string),
	}

	byID := make(map[uuid.UUID]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	// Rule 1: Certificate of Origin for EU destinations
	dest := s.Destination(shipment)
	if euCountries[dest] {
		req.Required = append(req.Required, domain.DocCOO)
		req.Reasons[domain.DocCOO] = fmt.Sprintf("Destination %s is an EU member state", dest)
	}

	// Rule 2: Phytosanitary certificate for agricultural line items
	if code, ok := firstAgriculturalCode(shipment.Items, byID); ok {
		req.Required = append(req.Required, domain.DocPhyto)
		req.Reasons[domain.DocPhyto] = fmt.Sprintf("Shipment contains agricultural products (HS %s)", code)
	}

	// Rule 3: Insurance certificate when the incoterm includes insurance
	if shipment.Incoterm == domain.IncotermCIF || shipment.Incoterm == domain.IncotermCIP {
		req.Required = append(req.Required, domain.DocInsurance)
		req.Reasons[domain.DocInsurance] = fmt.Sprintf("Incoterm %s requires seller-provided insurance", shipment.Incoterm)
	}

	return req
}

// firstAgriculturalCode returns the HS code of the first line item whose
// catalog product falls in an agricultural HS chapter. Items referencing
// unknown products are skipped.
func firstAgriculturalCode(items []domain.ShipmentItem, byID map[uuid.UUID]domain.Product) (string, bool) {
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		for _, prefix := range agriPrefixes {
			if strings.HasPrefix(product.HSCode, prefix) {
				return product.HSCode, true
			}
		}
	}
	return "", false
}
