// Package services contains stateless domain services for the inventory bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"strconv"
	"strings"

	"github.com/ghuser/inventory/services/inventory/domain"
	"github.com/ghuser/inventory/services/inventory/domain/models"
)

// NameNonEmpty reports whether name has at least one non-whitespace character.
func NameNonEmpty(name string) bool {
	return strings.TrimSpace(name) != ""
}

// MinMaxValid reports whether 0 < min <= max.
// The same rule applies to parts and products on both add and modify.
func MinMaxValid(min, max int) bool {
	return min > 0 && min <= max
}

// StockInBounds reports whether min <= stock <= max.
func StockInBounds(min, max, stock int) bool {
	return min <= stock && stock <= max
}

// PriceValid reports whether price is non-negative.
func PriceValid(price float64) bool {
	return price >= 0
}

// ProductDeletable reports whether product has no associated parts.
func ProductDeletable(product *models.Product) bool {
	return product != nil && !product.HasAssociatedParts()
}

// ValidatePart checks a constructed part against the inventory rules.
// Rules are applied in order: name, min/max, stock, price, source field.
func ValidatePart(part *models.Part) error {
	if part == nil {
		return domain.NewValidationError(domain.KindNoSelection, "", "")
	}
	if err := validateCommon(part.Name, part.Price, part.Stock, part.Min, part.Max); err != nil {
		return err
	}
	switch part.Source {
	case models.SourceInHouse:
	case models.SourceOutsourced:
		if !NameNonEmpty(part.CompanyName) {
			return domain.NewValidationError(domain.KindEmptyName, "company_name", part.CompanyName)
		}
	default:
		return domain.NewValidationError(domain.KindUnknownSource, "source", part.Source.String())
	}
	return nil
}

// ValidateProduct checks a constructed product against the inventory rules.
func ValidateProduct(product *models.Product) error {
	if product == nil {
		return domain.NewValidationError(domain.KindNoSelection, "", "")
	}
	return validateCommon(product.Name, product.Price, product.Stock, product.Min, product.Max)
}

func validateCommon(name string, price float64, stock, min, max int) error {
	if !NameNonEmpty(name) {
		return domain.NewValidationError(domain.KindEmptyName, "name", name)
	}
	if !MinMaxValid(min, max) {
		return domain.NewValidationError(domain.KindInvalidRange, "min", strconv.Itoa(min))
	}
	if !StockInBounds(min, max, stock) {
		return domain.NewValidationError(domain.KindStockOutOfBounds, "stock", strconv.Itoa(stock))
	}
	if !PriceValid(price) {
		return domain.NewValidationError(domain.KindInvalidPrice, "price", strconv.FormatFloat(price, 'f', -1, 64))
	}
	return nil
}
