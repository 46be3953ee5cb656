package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/ghuser/inventory/services/inventory/domain"
	"github.com/ghuser/inventory/services/inventory/domain/models"
)

// PartForm carries the raw field values a user entered for a part.
type PartForm struct {
	Source      models.PartSource
	Name        string
	Price       string
	Stock       string
	Min         string
	Max         string
	MachineID   string
	CompanyName string
}

// ProductForm carries the raw field values a user entered for a product.
type ProductForm struct {
	Name  string
	Price string
	Stock string
	Min   string
	Max   string
}

// ParseQuantity parses an integer field. Failures are KindNotANumber.
func ParseQuantity(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.NewValidationError(domain.KindNotANumber, field, raw)
	}
	return n, nil
}

// ParsePrice parses a decimal field. NaN and infinities are KindNotANumber.
func ParsePrice(field, raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, domain.NewValidationError(domain.KindNotANumber, field, raw)
	}
	return f, nil
}

type commonFields struct {
	price           float64
	stock, min, max int
}

func parseCommon(price, stock, min, max string) (commonFields, error) {
	var (
		c   commonFields
		err error
	)
	if c.stock, err = ParseQuantity("stock", stock); err != nil {
		return c, err
	}
	if c.price, err = ParsePrice("price", price); err != nil {
		return c, err
	}
	if c.max, err = ParseQuantity("max", max); err != nil {
		return c, err
	}
	if c.min, err = ParseQuantity("min", min); err != nil {
		return c, err
	}
	return c, nil
}

// BuildPart parses form and returns a validated part with the given id.
// Numeric fields are parsed before any rule is checked.
func BuildPart(id int, form PartForm) (*models.Part, error) {
	c, err := parseCommon(form.Price, form.Stock, form.Min, form.Max)
	if err != nil {
		return nil, err
	}

	var part *models.Part
	switch form.Source {
	case models.SourceInHouse:
		machineID, err := ParseQuantity("machine_id", form.MachineID)
		if err != nil {
			return nil, err
		}
		part = models.NewInHousePart(id, strings.TrimSpace(form.Name), c.price, c.stock, c.min, c.max, machineID)
	case models.SourceOutsourced:
		part = models.NewOutsourcedPart(id, strings.TrimSpace(form.Name), c.price, c.stock, c.min, c.max, strings.TrimSpace(form.CompanyName))
	default:
		return nil, domain.NewValidationError(domain.KindUnknownSource, "source", form.Source.String())
	}

	if err := ValidatePart(part); err != nil {
		return nil, err
	}
	return part, nil
}

// BuildProduct parses form and returns a validated product with the given id.
func BuildProduct(id int, form ProductForm) (*models.Product, error) {
	c, err := parseCommon(form.Price, form.Stock, form.Min, form.Max)
	if err != nil {
		return nil, err
	}
	product := models.NewProduct(id, strings.TrimSpace(form.Name), c.price, c.stock, c.min, c.max)
	if err := ValidateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}
