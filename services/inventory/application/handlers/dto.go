package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventory/services/inventory/domain"
	"github.com/ghuser/inventory/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/inventory/services/inventory/domain/services"
)

// FormValue is a numeric request field as the user typed it. A JSON string
// is taken unquoted; any other JSON value is kept as its raw text. Parsing
// and its not_a_number error stay in the domain layer, which knows the field.
type FormValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
	default:
		*v = FormValue(b)
	}
	return nil
}

// PartRequest is the request body for creating or modifying a part.
type PartRequest struct {
	Source      string    `json:"source"                 validate:"required"                           example:"in_house"`
	Name        string    `json:"name"                   validate:"max=255"                            example:"Saddle Bags"`
	Price       FormValue `json:"price"                  swaggertype:"string"                          example:"85.0"`
	Stock       FormValue `json:"stock"                  swaggertype:"string"                          example:"5"`
	Min         FormValue `json:"min"                    swaggertype:"string"                          example:"1"`
	Max         FormValue `json:"max"                    swaggertype:"string"                          example:"10"`
	MachineID   FormValue `json:"machine_id,omitempty"   swaggertype:"string"                          example:"75"`
	CompanyName string    `json:"company_name,omitempty" validate:"max=255"                            example:"Acme Leather"`
} // @name PartRequest

func (r *PartRequest) form() (domainsvcs.PartForm, error) {
	source, err := models.ParsePartSource(r.Source)
	if err != nil {
		return domainsvcs.PartForm{}, domain.NewValidationError(domain.KindUnknownSource, "source", r.Source)
	}
	return domainsvcs.PartForm{
		Source:      source,
		Name:        r.Name,
		Price:       string(r.Price),
		Stock:       string(r.Stock),
		Min:         string(r.Min),
		Max:         string(r.Max),
		MachineID:   string(r.MachineID),
		CompanyName: r.CompanyName,
	}, nil
}

// ProductRequest is the request body for creating or modifying a product.
// PartIDs is only read on creation.
type ProductRequest struct {
	Name    string    `json:"name"               validate:"max=255"         example:"Road Bike"`
	Price   FormValue `json:"price"              swaggertype:"string"       example:"999.99"`
	Stock   FormValue `json:"stock"              swaggertype:"string"       example:"3"`
	Min     FormValue `json:"min"                swaggertype:"string"       example:"1"`
	Max     FormValue `json:"max"                swaggertype:"string"       example:"5"`
	PartIDs []int     `json:"part_ids,omitempty" validate:"dive,gt=0"`
} // @name ProductRequest

func (r *ProductRequest) form() domainsvcs.ProductForm {
	return domainsvcs.ProductForm{
		Name:  r.Name,
		Price: string(r.Price),
		Stock: string(r.Stock),
		Min:   string(r.Min),
		Max:   string(r.Max),
	}
}

// AssociatePartRequest is the request body for POST /products/{id}/parts.
type AssociatePartRequest struct {
	PartID int `json:"part_id" validate:"required,gt=0" example:"1"`
} // @name AssociatePartRequest

// PartResponse is the JSON representation of a part.
type PartResponse struct {
	ID          int     `json:"id"                     example:"1"`
	Name        string  `json:"name"                   example:"Saddle Bags"`
	Price       float64 `json:"price"                  example:"85"`
	Stock       int     `json:"stock"                  example:"5"`
	Min         int     `json:"min"                    example:"1"`
	Max         int     `json:"max"                    example:"10"`
	Source      string  `json:"source"                 example:"in_house"`
	MachineID   *int    `json:"machine_id,omitempty"   example:"75"`
	CompanyName string  `json:"company_name,omitempty" example:""`
} // @name PartResponse

// ProductResponse is the JSON representation of a product and its parts.
type ProductResponse struct {
	ID              int            `json:"id"               example:"10000"`
	Name            string         `json:"name"             example:"Road Bike (Commuter)"`
	Price           float64        `json:"price"            example:"999.99"`
	Stock           int            `json:"stock"            example:"3"`
	Min             int            `json:"min"              example:"1"`
	Max             int            `json:"max"              example:"5"`
	AssociatedParts []PartResponse `json:"associated_parts"`
} // @name ProductResponse

// NextIDResponse reports the id the next created entity will receive.
type NextIDResponse struct {
	NextID int `json:"next_id" example:"1"`
} // @name NextIDResponse

// ErrorResponse documents the error body written by errhttp.
type ErrorResponse struct {
	Error string `json:"error" example:"name: name must not be empty"`
	Kind  string `json:"kind,omitempty" example:"empty_name"`
	Field string `json:"field,omitempty" example:"name"`
} // @name ErrorResponse

func toPartResponse(p *models.Part) PartResponse {
	resp := PartResponse{
		ID:     p.ID,
		Name:   p.Name,
		Price:  p.Price,
		Stock:  p.Stock,
		Min:    p.Min,
		Max:    p.Max,
		Source: p.Source.String(),
	}
	if p.IsInHouse() {
		machineID := p.MachineID
		resp.MachineID = &machineID
	} else {
		resp.CompanyName = p.CompanyName
	}
	return resp
}

func toPartResponses(parts []*models.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, toPartResponse(p))
	}
	return out
}

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price,
		Stock:           p.Stock,
		Min:             p.Min,
		Max:             p.Max,
		AssociatedParts: toPartResponses(p.AllAssociatedParts()),
	}
}

func toProductResponses(products []*models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

// pathID reads an integer URL parameter. A malformed value is reported as
// not_a_number against the parameter name.
func pathID(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(domain.KindNotANumber, param, raw)
	}
	return id, nil
}
