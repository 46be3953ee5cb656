package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	pkgvalidator "github.com/ghuser/inventory/pkg/validator"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// ProductHandlers serves the /products endpoints.
type ProductHandlers struct {
	svc *appsvcs.Services
}

// NewProductHandlers returns ProductHandlers backed by the given services.
func NewProductHandlers(svc *appsvcs.Services) *ProductHandlers {
	return &ProductHandlers{svc: svc}
}

// List searches products.
//
//	@Summary		List products
//	@Description	Lists every product, or the products whose name or id contains q
//	@Tags			products
//	@Produce		json
//	@Param			q	query		string	false	"Name or id fragment"
//	@Success		200	{object}	httpx.ListResponse[ProductResponse]
//	@Router			/products [get]
func (h *ProductHandlers) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Product.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.NewList(toProductResponses(products)))
}

// NextID reports the id the next created product will receive.
//
//	@Summary	Next product id
//	@Tags		products
//	@Produce	json
//	@Success	200	{object}	NextIDResponse
//	@Router		/products/next-id [get]
func (h *ProductHandlers) NextID(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, NextIDResponse{NextID: h.svc.Product.NextID(r.Context())})
}

// Create adds a product with an optional initial set of parts.
//
//	@Summary	Create product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ProductRequest	true	"Product fields"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/products [post]
func (h *ProductHandlers) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}
	product, err := h.svc.Product.Create(r.Context(), req.form(), req.PartIDs)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toProductResponse(product))
}

// Get returns one product with its associated parts.
//
//	@Summary	Get product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product id"
//	@Success	200	{object}	ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (h *ProductHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	product, err := h.svc.Product.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}

// Update modifies a product's own fields and keeps its associations.
//
//	@Summary	Modify product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Product id"
//	@Param		request	body		ProductRequest	true	"Product fields"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (h *ProductHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}
	product, err := h.svc.Product.Update(r.Context(), id, req.form())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}

// Delete removes a product. Products with associated parts are refused.
//
//	@Summary	Delete product
//	@Tags		products
//	@Param		id	path	int	true	"Product id"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (h *ProductHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if err := h.svc.Product.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}

// AssociatePart attaches a part to a product.
//
//	@Summary	Associate part
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Product id"
//	@Param		request	body		AssociatePartRequest	true	"Part to attach"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{id}/parts [post]
func (h *ProductHandlers) AssociatePart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AssociatePartRequest](w, r)
	if !ok {
		return
	}
	product, err := h.svc.Product.AssociatePart(r.Context(), id, req.PartID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}

// DissociatePart removes one association of a part with a product.
//
//	@Summary	Remove associated part
//	@Tags		products
//	@Produce	json
//	@Param		id		path		int	true	"Product id"
//	@Param		partID	path		int	true	"Part id"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{id}/parts/{partID} [delete]
func (h *ProductHandlers) DissociatePart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	partID, err := pathID(r, "partID")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	product, err := h.svc.Product.DissociatePart(r.Context(), id, partID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}
