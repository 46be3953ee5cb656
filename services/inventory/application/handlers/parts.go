package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	pkgvalidator "github.com/ghuser/inventory/pkg/validator"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// PartHandlers serves the /parts endpoints.
type PartHandlers struct {
	svc *appsvcs.Services
}

// NewPartHandlers returns PartHandlers backed by the given services.
func NewPartHandlers(svc *appsvcs.Services) *PartHandlers {
	return &PartHandlers{svc: svc}
}

// List searches parts.
//
//	@Summary		List parts
//	@Description	Lists every part, or the parts whose name or id contains q
//	@Tags			parts
//	@Produce		json
//	@Param			q	query		string	false	"Name or id fragment"
//	@Success		200	{object}	httpx.ListResponse[PartResponse]
//	@Router			/parts [get]
func (h *PartHandlers) List(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.Part.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.NewList(toPartResponses(parts)))
}

// NextID reports the id the next created part will receive.
//
//	@Summary	Next part id
//	@Tags		parts
//	@Produce	json
//	@Success	200	{object}	NextIDResponse
//	@Router		/parts/next-id [get]
func (h *PartHandlers) NextID(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, NextIDResponse{NextID: h.svc.Part.NextID(r.Context())})
}

// Create adds a part.
//
//	@Summary		Create part
//	@Description	Validates and registers a new in-house or outsourced part
//	@Tags			parts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PartRequest	true	"Part fields"
//	@Success		201		{object}	PartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/parts [post]
func (h *PartHandlers) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[PartRequest](w, r)
	if !ok {
		return
	}
	form, err := req.form()
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	part, err := h.svc.Part.Create(r.Context(), form)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toPartResponse(part))
}

// Get returns one part.
//
//	@Summary	Get part
//	@Tags		parts
//	@Produce	json
//	@Param		id	path		int	true	"Part id"
//	@Success	200	{object}	PartResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/parts/{id} [get]
func (h *PartHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	part, err := h.svc.Part.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPartResponse(part))
}

// Update replaces a part. Products holding the part see the new values.
//
//	@Summary	Modify part
//	@Tags		parts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int			true	"Part id"
//	@Param		request	body		PartRequest	true	"Part fields"
//	@Success	200		{object}	PartResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/parts/{id} [put]
func (h *PartHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[PartRequest](w, r)
	if !ok {
		return
	}
	form, err := req.form()
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	part, err := h.svc.Part.Update(r.Context(), id, form)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPartResponse(part))
}

// Delete removes a part.
//
//	@Summary	Delete part
//	@Tags		parts
//	@Param		id	path	int	true	"Part id"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/parts/{id} [delete]
func (h *PartHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if err := h.svc.Part.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}
