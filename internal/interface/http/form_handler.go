package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/formgate/formgate/internal/application"
	"github.com/formgate/formgate/internal/domain/entity"
	"github.com/formgate/formgate/pkg/response"
	"github.com/formgate/formgate/pkg/validation"
)

type FormHandler struct {
	Svc    *application.FormService
	Logger *logrus.Logger
}

func NewFormHandler(svc *application.FormService, logger *logrus.Logger) *FormHandler {
	return &FormHandler{Svc: svc, Logger: logger}
}

type formFieldRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=TEXT NUMBER DATE TIME"`
	Required bool   `json:"required"`
}

type createFormRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Fields      []formFieldRequest `json:"fields" binding:"required,min=1,dive"`
}

type updateFormRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Answers carries no binding tag: an empty object is a legal submission
// for a form without required fields, and "required" rejects empty maps.
type submitResponseRequest struct {
	Answers map[string]any `json:"responses"`
}

type formFieldView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type formView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Fields      []formFieldView `json:"fields"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toFormView(f *entity.Form) formView {
	fields := make([]formFieldView, 0, len(f.Fields))
	for _, fld := range f.Fields {
		fields = append(fields, formFieldView{
			ID:       fld.ID,
			Name:     fld.Name,
			Type:     string(fld.Type),
			Required: fld.Required,
		})
	}
	return formView{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Fields:      fields,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (h *FormHandler) Create(c *gin.Context) {
	var req createFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	fields := make([]application.FieldInput, 0, len(req.Fields))
	for _, fld := range req.Fields {
		fields = append(fields, application.FieldInput{
			Name:     fld.Name,
			Type:     entity.FieldType(fld.Type),
			Required: fld.Required,
		})
	}

	f, err := h.Svc.Create(c.Request.Context(), application.CreateFormInput{
		Name:        req.Name,
		Description: req.Description,
		Fields:      fields,
	})
	if err != nil {
		h.formError(c, err, "create form failed")
		return
	}
	response.Success(c, http.StatusCreated, toFormView(f), "form created")
}

func (h *FormHandler) List(c *gin.Context) {
	forms, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.formError(c, err, "list forms failed")
		return
	}
	views := make([]formView, 0, len(forms))
	for _, f := range forms {
		views = append(views, toFormView(f))
	}
	response.Success(c, http.StatusOK, views, "forms")
}

func (h *FormHandler) Get(c *gin.Context) {
	f, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.formError(c, err, "get form failed")
		return
	}
	response.Success(c, http.StatusOK, toFormView(f), "form")
}

func (h *FormHandler) Update(c *gin.Context) {
	var req updateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	f, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateFormInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.formError(c, err, "update form failed")
		return
	}
	response.Success(c, http.StatusOK, toFormView(f), "form updated")
}

func (h *FormHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.formError(c, err, "delete form failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FormHandler) SubmitResponse(c *gin.Context) {
	var req submitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.Answers == nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"responses": "is required"})
		return
	}
	resp, err := h.Svc.SubmitResponse(c.Request.Context(), c.Param("id"), req.Answers)
	if err != nil {
		h.formError(c, err, "submit response failed")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"id":         resp.ID,
		"form_id":    resp.FormID,
		"responses":  resp.Answers,
		"created_at": resp.CreatedAt,
	}, "response recorded")
}

func (h *FormHandler) ListResponses(c *gin.Context) {
	responses, err := h.Svc.ListResponses(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.formError(c, err, "list responses failed")
		return
	}
	out := make([]gin.H, 0, len(responses))
	for _, r := range responses {
		out = append(out, gin.H{
			"id":         r.ID,
			"form_id":    r.FormID,
			"responses":  r.Answers,
			"created_at": r.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, out, "responses")
}

func (h *FormHandler) formError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, application.ErrFormNotFound):
		response.Error[any](c, http.StatusNotFound, "Form not found", nil)
	case errors.Is(err, application.ErrInvalidFieldType), errors.Is(err, application.ErrMissingField):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.Error[any](c, http.StatusInternalServerError, "Internal server error", nil)
	}
}
