package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"contact_service/internal/lib/logger/sl"
	"contact_service/internal/models"
	"contact_service/internal/service"
	"contact_service/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

// GET /api/contacts
func (h *Handler) ListContacts(c *gin.Context) {
	const op = "handler.ListContacts"

	log := h.log.With(slog.String("op", op))

	userID, ok := userIDFromContext(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "Token is not valid")

		return
	}

	contacts, err := h.serviceLayer.ListContacts(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to list contacts", sl.Err(err))

		newErrorResponse(c, http.StatusInternalServerError, "Server Error")

		return
	}

	if contacts == nil {
		contacts = []models.Contact{}
	}

	c.JSON(http.StatusOK, contacts)
}

// POST /api/contacts
func (h *Handler) CreateContact(c *gin.Context) {
	const op = "handler.CreateContact"

	log := h.log.With(slog.String("op", op))

	userID, ok := userIDFromContext(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "Token is not valid")

		return
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
		Type  string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to read request body", sl.Err(err))

		newErrorResponse(c, http.StatusBadRequest, "invalid request body")

		return
	}

	v := validator.New()
	validator.ValidateContactInput(v, req.Name)
	if !v.Valid() {
		newValidationResponse(c, v.Errors)

		return
	}

	contact, err := h.serviceLayer.CreateContact(c.Request.Context(), userID, req.Name, req.Email, req.Phone, req.Type)
	if err != nil {
		log.Error("failed to create contact", sl.Err(err))

		newErrorResponse(c, http.StatusInternalServerError, "Server Error")

		return
	}

	c.JSON(http.StatusOK, contact)
}

// PUT /api/contacts/:id
func (h *Handler) UpdateContact(c *gin.Context) {
	const op = "handler.UpdateContact"

	log := h.log.With(slog.String("op", op))

	userID, ok := userIDFromContext(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "Token is not valid")

		return
	}

	contactID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusNotFound, "Contact not found")

		return
	}

	var upd models.ContactUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		log.Error("failed to read request body", sl.Err(err))

		newErrorResponse(c, http.StatusBadRequest, "invalid request body")

		return
	}

	contact, err := h.serviceLayer.UpdateContact(c.Request.Context(), userID, contactID, upd)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			newErrorResponse(c, http.StatusNotFound, "Contact not found")
		case errors.Is(err, service.ErrNotOwner):
			newErrorResponse(c, http.StatusUnauthorized, "Not authorized")
		default:
			log.Error("failed to update contact", sl.Err(err))

			newErrorResponse(c, http.StatusInternalServerError, "Server Error")
		}

		return
	}

	c.JSON(http.StatusOK, contact)
}

// DELETE /api/contacts/:id
func (h *Handler) DeleteContact(c *gin.Context) {
	const op = "handler.DeleteContact"

	log := h.log.With(slog.String("op", op))

	userID, ok := userIDFromContext(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "Token is not valid")

		return
	}

	contactID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusNotFound, "Contact not found")

		return
	}

	if err := h.serviceLayer.DeleteContact(c.Request.Context(), userID, contactID); err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			newErrorResponse(c, http.StatusNotFound, "Contact not found")
		case errors.Is(err, service.ErrNotOwner):
			newErrorResponse(c, http.StatusUnauthorized, "Not authorized")
		default:
			log.Error("failed to delete contact", sl.Err(err))

			newErrorResponse(c, http.StatusInternalServerError, "Server Error")
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Contact removed"})
}
