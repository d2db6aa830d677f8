package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pooja2309/portfolio/internal/contact"
)

// createSubmission handles POST /api/contact.
//
//	201 {"message": ..., "id": ..., "createdAt": ...}
//	400 {"error": "invalid_json"} or {"error": "validation_failed", "fields": {...}}
//	500 {"error": "internal_error"}
func (s *Server) createSubmission(c *gin.Context) {
	var in contact.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_json"})
		return
	}

	sub, err := s.intake.Create(c.Request.Context(), in, c.ClientIP())
	if err != nil {
		var fe contact.FieldErrors
		if errors.As(err, &fe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "fields": fe})
			return
		}
		s.logger.Error("creating contact submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.JSON(http.StatusCreated, contact.Ack{
		Message:   contact.AckMessage,
		ID:        sub.ID,
		CreatedAt: sub.CreatedAt,
	})
}

// failureMessage is shown above the form, which keeps the visitor's input.
const failureMessage = "Please try again later."

// contactFormData feeds contact.html.
type contactFormData struct {
	Values  contact.Input
	Errors  contact.FieldErrors
	Failure string
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", contactFormData{})
}

// submitContactForm handles the HTMX form post. It always answers 200 so
// the fragment is swapped in; the fragment itself says what happened.
// Only success replaces the form; every failure re-renders it with the
// submitted values.
func (s *Server) submitContactForm(c *gin.Context) {
	var in contact.Input
	if err := c.ShouldBind(&in); err != nil {
		s.logger.Warn("binding contact form", zap.Error(err))
		c.HTML(http.StatusOK, "contact.html", contactFormData{Values: in, Failure: failureMessage})
		return
	}

	_, err := s.intake.Create(c.Request.Context(), in, c.ClientIP())
	if err != nil {
		var fe contact.FieldErrors
		if errors.As(err, &fe) {
			c.HTML(http.StatusOK, "contact.html", contactFormData{Values: in, Errors: fe})
			return
		}
		s.logger.Error("creating contact submission", zap.Error(err))
		c.HTML(http.StatusOK, "contact.html", contactFormData{Values: in, Failure: failureMessage})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": contact.AckMessage,
	})
}
