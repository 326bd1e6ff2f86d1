package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/metrics"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.ContactMessageRepo
	profileRepo *database.ProfileRepo
}

func newContactHandler(messageRepo *database.ContactMessageRepo, profileRepo *database.ProfileRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
		profileRepo: profileRepo,
	}
}

// ContactInfo is the subset of the profile shown on the contact page.
type ContactInfo struct {
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	GithubURL    string `json:"github_url,omitempty"`
	LinkedinURL  string `json:"linkedin_url,omitempty"`
	TwitterURL   string `json:"twitter_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
}

// getContact returns the owner's contact details
// @Summary Contact page
// @Description Returns the contact details and social links from the profile; null until a profile is configured
// @Tags Contact
// @Produce json
// @Success 200 {object} ContactInfo "Contact details"
// @Router /contact [get]
func (h contactHandler) getContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteJSON(w, nil)
			return
		}

		h.responder.WriteJSON(w, ContactInfo{
			Email:        profile.Email,
			Phone:        profile.Phone,
			Address:      profile.Address,
			GithubURL:    profile.GithubURL,
			LinkedinURL:  profile.LinkedinURL,
			TwitterURL:   profile.TwitterURL,
			PortfolioURL: profile.PortfolioURL,
		})
	}
}

// submitContact stores an inbound contact form submission
// @Summary Submit contact form
// @Description Validates and stores a contact message, then notifies the owner
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body models.ContactMessage true "Contact message"
// @Success 201 {object} models.ContactMessage "Stored message"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing name or email"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error storing message"
// @Router /contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var message models.ContactMessage
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&message); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact message body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		// Submissions never arrive pre-read and never choose their own ID.
		message.ID = uuid.Nil
		message.IsRead = false

		if err := message.Validate(); err != nil {
			metrics.IncrementContactMessage("rejected")
			h.responder.WriteError(w, err)
			return
		}

		if err := h.messageRepo.Add(&message); err != nil {
			metrics.IncrementContactMessage("failed")
			h.responder.WriteError(w, wrapDatabaseError("create contact message", "contact message", err))
			return
		}
		metrics.IncrementContactMessage("accepted")

		// Notification is best effort and must not delay the response.
		go services.NotifyContactMessage(message)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, message)
	}
}

// listMessages retrieves all stored contact messages, newest first
// @Summary List contact messages
// @Description Retrieves every stored contact message for the admin inbox
// @Tags Contact
// @Produce json
// @Success 200 {array} models.ContactMessage "Messages"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /admin/messages [get]
func (h contactHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact messages", "contact messages", err))
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}

type readFlagRequest struct {
	IsRead bool `json:"is_read"`
}

// setMessageRead flips the read flag on a contact message. The read flag is
// the only mutable part of a stored message.
func (h contactHandler) setMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		var req readFlagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		message, err := h.messageRepo.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact message", "contact message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact message not found"))
			return
		}

		if err := h.messageRepo.SetRead(messageID, req.IsRead); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update contact message", "contact message", err))
			return
		}

		message.IsRead = req.IsRead
		h.responder.WriteJSON(w, message)
	}
}

// deleteMessage removes a contact message from the inbox.
func (h contactHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		message, err := h.messageRepo.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact message", "contact message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact message not found"))
			return
		}

		if err := h.messageRepo.Delete(messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete contact message", "contact message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact message deleted successfully",
		})
	}
}
