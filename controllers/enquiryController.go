package controllers

import (
	"crypto/rand"
	"encoding/json"
	"io"
	"strings"
	"time"

	"agentkit-backend/database"
	"agentkit-backend/models"
	"agentkit-backend/throttle"
	"agentkit-backend/utils"
	"agentkit-backend/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const acceptedMessage = "Your enquiry has been received. The Inference Labs team will respond within 1 business day via your provided contact channel."

const throttledMessage = "You may submit one enquiry per 24 hours. Please wait before submitting again."

var (
	// Enquiries and Gate are wired by InitIntake before the routes go live.
	Enquiries database.EnquiryStore
	Gate      *throttle.Gate

	// RandSource feeds reference-id generation. Tests may swap in a
	// deterministic reader; production keeps crypto/rand.
	RandSource io.Reader = rand.Reader
)

// InitIntake binds the intake pipeline to its durable stores.
func InitIntake(enquiries database.EnquiryStore, throttles database.ThrottleStore) {
	Enquiries = enquiries
	Gate = &throttle.Gate{Store: throttles}
}

// CreateEnquiry handles POST /api/agent-enquiry.
// Sequence: parse, validate, throttle check, enquiry insert, throttle
// upsert, respond. The two writes are issued in that order and are not
// atomic with each other.
func CreateEnquiry(c *fiber.Ctx) error {
	var raw any
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Request body must be valid JSON",
		})
	}

	data, errs := validation.Validate(raw)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": strings.Join(errs, "; "),
		})
	}

	agentID := ""
	if data.AgentID != nil {
		agentID = *data.AgentID
	}
	key := throttle.Key(agentID, utils.ClientIP(c))

	// One clock read per request; reused for the window comparison and
	// both stored timestamps.
	now := time.Now().UTC()

	limited, err := Gate.IsThrottled(key, now)
	if err != nil {
		return err
	}
	if limited {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":   "rate_limit_exceeded",
			"message": throttledMessage,
		})
	}

	referenceID, err := utils.NewReferenceID(RandSource)
	if err != nil {
		return err
	}

	enquiry := models.Enquiry{
		ID:             referenceID,
		Operator:       data.Operator,
		AgentID:        data.AgentID,
		Model:          data.Model,
		UseCase:        data.UseCase,
		Scale:          data.Scale,
		ContactEmail:   data.Contact.Email,
		ContactWebhook: data.Contact.Webhook,
		CreatedAt:      now,
	}
	if data.Questions != nil {
		qs, err := json.Marshal(data.Questions)
		if err != nil {
			return err
		}
		enquiry.Questions = datatypes.JSON(qs)
	}

	if err := Enquiries.Insert(&enquiry); err != nil {
		return err
	}
	if err := Gate.Touch(key, now); err != nil {
		return err
	}

	log.Info().Str("reference_id", referenceID).Str("throttle_key", key).Msg("enquiry accepted")

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"reference_id":       referenceID,
		"status":             "accepted",
		"message":            acceptedMessage,
		"estimated_response": "P1D",
	})
}
