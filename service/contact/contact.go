// Package contact handles the landing page contact form. Submissions are
// validated with locale-aware messages and logged; no mail transport is
// wired up.
package contact

import (
	"context"
	"log"
	"strings"
	"time"

	"storefront.GO/service/forms"
)

// MinMessageLength is the shortest message body accepted.
const MinMessageLength = 10

// Message is one contact form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

var messages = map[string]map[string]string{
	"en": {
		"nameRequired":  "Name is required",
		"emailRequired": "Email is required",
		"emailInvalid":  "Please enter a valid email",
		"messageShort":  "Message must be at least 10 characters",
		"received":      "Thanks for reaching out! We'll get back to you soon.",
	},
	"es": {
		"nameRequired":  "El nombre es obligatorio",
		"emailRequired": "El correo es obligatorio",
		"emailInvalid":  "Introduce un correo válido",
		"messageShort":  "El mensaje debe tener al menos 10 caracteres",
		"received":      "¡Gracias por escribirnos! Te responderemos pronto.",
	},
}

func msg(locale, key string) string {
	if m, ok := messages[locale]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return messages["en"][key]
}

// Validate checks a submission and returns per-field messages in the
// given locale, empty when the submission is acceptable.
func Validate(m Message, locale string) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = msg(locale, "nameRequired")
	}
	if strings.TrimSpace(m.Email) == "" {
		errs["email"] = msg(locale, "emailRequired")
	} else if !forms.ValidEmail(m.Email) {
		errs["email"] = msg(locale, "emailInvalid")
	}
	if len(strings.TrimSpace(m.Message)) < MinMessageLength {
		errs["message"] = msg(locale, "messageShort")
	}
	return errs
}

// Service accepts contact submissions with a simulated delivery delay.
type Service struct {
	delay time.Duration
}

func NewService(delay time.Duration) *Service {
	return &Service{delay: delay}
}

// Submit validates and records the submission, returning the localized
// confirmation message.
func (s *Service) Submit(ctx context.Context, m Message, locale string) (string, error) {
	if fields := Validate(m, locale); len(fields) > 0 {
		return "", &forms.ValidationError{Fields: fields}
	}
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	log.Printf("contact message from %s <%s>: %d chars", m.Name, m.Email, len(m.Message))
	return msg(locale, "received"), nil
}
