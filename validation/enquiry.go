package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Contact is the normalized contact block of a valid submission.
type Contact struct {
	Email   string
	Webhook *string
}

// Enquiry is a submission that passed validation. Operator is trimmed;
// every other field is passed through unchanged. Optional fields are nil
// when absent from the payload.
type Enquiry struct {
	Operator  string
	AgentID   *string
	Model     *string
	UseCase   string
	Scale     *string
	Questions []string
	Contact   Contact
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxQuestions = 10

// Validate turns a decoded JSON payload into a normalized Enquiry or the
// full list of rule violations. All checks run; the error list is
// exhaustive in a single pass, never just the first failure.
func Validate(raw any) (*Enquiry, []string) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, []string{"Request body must be a JSON object"}
	}

	var errs []string

	operator, ok := obj["operator"].(string)
	if !ok || strings.TrimSpace(operator) == "" {
		errs = append(errs, "operator is required")
	}

	useCase, ok := obj["use_case"].(string)
	if !ok || useCase == "" {
		errs = append(errs, "use_case is required")
	} else if utf8.RuneCountInString(useCase) < 50 {
		errs = append(errs, "use_case must be at least 50 characters")
	}

	var contact Contact
	if c, ok := obj["contact"].(map[string]any); !ok {
		errs = append(errs, "contact is required")
	} else {
		if s, ok := c["email"].(string); !ok || s == "" {
			errs = append(errs, "contact.email is required")
		} else if !emailRe.MatchString(s) {
			errs = append(errs, "contact.email must be a valid email address")
		} else {
			contact.Email = s
		}
		if w, present := c["webhook"]; present {
			if s, ok := w.(string); ok {
				contact.Webhook = &s
			} else {
				errs = append(errs, "contact.webhook must be a string URI")
			}
		}
	}

	var questions []string
	if q, present := obj["questions"]; present {
		if list, ok := q.([]any); !ok {
			errs = append(errs, "questions must be an array")
		} else if len(list) > maxQuestions {
			errs = append(errs, "questions must not exceed 10 items")
		} else if qs, ok := stringSlice(list); !ok {
			errs = append(errs, "questions must be an array of strings")
		} else {
			questions = qs
		}
	}

	agentID, agentErr := optionalString(obj, "agent_id")
	if agentErr {
		errs = append(errs, "agent_id must be a string")
	}
	model, modelErr := optionalString(obj, "model")
	if modelErr {
		errs = append(errs, "model must be a string")
	}
	scale, scaleErr := optionalString(obj, "scale")
	if scaleErr {
		errs = append(errs, "scale must be a string")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Enquiry{
		Operator:  strings.TrimSpace(operator),
		AgentID:   agentID,
		Model:     model,
		UseCase:   useCase,
		Scale:     scale,
		Questions: questions,
		Contact:   contact,
	}, nil
}

// optionalString reads an optional field that must be a string when present.
// The second return is true when the field is present with the wrong type.
func optionalString(obj map[string]any, field string) (*string, bool) {
	v, present := obj[field]
	if !present {
		return nil, false
	}
	s, ok := v.(string)
	if !ok {
		return nil, true
	}
	return &s, false
}

func stringSlice(list []any) ([]string, bool) {
	out := make([]string, len(list))
	for i, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}
