package services

import (
	"attorney_site_go/models"
	"attorney_site_go/services/i18n"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := i18n.Load(); err != nil {
		log.Fatalf("failed to load locales: %v", err)
	}
	os.Exit(m.Run())
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, loc)
	return NewValidator(loc).WithClock(func() time.Time { return now })
}

func validConsultation() *models.ConsultationRequest {
	return &models.ConsultationRequest{
		Name:          "Jane Doe",
		Email:         "jane@x.com",
		Phone:         "212-555-0100",
		CaseType:      "family",
		PreferredTime: "14:00",
	}
}

func validContact() *models.ContactMessage {
	return &models.ContactMessage{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john@example.com",
		Subject:   "Question about a will",
		Message:   "I would like to update my will this month.",
	}
}

func TestValidateConsultation(t *testing.T) {
	v := newTestValidator(t)

	t.Run("Valid request without optional fields", func(t *testing.T) {
		req := validConsultation()
		errs := v.ValidateConsultation("en", req)
		assert.Nil(t, errs)
		assert.Empty(t, req.Description)
		assert.Empty(t, req.PreferredDate)
	})

	t.Run("Empty form reports every required field", func(t *testing.T) {
		req := &models.ConsultationRequest{}
		errs := v.ValidateConsultation("en", req)
		require.NotNil(t, errs)
		assert.Equal(t, []string{"caseType", "email", "name", "phone", "preferredTime"}, errs.Fields())
		assert.Equal(t, "Full Name is required", errs.Get("name"))
		assert.Equal(t, "Email Address is required", errs.Get("email"))
		assert.False(t, errs.Has("description"))
		assert.False(t, errs.Has("preferredDate"))
	})

	t.Run("Whitespace only counts as empty", func(t *testing.T) {
		req := validConsultation()
		req.Name = "   "
		errs := v.ValidateConsultation("en", req)
		assert.Equal(t, "Full Name is required", errs.Get("name"))
	})

	t.Run("Name length bounds", func(t *testing.T) {
		req := validConsultation()
		req.Name = "J"
		errs := v.ValidateConsultation("en", req)
		assert.Equal(t, "Full Name must be at least 2 characters", errs.Get("name"))

		req = validConsultation()
		req.Name = strings.Repeat("a", 101)
		errs = v.ValidateConsultation("en", req)
		assert.Equal(t, "Full Name must be at most 100 characters", errs.Get("name"))
	})

	t.Run("Invalid email", func(t *testing.T) {
		req := validConsultation()
		req.Email = "jane.example.com"
		errs := v.ValidateConsultation("en", req)
		assert.Equal(t, "Please enter a valid email address", errs.Get("email"))
	})

	t.Run("Email is normalized", func(t *testing.T) {
		req := validConsultation()
		req.Email = "  Jane@X.com "
		assert.Nil(t, v.ValidateConsultation("en", req))
		assert.Equal(t, "jane@x.com", req.Email)
	})

	t.Run("Short phone is rejected", func(t *testing.T) {
		req := validConsultation()
		req.Phone = "555-0100"
		errs := v.ValidateConsultation("en", req)
		assert.Equal(t, "Please enter a valid phone number with at least 10 digits", errs.Get("phone"))
	})

	t.Run("Unknown case type", func(t *testing.T) {
		req := validConsultation()
		req.CaseType = "maritime"
		errs := v.ValidateConsultation("en", req)
		assert.Equal(t, "Please select a valid case type", errs.Get("caseType"))
	})

	t.Run("Description is kept verbatim and capped", func(t *testing.T) {
		req := validConsultation()
		req.Description = "  Custody & support, 50% split?\nCosts < 2k > 1k  "
		assert.Nil(t, v.ValidateConsultation("en", req))
		assert.Equal(t, "Custody & support, 50% split?\nCosts < 2k > 1k", req.Description)

		req = validConsultation()
		req.Description = strings.Repeat("a", 1001)
		errs := v.ValidateConsultation("en", req)
		assert.Equal(t, "Case Description must be at most 1000 characters", errs.Get("description"))
	})

	t.Run("Markup in description is rejected", func(t *testing.T) {
		req := validConsultation()
		req.Description = "<script>alert(1)</script>Divorce"
		errs := v.ValidateConsultation("en", req)
		assert.Equal(t, "Case Description must not contain HTML markup", errs.Get("description"))
		assert.Equal(t, "<script>alert(1)</script>Divorce", req.Description)
	})

	t.Run("Preferred date must be after today", func(t *testing.T) {
		cases := map[string]bool{
			"2026-03-11": true,
			"2027-01-01": true,
			"2026-03-10": false,
			"2026-03-09": false,
			"03/11/2026": false,
		}
		for date, ok := range cases {
			req := validConsultation()
			req.PreferredDate = date
			errs := v.ValidateConsultation("en", req)
			if ok {
				assert.Nil(t, errs, date)
			} else {
				assert.Equal(t, "Preferred Consultation Date must be a date after today", errs.Get("preferredDate"), date)
			}
		}
	})

	t.Run("Preferred time must be HH:MM", func(t *testing.T) {
		for _, value := range []string{"24:00", "9:30", "10:60", "noon"} {
			req := validConsultation()
			req.PreferredTime = value
			errs := v.ValidateConsultation("en", req)
			assert.Equal(t, "Preferred Consultation Time must be a time in HH:MM format", errs.Get("preferredTime"), value)
		}
	})

	t.Run("Messages follow the language", func(t *testing.T) {
		req := &models.ConsultationRequest{}
		errs := v.ValidateConsultation("es", req)
		assert.Equal(t, i18n.Translate("es", "validation.required", map[string]interface{}{
			"field": i18n.Translate("es", "form.label.name"),
		}), errs.Get("name"))
	})
}

func TestValidateContact(t *testing.T) {
	v := newTestValidator(t)

	t.Run("Valid message without phone", func(t *testing.T) {
		msg := validContact()
		assert.Nil(t, v.ValidateContact("en", msg))
	})

	t.Run("Optional phone is still checked when given", func(t *testing.T) {
		msg := validContact()
		msg.Phone = "12345"
		errs := v.ValidateContact("en", msg)
		assert.True(t, errs.Has("phone"))
	})

	t.Run("Length rules", func(t *testing.T) {
		msg := validContact()
		msg.LastName = "S"
		msg.Subject = "Hi"
		msg.Message = "Too short"
		errs := v.ValidateContact("en", msg)
		assert.Equal(t, []string{"lastName", "message", "subject"}, errs.Fields())
		assert.Equal(t, "Last Name must be at least 2 characters", errs.Get("lastName"))
		assert.Equal(t, "Subject must be at least 5 characters", errs.Get("subject"))
		assert.Equal(t, "Message must be at least 10 characters", errs.Get("message"))
	})

	t.Run("Markup is reported, not stripped", func(t *testing.T) {
		cases := []string{
			"<p><em>Hi</em> there, please call</p>",
			"Is the fee x<y and y>z per month?",
			"&lt;img src=x onerror=alert(1)&gt; please call me",
		}
		for _, text := range cases {
			msg := validContact()
			msg.Message = text
			errs := v.ValidateContact("en", msg)
			assert.Equal(t, "Message must not contain HTML markup", errs.Get("message"), text)
			assert.Equal(t, text, msg.Message)
		}
	})

	t.Run("Plain punctuation is accepted unchanged", func(t *testing.T) {
		msg := validContact()
		msg.Subject = "Fees & costs <= 10%"
		msg.Message = "Line one: \"quoted\" & it's 100% < 2 pages.\r\nLine two > one."
		assert.Nil(t, v.ValidateContact("en", msg))
		assert.Equal(t, "Fees & costs <= 10%", msg.Subject)
		assert.Equal(t, "Line one: \"quoted\" & it's 100% < 2 pages.\r\nLine two > one.", msg.Message)
	})
}

func TestPhoneRule(t *testing.T) {
	v := newTestValidator(t)

	cases := map[string]bool{
		"212-555-0100":      true,
		"+1 (212) 555-0100": true,
		"2125550100":        true,
		"+44 20 7946 0958":  true,
		"555-0100":          false,
		"212.555.0100":      false,
		"call 2125550100":   false,
		"++12125550100":     false,
	}
	for phone, ok := range cases {
		req := validConsultation()
		req.Phone = phone
		errs := v.ValidateConsultation("en", req)
		assert.Equal(t, !ok, errs.Has("phone"), phone)
	}
}

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, "14196077952", PhoneDigits("+1 (419) 607-7952"))
	assert.Equal(t, "", PhoneDigits("n/a"))
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{"name": "Name is required", "email": "bad"}
	assert.True(t, fe.Has("name"))
	assert.False(t, fe.Has("phone"))
	assert.Equal(t, "", fe.Get("phone"))
	assert.Equal(t, []string{"email", "name"}, fe.Fields())
}
