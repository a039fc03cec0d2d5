package dto

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/localwork/marketplace/internal/util"
)

const DeadlineLayout = "2006-01-02"

type ContactForm struct {
	SenderName     string `form:"sender_name" json:"sender_name"`
	SenderEmail    string `form:"sender_email" json:"sender_email"`
	Subject        string `form:"subject" json:"subject"`
	MessageContent string `form:"message_content" json:"message_content"`
}

func (f *ContactForm) Validate() *util.FormError {
	errs := map[string]string{}
	required(errs, "sender_name", f.SenderName, "Name is required")
	required(errs, "sender_email", f.SenderEmail, "Email is required")
	required(errs, "subject", f.Subject, "Subject is required")
	required(errs, "message_content", f.MessageContent, "Message is required")
	return result(errs)
}

type PostJobForm struct {
	JobTitle            string `form:"job_title" json:"job_title"`
	JobDescription      string `form:"job_description" json:"job_description"`
	Location            string `form:"location" json:"location"`
	HourlyRate          string `form:"hourly_rate" json:"hourly_rate"`
	JobType             string `form:"job_type" json:"job_type"`
	RequiredSkills      string `form:"required_skills" json:"required_skills"`
	ApplicationDeadline string `form:"application_deadline" json:"application_deadline"`
}

// JobTypes offered by the post-job form.
var JobTypes = []string{"Part-Time", "Hourly", "Daily", "Weekend", "Temporary"}

func (f *PostJobForm) Validate() *util.FormError {
	errs := map[string]string{}
	required(errs, "job_title", f.JobTitle, "Job title is required")
	required(errs, "job_description", f.JobDescription, "Description is required")
	required(errs, "location", f.Location, "Location is required")
	required(errs, "job_type", f.JobType, "Job type is required")
	if strings.TrimSpace(f.HourlyRate) == "" {
		errs["hourly_rate"] = "Hourly rate is required"
	} else if _, err := f.Rate(); err != nil {
		errs["hourly_rate"] = "Hourly rate must be a number"
	}
	if strings.TrimSpace(f.ApplicationDeadline) != "" {
		if _, err := f.Deadline(); err != nil {
			errs["application_deadline"] = "Deadline must be a date (YYYY-MM-DD)"
		}
	}
	return result(errs)
}

// Rate parses the hourly rate. NaN and infinities are rejected like any other non-number.
func (f *PostJobForm) Rate() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.HourlyRate), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

// Deadline returns nil when no deadline was given.
func (f *PostJobForm) Deadline() (*time.Time, error) {
	s := strings.TrimSpace(f.ApplicationDeadline)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DeadlineLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type ApplyForm struct {
	CoverLetter string `form:"cover_letter" json:"cover_letter"`
	ResumeURL   string `form:"resume_url" json:"resume_url"`
}

func (f *ApplyForm) Validate() *util.FormError {
	errs := map[string]string{}
	required(errs, "cover_letter", f.CoverLetter, "Cover letter is required")
	if s := strings.TrimSpace(f.ResumeURL); s != "" {
		u, err := url.Parse(s)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs["resume_url"] = "Resume link must be an http(s) URL"
		}
	}
	return result(errs)
}

func required(errs map[string]string, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = message
	}
}

func result(errs map[string]string) *util.FormError {
	if len(errs) == 0 {
		return nil
	}
	return util.NewFormError("please fix the highlighted fields", errs)
}
