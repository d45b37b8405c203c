package validation

import (
	"strings"
	"time"
)

// DateLayouts are the accepted encodings for optional date fields.
var DateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate returns nil for an empty value. Callers validate first, so any
// other value is expected to match one of DateLayouts.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

type NoteInput struct {
	Title       string `json:"title" validate:"max=100"`
	Description string `json:"description" validate:"required"`
}

func (in *NoteInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
}

type EmailsInput struct {
	Personal string `json:"personal" validate:"omitempty,email"`
	Work     string `json:"work" validate:"omitempty,email"`
}

type PhonesInput struct {
	Personal string `json:"personal"`
	Work     string `json:"work"`
}

// ContactInput accepts null for the nested email and phone objects.
type ContactInput struct {
	Name    string       `json:"name" validate:"required"`
	Email   *EmailsInput `json:"email"`
	Phone   *PhonesInput `json:"phone"`
	Address string       `json:"address"`
	DOB     string       `json:"dob" validate:"omitempty,date"`
}

func (in *ContactInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.DOB = strings.TrimSpace(in.DOB)
	if in.Email != nil {
		in.Email.Personal = normalizeEmail(in.Email.Personal)
		in.Email.Work = normalizeEmail(in.Email.Work)
	}
	if in.Phone != nil {
		in.Phone.Personal = strings.TrimSpace(in.Phone.Personal)
		in.Phone.Work = strings.TrimSpace(in.Phone.Work)
	}
}

// PostInput is the full replacement body of PUT /posts/{id}.
type PostInput struct {
	Pic     string `json:"pic" validate:"required,uri"`
	Caption string `json:"caption"`
}

func (in *PostInput) Normalize() {
	in.Pic = strings.TrimSpace(in.Pic)
	in.Caption = strings.TrimSpace(in.Caption)
}

// PostPatch carries only the fields the client sent.
type PostPatch struct {
	Pic     *string `json:"pic" validate:"omitnil,uri"`
	Caption *string `json:"caption"`
}

func (in *PostPatch) Normalize() {
	trimPtr(in.Pic)
	trimPtr(in.Caption)
}

// CaptionInput is the text part of a multipart post upload.
type CaptionInput struct {
	Caption string `json:"caption" validate:"max=2200"`
}

func (in *CaptionInput) Normalize() {
	in.Caption = strings.TrimSpace(in.Caption)
}

type SignUpInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,strictemail"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
	DOB      string `json:"dob" validate:"omitempty,date"`
}

func (in *SignUpInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.DOB = strings.TrimSpace(in.DOB)
}

type SignInInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (in *SignInInput) Normalize() {
	in.Email = normalizeEmail(in.Email)
}

// UserUpdateInput replaces the profile. An empty password keeps the
// current one.
type UserUpdateInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,strictemail"`
	Phone    string `json:"phone"`
	DOB      string `json:"dob" validate:"omitempty,date"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

func (in *UserUpdateInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.DOB = strings.TrimSpace(in.DOB)
}

type CommentInput struct {
	Text string `json:"text" validate:"required,max=1000"`
}

func (in *CommentInput) Normalize() {
	in.Text = strings.TrimSpace(in.Text)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
