package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/myspace/internal/apperr"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperr.KindValidation, appErr.Kind)

	out := make(map[string]string, len(appErr.Fields))
	for _, f := range appErr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func decodeAndCheck(body string, dst any) error {
	if err := Decode(strings.NewReader(body), dst); err != nil {
		return err
	}
	return Struct(dst)
}

func TestDecode_NoteTrimsAndAllowsEmptyTitle(t *testing.T) {
	var in NoteInput
	err := decodeAndCheck(`{"title":"   ","description":"  hi  "}`, &in)
	require.NoError(t, err)
	assert.Equal(t, "", in.Title)
	assert.Equal(t, "hi", in.Description)
}

func TestDecode_NoteErrors(t *testing.T) {
	var in NoteInput
	err := decodeAndCheck(`{"title":"`+strings.Repeat("x", 101)+`","description":"   "}`, &in)

	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "title")
	assert.Equal(t, "description is required", fields["description"])
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	var in NoteInput
	err := decodeAndCheck(`{"description":"x","userId":"someone-else"}`, &in)

	fields := fieldsOf(t, err)
	assert.Equal(t, "userId is not allowed", fields["userId"])
}

func TestDecode_BodyErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"empty", "", "body"},
		{"garbage", "{not json", "body"},
		{"wrong type", `{"description": 12}`, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in NoteInput
			fields := fieldsOf(t, decodeAndCheck(tt.body, &in))
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestDecode_Contact(t *testing.T) {
	var in ContactInput
	body := `{"name":" B ","email":{"personal":" Bob@Example.COM ","work":""},"phone":{"personal":"9999999999"},"dob":""}`
	require.NoError(t, decodeAndCheck(body, &in))

	assert.Equal(t, "B", in.Name)
	assert.Equal(t, "bob@example.com", in.Email.Personal)
	assert.Equal(t, "9999999999", in.Phone.Personal)
	assert.Nil(t, ParseDate(in.DOB))
}

func TestDecode_ContactNullObjects(t *testing.T) {
	var in ContactInput
	require.NoError(t, decodeAndCheck(`{"name":"C","email":null,"phone":null,"dob":null}`, &in))
	assert.Nil(t, in.Email)
	assert.Nil(t, in.Phone)
}

func TestDecode_ContactNestedErrors(t *testing.T) {
	var in ContactInput
	err := decodeAndCheck(`{"name":"C","email":{"work":"nope"},"dob":"yesterday"}`, &in)

	fields := fieldsOf(t, err)
	assert.Equal(t, "email.work must be a valid email", fields["email.work"])
	assert.Contains(t, fields, "dob")
}

func TestSignUp(t *testing.T) {
	tests := []struct {
		name    string
		in      SignUpInput
		invalid []string
	}{
		{"valid", SignUpInput{Name: "Al", Email: "A@X.com", Password: "password1"}, nil},
		{"short name", SignUpInput{Name: "A", Email: "a@x.com", Password: "password1"}, []string{"name"}},
		{"short password", SignUpInput{Name: "Al", Email: "a@x.com", Password: "short"}, []string{"password"}},
		{"bad email", SignUpInput{Name: "Al", Email: "not-an-email", Password: "password1"}, []string{"email"}},
		{"long tld", SignUpInput{Name: "Al", Email: "al@x.museums", Password: "password1"}, []string{"email"}},
		{"bad dob", SignUpInput{Name: "Al", Email: "a@x.com", Password: "password1", DOB: "31/12/1999"}, []string{"dob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			err := Struct(&in)
			if len(tt.invalid) == 0 {
				require.NoError(t, err)
				assert.Equal(t, strings.ToLower(tt.in.Email), in.Email)
				return
			}
			fields := fieldsOf(t, err)
			for _, f := range tt.invalid {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestSignUp_SecondPassMessage(t *testing.T) {
	in := SignUpInput{Name: "Al", Email: "al@x.museums", Password: "password1"}
	fields := fieldsOf(t, Struct(&in))
	assert.Equal(t, "Invalid email", fields["email"])
}

func TestUserUpdate_OptionalPassword(t *testing.T) {
	in := UserUpdateInput{Name: "Al", Email: "a@x.com"}
	assert.NoError(t, Struct(&in))

	in.Password = "short"
	assert.Contains(t, fieldsOf(t, Struct(&in)), "password")
}

func TestPostInputs(t *testing.T) {
	assert.NoError(t, Struct(&PostInput{Pic: "https://cdn.example.com/a.png"}))
	assert.Contains(t, fieldsOf(t, Struct(&PostInput{Caption: "x"})), "pic")
	assert.Contains(t, fieldsOf(t, Struct(&PostInput{Pic: "not a uri"})), "pic")

	assert.NoError(t, Struct(&PostPatch{}))
	empty := ""
	assert.Contains(t, fieldsOf(t, Struct(&PostPatch{Pic: &empty})), "pic")

	caption := "  hello  "
	patch := PostPatch{Caption: &caption}
	require.NoError(t, Struct(&patch))
	assert.Equal(t, "hello", *patch.Caption)
}

func TestComment(t *testing.T) {
	assert.Contains(t, fieldsOf(t, Struct(&CommentInput{Text: "   "})), "text")
	assert.Contains(t, fieldsOf(t, Struct(&CommentInput{Text: strings.Repeat("a", 1001)})), "text")
	assert.NoError(t, Struct(&CommentInput{Text: "nice"}))
}

func TestParseDate(t *testing.T) {
	d := ParseDate("1999-12-31")
	require.NotNil(t, d)
	assert.Equal(t, 1999, d.Year())

	d = ParseDate("2001-02-03T04:05:06+02:00")
	require.NotNil(t, d)
	assert.Equal(t, 2, d.Hour())

	assert.Nil(t, ParseDate(""))
}
