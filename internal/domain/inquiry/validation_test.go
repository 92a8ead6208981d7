//go:build unit

package inquiry_test

import (
	"strings"
	"testing"

	"retreat-api/internal/domain/inquiry"
	"retreat-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"jane@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"not-an-email", false},
		{"missing-domain@", false},
		{"@missing-local.com", false},
		{"", false},
		{strings.Repeat("a", 255) + "@b.co", false},
		{"bad@-label.com", false},
	}
	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.want, inquiry.IsValidEmail(tc.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		want  bool
	}{
		{"empty is valid", "", true},
		{"international", "+1 (555) 123-4567", true},
		{"digits only", "0612345678", true},
		{"too short", "12345", false},
		{"letters", "call me maybe", false},
		{"too long", strings.Repeat("1", 21), false},
		{"plus in the middle", "12345+67890", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inquiry.IsValidPhone(tc.phone))
		})
	}
}

func TestIsValidName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "Jane Doe", true},
		{"apostrophe and hyphen", "Seán O'Neil-Smith", true},
		{"non latin letters", "Zoë Łukasz", true},
		{"single letter", "J", false},
		{"digits", "Jane3", false},
		{"markup", "<b>Jane</b>", false},
		{"100 letters", strings.Repeat("a", 100), true},
		{"101 letters", strings.Repeat("a", 101), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inquiry.IsValidName(tc.input))
		})
	}
}

func TestIsValidGuestCount(t *testing.T) {
	for _, v := range []string{"0", "51", "abc", "", "-1", "2.5"} {
		assert.False(t, inquiry.IsValidGuestCount(v), "guests %q", v)
	}
	for _, v := range []string{"1", "50", "12", " 2 "} {
		assert.True(t, inquiry.IsValidGuestCount(v), "guests %q", v)
	}
}

func TestValidateLength(t *testing.T) {
	assert.True(t, inquiry.ValidateLength(inquiry.FieldDates, strings.Repeat("x", 50)))
	assert.False(t, inquiry.ValidateLength(inquiry.FieldDates, strings.Repeat("x", 51)))
	assert.True(t, inquiry.ValidateLength("unknownField", strings.Repeat("x", 10000)))

	// counted in characters, not bytes
	assert.True(t, inquiry.ValidateLength(inquiry.FieldName, strings.Repeat("é", 100)))
	assert.False(t, inquiry.ValidateLength(inquiry.FieldName, strings.Repeat("é", 101)))

	assert.Equal(t, "This field must be 2000 characters or less", inquiry.LengthMessage(inquiry.FieldMessage))
}

func TestValidateForm(t *testing.T) {
	t.Run("必須項目", func(t *testing.T) {
		data := map[string]string{"name": "", "email": "x@x.com", "package": "P", "dates": "D", "guests": "2"}
		result := inquiry.ValidateForm(data, []string{"name", "email", "package", "dates", "guests"})

		assert.False(t, result.IsValid)
		if diff := cmp.Diff(map[string]string{"name": inquiry.MsgRequired}, result.Errors); diff != "" {
			t.Errorf("errors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("空白のみは未入力扱い", func(t *testing.T) {
		b := builder.NewContactBuilder().With(func(b *builder.ContactBuilder) { b.Message = "   " })
		result := inquiry.ValidateForm(b.BuildDomain().Fields(), inquiry.ContactRequiredFields)

		assert.False(t, result.IsValid)
		assert.Equal(t, inquiry.MsgRequired, result.Errors[inquiry.FieldMessage])
	})

	t.Run("有効な予約", func(t *testing.T) {
		result := inquiry.ValidateForm(builder.NewBookingBuilder().BuildDomain().Fields(), inquiry.BookingRequiredFields)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("任意項目は空でも有効", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Phone = ""
			b.SpecialRequests = ""
		})
		result := inquiry.ValidateForm(b.BuildDomain().Fields(), inquiry.BookingRequiredFields)
		assert.True(t, result.IsValid, "errors: %v", result.Errors)
	})

	t.Run("書式エラー", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Email = "not-an-email"
			b.Phone = "123"
			b.Name = "R2D2"
			b.Guests = "51"
		})
		result := inquiry.ValidateForm(b.BuildDomain().Fields(), inquiry.BookingRequiredFields)

		want := map[string]string{
			inquiry.FieldEmail:  inquiry.MsgEmail,
			inquiry.FieldPhone:  inquiry.MsgPhone,
			inquiry.FieldName:   inquiry.MsgName,
			inquiry.FieldGuests: inquiry.MsgGuests,
		}
		if diff := cmp.Diff(want, result.Errors); diff != "" {
			t.Errorf("errors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("長さエラー", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SpecialRequests = strings.Repeat("a", 2001)
			b.Dates = strings.Repeat("d", 51)
		})
		result := inquiry.ValidateForm(b.BuildDomain().Fields(), inquiry.BookingRequiredFields)

		want := map[string]string{
			inquiry.FieldSpecialRequests: inquiry.LengthMessage(inquiry.FieldSpecialRequests),
			inquiry.FieldDates:           inquiry.LengthMessage(inquiry.FieldDates),
		}
		if diff := cmp.Diff(want, result.Errors); diff != "" {
			t.Errorf("errors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("最初のエラーが優先される", func(t *testing.T) {
		// fails both the name format and the length table; the format message is kept
		data := map[string]string{inquiry.FieldName: strings.Repeat("a", 101)}
		result := inquiry.ValidateForm(data, nil)
		assert.Equal(t, inquiry.MsgName, result.Errors[inquiry.FieldName])

		// required wins over format for a whitespace-only name
		data = map[string]string{inquiry.FieldName: "  "}
		result = inquiry.ValidateForm(data, []string{inquiry.FieldName})
		assert.Equal(t, inquiry.MsgRequired, result.Errors[inquiry.FieldName])
	})

	t.Run("存在しない項目は書式チェックしない", func(t *testing.T) {
		result := inquiry.ValidateForm(map[string]string{inquiry.FieldMessage: "hello"}, nil)
		assert.True(t, result.IsValid)
	})
}
