//go:build unit || e2e

package builder

import (
	"retreat-api/internal/domain/inquiry"
	reqdto "retreat-api/internal/handler/dto/request"
	"retreat-api/internal/usecase/commands"
)

type BookingBuilder struct {
	Name            string
	Email           string
	Phone           string
	Package         string
	Dates           string
	Guests          string
	SpecialRequests string
	Website         string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "+1 555 123 4567",
		Package:         "Surf Immersion (7 Days)",
		Dates:           "trip-2025-04",
		Guests:          "2",
		SpecialRequests: "Vegetarian meals, please",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) AsBot() *BookingBuilder {
	b.Website = "http://spam.example"
	return b
}

func (b *BookingBuilder) BuildDomain() inquiry.Booking {
	return inquiry.Booking{
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Package:         b.Package,
		Dates:           b.Dates,
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildInput() commands.BookingInput {
	return commands.BookingInput{Booking: b.BuildDomain(), Honeypot: b.Website}
}

func (b *BookingBuilder) BuildDTO() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Package:         b.Package,
		Dates:           b.Dates,
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
		Website:         b.Website,
	}
}

type ContactBuilder struct {
	Name    string
	Email   string
	Message string
	Website string
}

func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{
		Name:    "Ana",
		Email:   "a@b.co",
		Message: "Hi",
	}
}

func (b *ContactBuilder) With(mutate func(*ContactBuilder)) *ContactBuilder {
	mutate(b)
	return b
}

func (b *ContactBuilder) AsBot() *ContactBuilder {
	b.Website = "http://spam.example"
	return b
}

func (b *ContactBuilder) BuildDomain() inquiry.Contact {
	return inquiry.Contact{Name: b.Name, Email: b.Email, Message: b.Message}
}

func (b *ContactBuilder) BuildInput() commands.ContactInput {
	return commands.ContactInput{Contact: b.BuildDomain(), Honeypot: b.Website}
}

func (b *ContactBuilder) BuildDTO() reqdto.ContactRequest {
	return reqdto.ContactRequest{
		Name:    b.Name,
		Email:   b.Email,
		Message: b.Message,
		Website: b.Website,
	}
}
