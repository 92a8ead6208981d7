package request

import (
	"retreat-api/internal/domain/inquiry"
	"retreat-api/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

// Field rules are enforced by the submission pipeline, not by binding tags,
// so every field error comes back with its own message.

type BookingRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Package         string `json:"package"`
	Dates           string `json:"dates"`
	Guests          string `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
	// Website is the honeypot; people never see it
	Website string `json:"website"`
}

func (r *BookingRequest) ToInput() (commands.BookingInput, error) {
	var booking inquiry.Booking
	if err := copier.Copy(&booking, r); err != nil {
		return commands.BookingInput{}, err
	}
	return commands.BookingInput{Booking: booking, Honeypot: r.Website}, nil
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Website string `json:"website"`
}

func (r *ContactRequest) ToInput() (commands.ContactInput, error) {
	var contact inquiry.Contact
	if err := copier.Copy(&contact, r); err != nil {
		return commands.ContactInput{}, err
	}
	return commands.ContactInput{Contact: contact, Honeypot: r.Website}, nil
}
