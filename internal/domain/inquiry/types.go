package inquiry

// Field names as they travel through validation, sanitization and the error map.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldPackage         = "package"
	FieldDates           = "dates"
	FieldGuests          = "guests"
	FieldSpecialRequests = "specialRequests"
	FieldMessage         = "message"
)

// MaxLengths caps every known field, counted in characters.
var MaxLengths = map[string]int{
	FieldName:            100,
	FieldEmail:           254,
	FieldPhone:           20,
	FieldMessage:         2000,
	FieldSpecialRequests: 2000,
	FieldPackage:         100,
	FieldDates:           50,
	FieldGuests:          10,
}

var (
	BookingRequiredFields = []string{FieldName, FieldEmail, FieldPackage, FieldDates, FieldGuests}
	ContactRequiredFields = []string{FieldName, FieldEmail, FieldMessage}
)

type Kind string

const (
	KindBooking Kind = "booking"
	KindContact Kind = "contact"
)

// Booking is a booking request. Phone and SpecialRequests are optional.
type Booking struct {
	Name            string
	Email           string
	Phone           string
	Package         string
	Dates           string
	Guests          string
	SpecialRequests string
}

func (b Booking) Fields() map[string]string {
	return map[string]string{
		FieldName:            b.Name,
		FieldEmail:           b.Email,
		FieldPhone:           b.Phone,
		FieldPackage:         b.Package,
		FieldDates:           b.Dates,
		FieldGuests:          b.Guests,
		FieldSpecialRequests: b.SpecialRequests,
	}
}

func BookingFromFields(f map[string]string) Booking {
	return Booking{
		Name:            f[FieldName],
		Email:           f[FieldEmail],
		Phone:           f[FieldPhone],
		Package:         f[FieldPackage],
		Dates:           f[FieldDates],
		Guests:          f[FieldGuests],
		SpecialRequests: f[FieldSpecialRequests],
	}
}

// Contact is a contact message; every field is required.
type Contact struct {
	Name    string
	Email   string
	Message string
}

func (c Contact) Fields() map[string]string {
	return map[string]string{
		FieldName:    c.Name,
		FieldEmail:   c.Email,
		FieldMessage: c.Message,
	}
}

func ContactFromFields(f map[string]string) Contact {
	return Contact{
		Name:    f[FieldName],
		Email:   f[FieldEmail],
		Message: f[FieldMessage],
	}
}
