package entities

// BookingData carries every field persisted for one booking. The wizard
// fills the selection and contact fields; the sheets client stamps
// Timestamp, BookingID and Status before the record leaves the process.
type BookingData struct {
	Timestamp       string `json:"timestamp"`
	BookingID       string `json:"bookingId"`
	ServiceType     string `json:"serviceType"`
	Persons         string `json:"persons"` // person count or duration label
	Price           string `json:"price"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Lender          string `json:"lender"`
	Solicitor       string `json:"solicitor"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Status          string `json:"status"`
}

// SaveResult is the outcome of persisting a booking. Failed saves still
// carry the generated booking id so the caller can offer a retry.
type SaveResult struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Row       int64  `json:"row,omitempty"`
	Range     string `json:"range,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BookingRecord is one retrieved booking keyed by normalized header names.
type BookingRecord map[string]string

// Confirmation is the payload handed to the notification dispatcher
// once a booking has been saved.
type Confirmation struct {
	BookingID       string
	ToName          string
	ToEmail         string
	Phone           string
	ServiceName     string
	PackageDetails  string
	Price           string
	SolicitorName   string
	AppointmentDate string
	AppointmentTime string
	Lender          string
}
