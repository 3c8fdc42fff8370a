package wizard

import (
	"context"
	"fmt"
	"log"
	"time"

	"solbooking/internal/calendar"
	"solbooking/internal/catalog"
	"solbooking/internal/entities"
)

// Step is a top-level step of the booking flow.
type Step int

const (
	StepServiceSelection Step = iota
	StepPackageSelection
	StepServiceDetails
	// StepBookingDetails exists in the flow definition but no transition
	// reaches it; the modal took over this part of the journey.
	StepBookingDetails
)

// ModalStep is a sub-step of the booking modal.
type ModalStep int

const (
	ModalAppointments ModalStep = iota
	ModalInformation
	ModalConfirmation
)

// ContactInfo is the information-step form. Every field is required
// before the flow can advance to confirmation.
type ContactInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Lender    string
}

// Complete reports whether all required contact fields are filled in.
func (c ContactInfo) Complete() bool {
	return c.FirstName != "" && c.LastName != "" && c.Email != "" &&
		c.Phone != "" && c.Lender != ""
}

// Saver persists a confirmed booking.
type Saver interface {
	SaveBooking(ctx context.Context, data entities.BookingData) entities.SaveResult
}

// Notifier dispatches the confirmation message. Failures are non-fatal
// for the booking.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, c entities.Confirmation) error
}

// Session owns all selection state for one booking journey. State is
// discarded on modal close and reset to the entry step after a
// successful finish.
type Session struct {
	saver    Saver
	notifier Notifier

	// Now feeds the calendar view and is swappable in tests.
	Now func() time.Time

	directLink bool
	step       Step
	serviceID  string
	packageID  string

	modalOpen   bool
	modalStep   ModalStep
	solicitorID string
	date        string
	timeSlot    string
	contact     ContactInfo

	month time.Month
	year  int
}

// NewSession starts a journey at the service-selection step.
func NewSession(saver Saver, notifier Notifier) *Session {
	s := &Session{
		saver:    saver,
		notifier: notifier,
		Now:      time.Now,
		step:     StepServiceSelection,
	}
	now := s.Now()
	s.month, s.year = now.Month(), now.Year()
	return s
}

// NewDirectLinkSession starts a journey from a service deep link: the
// service is pre-selected, the flow opens on package selection, and
// backing out to the service list is suppressed.
func NewDirectLinkSession(serviceID string, saver Saver, notifier Notifier) (*Session, error) {
	if _, ok := catalog.ServiceByID(serviceID); !ok {
		return nil, fmt.Errorf("unknown service %q", serviceID)
	}
	s := NewSession(saver, notifier)
	s.directLink = true
	s.serviceID = serviceID
	s.step = StepPackageSelection
	return s, nil
}

// Step returns the current top-level step.
func (s *Session) Step() Step { return s.step }

// ModalStep returns the current modal sub-step.
func (s *Session) ModalStep() ModalStep { return s.modalStep }

// ModalOpen reports whether the booking modal is showing.
func (s *Session) ModalOpen() bool { return s.modalOpen }

// ServiceID returns the selected service id, empty if none.
func (s *Session) ServiceID() string { return s.serviceID }

// PackageID returns the selected package id, empty if none.
func (s *Session) PackageID() string { return s.packageID }

// SelectedTime returns the chosen time slot, empty if none.
func (s *Session) SelectedTime() string { return s.timeSlot }

// SelectService picks a service and advances to package selection.
func (s *Session) SelectService(serviceID string) error {
	if s.step != StepServiceSelection {
		return fmt.Errorf("service can only be selected on the service-selection step")
	}
	if _, ok := catalog.ServiceByID(serviceID); !ok {
		return fmt.Errorf("unknown service %q", serviceID)
	}
	s.serviceID = serviceID
	s.step = StepPackageSelection
	return nil
}

// Packages returns the tier table for the selected service.
func (s *Session) Packages() []catalog.PackageOption {
	return catalog.PackagesFor(s.serviceID)
}

// SelectPackage picks a tier and always advances to service details.
func (s *Session) SelectPackage(packageID string) error {
	if s.step != StepPackageSelection {
		return fmt.Errorf("package can only be selected on the package-selection step")
	}
	if _, ok := catalog.PackageByID(s.serviceID, packageID); !ok {
		return fmt.Errorf("unknown package %q for service %q", packageID, s.serviceID)
	}
	s.packageID = packageID
	s.step = StepServiceDetails
	return nil
}

// GoBack steps backwards through the top-level flow. From package
// selection it returns to the service list unless the session came from
// a direct link, in which case the transition is suppressed.
func (s *Session) GoBack() {
	switch s.step {
	case StepPackageSelection:
		s.packageID = ""
		if !s.directLink {
			s.step = StepServiceSelection
		}
	case StepServiceDetails:
		s.packageID = ""
		s.step = StepPackageSelection
	case StepBookingDetails:
		s.step = StepServiceDetails
	}
}

// Details resolves the descriptive bundle for the current selection;
// nil while the selection is incomplete or unknown.
func (s *Session) Details() *catalog.ServiceDetails {
	return catalog.Details(s.serviceID, s.packageID)
}

// OpenModal opens the booking modal on the appointments sub-step.
func (s *Session) OpenModal() error {
	if s.step != StepServiceDetails {
		return fmt.Errorf("booking can only start from the service-details step")
	}
	s.modalOpen = true
	s.modalStep = ModalAppointments
	return nil
}

// CloseModal discards all modal-scoped state, whatever the sub-step.
func (s *Session) CloseModal() {
	s.modalOpen = false
	s.modalStep = ModalAppointments
	s.solicitorID = ""
	s.date = ""
	s.timeSlot = ""
	s.contact = ContactInfo{}
}

// SelectSolicitor picks a solicitor. Time slots are solicitor-specific,
// so any previously chosen slot is cleared.
func (s *Session) SelectSolicitor(solicitorID string) error {
	if _, ok := catalog.SolicitorByID(solicitorID); !ok {
		return fmt.Errorf("unknown solicitor %q", solicitorID)
	}
	s.solicitorID = solicitorID
	s.timeSlot = ""
	return nil
}

// SelectDate picks an appointment date and clears the chosen time slot.
// The date string comes from a selectable calendar cell.
func (s *Session) SelectDate(date string) {
	s.date = date
	s.timeSlot = ""
}

// SelectTime picks a slot from the selected solicitor's list.
func (s *Session) SelectTime(slot string) error {
	sol, ok := catalog.SolicitorByID(s.solicitorID)
	if !ok {
		return fmt.Errorf("select a solicitor before a time slot")
	}
	for _, t := range sol.TimeSlots {
		if t == slot {
			s.timeSlot = slot
			return nil
		}
	}
	return fmt.Errorf("slot %q is not offered by %s", slot, sol.Name)
}

// Calendar renders the month grid for the month the modal is showing.
func (s *Session) Calendar() []calendar.Day {
	return calendar.Grid(s.month, s.year, s.Now())
}

// CalendarMonth returns the month and year the modal is showing.
func (s *Session) CalendarMonth() (time.Month, int) {
	return s.month, s.year
}

// NextMonth moves the calendar one month forward.
func (s *Session) NextMonth() {
	s.month, s.year = calendar.Next(s.month, s.year)
}

// PreviousMonth moves the calendar one month back.
func (s *Session) PreviousMonth() {
	s.month, s.year = calendar.Previous(s.month, s.year)
}

// CanProceedToInformation reports whether the appointments gate is open:
// solicitor, date and time must all be set.
func (s *Session) CanProceedToInformation() bool {
	return s.solicitorID != "" && s.date != "" && s.timeSlot != ""
}

// ProceedToInformation advances the modal once the gate is open.
func (s *Session) ProceedToInformation() error {
	if s.modalStep != ModalAppointments {
		return fmt.Errorf("not on the appointments step")
	}
	if !s.CanProceedToInformation() {
		return fmt.Errorf("solicitor, date and time are all required")
	}
	s.modalStep = ModalInformation
	return nil
}

// SetContact stores the information-step form.
func (s *Session) SetContact(contact ContactInfo) {
	s.contact = contact
}

// ProceedToConfirmation advances once every contact field is filled in.
func (s *Session) ProceedToConfirmation() error {
	if s.modalStep != ModalInformation {
		return fmt.Errorf("not on the information step")
	}
	if !s.contact.Complete() {
		return fmt.Errorf("all contact fields are required")
	}
	s.modalStep = ModalConfirmation
	return nil
}

// BackToAppointments returns from information to appointments. Backward
// transitions are always allowed.
func (s *Session) BackToAppointments() {
	if s.modalStep == ModalInformation {
		s.modalStep = ModalAppointments
	}
}

// BackToInformation returns from confirmation to information.
func (s *Session) BackToInformation() {
	if s.modalStep == ModalConfirmation {
		s.modalStep = ModalInformation
	}
}

// Summary is the confirmation-step recap.
type Summary struct {
	Service string
	Price   string
	Name    string
	Email   string
	Phone   string
}

// Summary renders the confirmation summary, e.g. service
// "Immigration - 30 Mins" and price "£60.00".
func (s *Session) Summary() Summary {
	service, _ := catalog.ServiceByID(s.serviceID)
	pkg, _ := catalog.PackageByID(s.serviceID, s.packageID)
	return Summary{
		Service: fmt.Sprintf("%s - %s", service.Title, pkg.Label()),
		Price:   pkg.PriceLabel(),
		Name:    s.contact.FirstName + " " + s.contact.LastName,
		Email:   s.contact.Email,
		Phone:   s.contact.Phone,
	}
}

// Finish persists the booking (exactly one save call), dispatches the
// confirmation best-effort, and resets the session to its entry step.
// A failed save leaves the session on the confirmation step so the user
// can retry.
func (s *Session) Finish(ctx context.Context) entities.SaveResult {
	if !s.modalOpen || s.modalStep != ModalConfirmation {
		return entities.SaveResult{Success: false, Error: "booking is not ready to finish"}
	}

	service, _ := catalog.ServiceByID(s.serviceID)
	pkg, _ := catalog.PackageByID(s.serviceID, s.packageID)
	solicitor, _ := catalog.SolicitorByID(s.solicitorID)

	result := s.saver.SaveBooking(ctx, entities.BookingData{
		ServiceType:     service.Title,
		Persons:         pkg.Label(),
		Price:           pkg.PriceString(),
		FirstName:       s.contact.FirstName,
		LastName:        s.contact.LastName,
		Email:           s.contact.Email,
		Phone:           s.contact.Phone,
		Lender:          s.contact.Lender,
		Solicitor:       solicitor.Name,
		AppointmentDate: s.date,
		AppointmentTime: s.timeSlot,
	})
	if !result.Success {
		return result
	}

	if s.notifier != nil {
		confirmation := entities.Confirmation{
			BookingID:       result.BookingID,
			ToName:          s.contact.FirstName + " " + s.contact.LastName,
			ToEmail:         s.contact.Email,
			Phone:           s.contact.Phone,
			ServiceName:     service.Title,
			PackageDetails:  pkg.Label(),
			Price:           pkg.PriceLabel(),
			SolicitorName:   solicitor.Name,
			AppointmentDate: s.date,
			AppointmentTime: s.timeSlot,
			Lender:          s.contact.Lender,
		}
		if err := s.notifier.SendBookingConfirmation(ctx, confirmation); err != nil {
			log.Printf("booking %s confirmed, but the confirmation message failed: %v", result.BookingID, err)
		}
	}

	s.CloseModal()
	s.packageID = ""
	if s.directLink {
		s.step = StepPackageSelection
	} else {
		s.serviceID = ""
		s.step = StepServiceSelection
	}
	return result
}
