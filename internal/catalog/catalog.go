package catalog

import "fmt"

// Service is one bookable legal service. The catalog is static and
// immutable at runtime.
type Service struct {
	ID          string
	Title       string
	Description string
}

// PackageOption is a priced variant of a service: either a person-count
// tier (Persons > 0) or a duration tier (DurationLabel set).
type PackageOption struct {
	ID            string
	Persons       int
	DurationLabel string
	Price         float64
	Savings       string
}

// Solicitor is a provider with a fixed list of offerable time slots.
// Slots are static per solicitor and are not reduced by prior bookings.
type Solicitor struct {
	ID          string
	Name        string
	Description string
	TimeSlots   []string
}

var services = []Service{
	{ID: "immigration", Title: "Immigration", Description: "Expert legal advice and representation for all immigration matters including visas, citizenship, and residency applications."},
	{ID: "personal-injury", Title: "Personal Injury", Description: "Advice and representation for personal injury claims, from road traffic accidents to workplace injuries."},
	{ID: "family-solicitors", Title: "Family Solicitors", Description: "Comprehensive family law services including divorce, child custody, prenuptial agreements, and family mediation."},
	{ID: "buy-to-let", Title: "Buy-to-Let", Description: "Acting as guarantor for a limited company's buy-to-let mortgage."},
	{ID: "bridging-finance", Title: "Bridging Finance", Description: "Need to provide a personal guarantee or legal charge over property for a short-term loan?"},
	{ID: "joint-borrower", Title: "Joint Borrower Sole Proprietor", Description: "Joining a mortgage to help with affordability but without taking legal ownership."},
	{ID: "second-charge", Title: "2nd Charge Loan", Description: "Securing a loan with a second charge alongside your existing mortgage."},
	{ID: "occupier-consent", Title: "Occupier Consent Form", Description: "Confirming the lender's charge takes priority over any rights you may have in the property."},
	{ID: "business-loan", Title: "Business Loan", Description: "Providing a personal guarantee or using property as security for a business borrowing."},
	{ID: "third-party-borrowing", Title: "3rd Party Borrowing", Description: "Borrowing in another person's or company's name, supported by a personal guarantee or property charge."},
	{ID: "equity-release", Title: "Equity Release", Description: "Releasing funds from your home through a lifetime mortgage or similar arrangement."},
	{ID: "change-ownership", Title: "Change of Ownership", Description: "Changing legal ownership by adding or removing a co-owner."},
	{ID: "deposit-gift", Title: "Deposit Gift", Description: "Gifting funds towards a property purchase with no repayment expected."},
}

// Default person-count table. Multi-person tiers carry a volume saving.
var personPackages = []PackageOption{
	{ID: "1-person", Persons: 1, Price: 150.00},
	{ID: "2-persons", Persons: 2, Price: 270.00, Savings: "10%"},
	{ID: "3-persons", Persons: 3, Price: 382.50, Savings: "15%"},
	{ID: "4-persons", Persons: 4, Price: 480.00, Savings: "20%"},
}

// Consultation services are priced by session length instead.
var durationPackages = []PackageOption{
	{ID: "30-min", DurationLabel: "30 Mins", Price: 60.00},
	{ID: "1-hour", DurationLabel: "1 Hour", Price: 100.00},
}

var durationPriced = map[string]bool{
	"immigration":       true,
	"personal-injury":   true,
	"family-solicitors": true,
}

// Occupier consent and deposit gifts involve at most two signatories.
var twoPersonOnly = map[string]bool{
	"occupier-consent": true,
	"deposit-gift":     true,
}

var solicitors = []Solicitor{
	{
		ID:          "dennis-brewer",
		Name:        "Dennis Brewer",
		Description: "A partner at Brewer Wallace Solicitors, Dennis Brewer is dedicated to providing clear, practical independent legal advice.",
		TimeSlots: []string{
			"9:30 - 9:45", "9:45 - 10:00", "10:00 - 10:15", "10:15 - 10:30",
			"10:30 - 10:45", "10:45 - 11:00", "11:00 - 11:15", "11:15 - 11:30",
			"11:30 - 11:45", "11:45 - 12:00", "12:00 - 12:15", "12:15 - 12:30",
			"12:30 - 12:45", "12:45 - 13:00", "13:30 - 13:45", "13:45 - 14:00",
			"14:00 - 14:15", "14:15 - 14:30", "14:30 - 14:45", "14:45 - 15:00",
			"15:00 - 15:15", "15:15 - 15:30",
		},
	},
	{
		ID:          "kevin-ogle",
		Name:        "Kevin Ogle",
		Description: "Kevin is a highly experienced SRA Regulated freelance solicitor advising clients across England and Wales.",
		TimeSlots: []string{
			"9:00 - 9:15", "9:15 - 9:30", "9:30 - 9:45", "9:45 - 10:00",
			"10:30 - 10:45", "10:45 - 11:00", "11:30 - 11:45", "11:45 - 12:00",
			"13:00 - 13:15", "13:15 - 13:30", "13:30 - 13:45", "13:45 - 14:00",
			"14:30 - 14:45", "14:45 - 15:00", "15:30 - 15:45", "15:45 - 16:00",
		},
	},
}

var lenders = []string{
	"Barclays Bank", "HSBC", "Lloyds Bank", "NatWest", "Santander",
	"Halifax", "TSB", "Metro Bank", "Monzo", "Starling Bank", "Other",
}

// Services lists the full catalog in display order.
func Services() []Service {
	return services
}

// ServiceByID looks a service up; ok is false for unknown ids.
func ServiceByID(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// PackagesFor returns the package tier table applicable to a service,
// or nil for an unknown service id.
func PackagesFor(serviceID string) []PackageOption {
	if _, ok := ServiceByID(serviceID); !ok {
		return nil
	}
	if durationPriced[serviceID] {
		return durationPackages
	}
	if twoPersonOnly[serviceID] {
		return personPackages[:2]
	}
	return personPackages
}

// PackageByID resolves a (service, package) pair against the service's
// own tier table, so e.g. "3-persons" is unknown for a two-signatory
// service and "30-min" is unknown for a person-priced one.
func PackageByID(serviceID, packageID string) (PackageOption, bool) {
	for _, p := range PackagesFor(serviceID) {
		if p.ID == packageID {
			return p, true
		}
	}
	return PackageOption{}, false
}

// Solicitors lists all bookable solicitors.
func Solicitors() []Solicitor {
	return solicitors
}

// SolicitorByID looks a solicitor up; ok is false for unknown ids.
func SolicitorByID(id string) (Solicitor, bool) {
	for _, s := range solicitors {
		if s.ID == id {
			return s, true
		}
	}
	return Solicitor{}, false
}

// Lenders lists the lender options offered on the information step.
func Lenders() []string {
	return lenders
}

// Label renders the tier for display: "2 Persons", "1 Person" or the
// duration label ("30 Mins").
func (p PackageOption) Label() string {
	if p.DurationLabel != "" {
		return p.DurationLabel
	}
	if p.Persons == 1 {
		return "1 Person"
	}
	return fmt.Sprintf("%d Persons", p.Persons)
}

// PriceLabel formats the tier price with the currency symbol and two
// decimal places, e.g. "£60.00".
func (p PackageOption) PriceLabel() string {
	return FormatPrice(p.Price)
}

// PriceString is the bare two-decimal amount persisted with a booking,
// e.g. "60.00".
func (p PackageOption) PriceString() string {
	return fmt.Sprintf("%.2f", p.Price)
}

// FormatPrice renders a monetary amount as "£N.NN".
func FormatPrice(amount float64) string {
	return fmt.Sprintf("£%.2f", amount)
}
