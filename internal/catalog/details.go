package catalog

import "fmt"

// ServiceDetails is the descriptive bundle shown on the service-details
// step for a concrete (service, package) selection.
type ServiceDetails struct {
	FullTitle          string
	Description        string
	CostDescription    string
	ServiceDescription string
	MeetingPoints      []string
}

// detailEntry is the static per-service content. Titles and cost lines
// are completed from the selected package at resolve time.
type detailEntry struct {
	titlePrefix        string // non-ILA services carry their own prefix
	subject            string // ILA services: "... for <subject>"
	description        string
	serviceDescription string
	meetingPoints      []string
}

var ilaMeetingPoints = []string{
	"Review the security documents you need to sign",
	"Explain the legal implications and responsibilities associated with signing",
	"Address any questions or concerns you may have",
	"Sign and provide the necessary ILA Solicitor Certificate, ensuring compliance with the lender's requirements",
}

var detailEntries = map[string]detailEntry{
	"immigration": {
		titlePrefix:        "Immigration Legal Services",
		description:        "Book a consultation with our expert immigration solicitors to discuss your visa, citizenship, or residency needs.",
		serviceDescription: "Our immigration solicitors provide expert legal advice and representation for all immigration matters including visa applications, citizenship applications, residency permits, and immigration appeals.",
		meetingPoints: []string{
			"Review your immigration case and documentation",
			"Provide expert legal advice on visa and residency options",
			"Assist with application preparation and submission",
			"Address any questions or concerns about your immigration status",
		},
	},
	"personal-injury": {
		titlePrefix:        "Personal Injury Services",
		description:        "Book a consultation with our personal injury solicitors to discuss your claim and the compensation you may be entitled to.",
		serviceDescription: "Our personal injury solicitors advise on claims arising from road traffic accidents, workplace injuries, medical negligence and public liability, and guide you through the claims process from first assessment to settlement.",
		meetingPoints: []string{
			"Review the circumstances of your injury and any supporting evidence",
			"Assess the strength and likely value of your claim",
			"Explain the claims process, timescales and funding options",
			"Address any questions or concerns about pursuing a claim",
		},
	},
	"family-solicitors": {
		titlePrefix:        "Family Law Services",
		description:        "Book a consultation with our experienced family solicitors to discuss your family law matters including divorce, custody, and family agreements.",
		serviceDescription: "Our family solicitors provide comprehensive family law services including divorce proceedings, child custody arrangements, prenuptial agreements, family mediation, and other family-related legal matters.",
		meetingPoints: []string{
			"Review your family law case and circumstances",
			"Provide expert legal advice on your options",
			"Assist with documentation and legal proceedings",
			"Address any questions or concerns about your family law matter",
		},
	},
	"buy-to-let": {
		subject:            "Buy-to-Let",
		description:        "Book a session for ILA to satisfy your lender's requirements and ensure your buy-to-let mortgage process proceeds without delay.",
		serviceDescription: "This ILA service is required when someone is providing a personal guarantee and/or property as security for a buy-to-let mortgage. Buy-to-let mortgages are commonly used by property investors to purchase rental properties.",
		meetingPoints:      ilaMeetingPoints,
	},
	"bridging-finance": {
		subject:            "Bridging Finance",
		description:        "Book a session for ILA to satisfy your lender's requirements and ensure your bridging finance process proceeds without delay.",
		serviceDescription: "This ILA service is required when someone is providing a personal guarantee and/or property as security for a bridging loan. Bridging finance is often used for short-term borrowing needs, such as property purchases or refurbishments, where the lender will require security for the loan.",
		meetingPoints:      ilaMeetingPoints,
	},
	"joint-borrower": {
		subject:            "Joint Borrower Sole Proprietor",
		description:        "Book a session for ILA to satisfy your lender's requirements and ensure your joint borrower sole proprietor mortgage process proceeds without delay.",
		serviceDescription: "This ILA service is required when someone is joining a mortgage to help with affordability but without taking legal ownership. This arrangement allows family members to help with mortgage payments while the property remains solely owned by the main borrower.",
		meetingPoints: []string{
			"Review the mortgage documents and your obligations as a joint borrower",
			"Explain the legal implications and financial responsibilities",
			"Address any questions or concerns you may have",
			"Sign and provide the necessary ILA Solicitor Certificate, ensuring compliance with the lender's requirements",
		},
	},
	"second-charge": {
		subject:            "2nd Charge Loan",
		description:        "Book a session for ILA to satisfy your lender's requirements and ensure your second charge loan process proceeds without delay.",
		serviceDescription: "This ILA service is required when securing a loan with a second charge alongside your existing mortgage. Second charge loans allow you to borrow against the equity in your property while keeping your existing mortgage in place.",
		meetingPoints: []string{
			"Review the second charge documents and security arrangements",
			"Explain the legal implications and risks of second charge lending",
			"Address any questions or concerns you may have",
			"Sign and provide the necessary ILA Solicitor Certificate, ensuring compliance with the lender's requirements",
		},
	},
	"occupier-consent": {
		subject:            "Occupier Consent Form",
		description:        "Book a session for ILA to satisfy your lender's requirements and ensure your occupier consent process proceeds without delay.",
		serviceDescription: "This ILA service is required when confirming the lender's charge takes priority over any rights you may have in the property. This is typically needed when you live in a property that is being used as security for someone else's borrowing.",
		meetingPoints: []string{
			"Review the occupier consent documents you need to sign",
			"Explain your rights and the priority of the lender's charge over the property",
			"Address any questions or concerns you may have about your occupancy rights",
			"Sign and provide the necessary ILA Solicitor Certificate, ensuring compliance with the lender's requirements",
		},
	},
	"business-loan": {
		subject:            "Business Loan",
		description:        "Book a session for ILA to satisfy your lender's requirements and ensure your business loan process proceeds without delay.",
		serviceDescription: "This ILA service is required when providing a personal guarantee or using property as security for a business borrowing. This ensures you understand the personal liability you are taking on for business debts.",
		meetingPoints: []string{
			"Review the business loan documents and personal guarantee requirements",
			"Explain the legal implications and personal liability for business debts",
			"Address any questions or concerns about the business loan arrangement",
			"Sign and provide the necessary ILA Solicitor Certificate, ensuring compliance with the lender's requirements",
		},
	},
	"third-party-borrowing": {
		subject:            "3rd Party Borrowing",
		description:        "Book a session for ILA to satisfy your lender's requirements and ensure your third party borrowing process proceeds without delay.",
		serviceDescription: "This ILA service is required when borrowing in another person's or company's name, supported by a personal guarantee or property charge. This ensures you understand your obligations when supporting someone else's borrowing.",
		meetingPoints: []string{
			"Review the third party borrowing documents and your guarantee obligations",
			"Explain the legal implications of supporting another party's borrowing",
			"Address any questions about your liability and the security arrangements",
			"Sign and provide the necessary ILA Solicitor Certificate, ensuring compliance with the lender's requirements",
		},
	},
	"equity-release": {
		subject:            "Equity Release",
		description:        "Book a session for ILA to satisfy your lender's requirements and ensure your equity release process proceeds without delay.",
		serviceDescription: "This ILA service is required when releasing funds from your home through a lifetime mortgage or similar arrangement. This ensures you understand the long-term implications of equity release on your property and inheritance.",
		meetingPoints: []string{
			"Review the equity release documents and loan terms",
			"Explain the long-term implications on your property and inheritance",
			"Address any questions about repayment terms and interest accumulation",
			"Sign and provide the necessary ILA Solicitor Certificate, ensuring compliance with the lender's requirements",
		},
	},
	"change-ownership": {
		subject:            "Change of Ownership",
		description:        "Book a session for ILA to satisfy your lender's requirements and ensure your change of ownership process proceeds without delay.",
		serviceDescription: "This ILA service is required when changing legal ownership by adding or removing a co-owner. This ensures you understand the legal and financial implications of ownership changes on your property.",
		meetingPoints: []string{
			"Review the ownership change documents and new ownership structure",
			"Explain the legal implications of adding or removing co-owners",
			"Address any questions about property rights and financial responsibilities",
			"Sign and provide the necessary ILA Solicitor Certificate, ensuring compliance with the requirements",
		},
	},
	"deposit-gift": {
		subject:            "Deposit Gift",
		description:        "Book a session for ILA to satisfy your lender's requirements and ensure your deposit gift process proceeds without delay.",
		serviceDescription: "This ILA service is required when gifting funds towards a property purchase with no repayment expected. This confirms the gift is genuine and there are no hidden obligations or expectations of repayment.",
		meetingPoints: []string{
			"Review the gift documentation and confirm no repayment is expected",
			"Explain the legal implications of property gifting and tax considerations",
			"Address any questions about the gift arrangements and future obligations",
			"Sign and provide the necessary ILA Solicitor Certificate, ensuring compliance with the lender's requirements",
		},
	},
}

// Details resolves the descriptive bundle for a selection. It returns
// nil for unknown service/package combinations; callers treat that as
// "details not yet available", not as an error.
func Details(serviceID, packageID string) *ServiceDetails {
	entry, ok := detailEntries[serviceID]
	if !ok {
		return nil
	}
	pkg, ok := PackageByID(serviceID, packageID)
	if !ok {
		return nil
	}

	var fullTitle, costDescription string
	if pkg.DurationLabel != "" {
		fullTitle = fmt.Sprintf("%s - %s", entry.titlePrefix, pkg.DurationLabel)
		costDescription = fmt.Sprintf("The cost for a %s consultation is %s including VAT.", pkg.DurationLabel, pkg.PriceLabel())
	} else {
		prefix := entry.titlePrefix
		suffix := ""
		if prefix == "" {
			prefix = "Independent Legal Advice (ILA)"
			suffix = " for " + entry.subject
		}
		fullTitle = fmt.Sprintf("%s for %s%s", prefix, pkg.Label(), suffix)
		costDescription = fmt.Sprintf("The cost for %s is %s including VAT, with an additional £18 (including VAT) for Special Delivery postage if needed.", personsPhrase(pkg.Persons), pkg.PriceLabel())
	}

	return &ServiceDetails{
		FullTitle:          fullTitle,
		Description:        entry.description,
		CostDescription:    costDescription,
		ServiceDescription: entry.serviceDescription,
		MeetingPoints:      entry.meetingPoints,
	}
}

func personsPhrase(persons int) string {
	if persons == 1 {
		return "one person"
	}
	return fmt.Sprintf("%d persons", persons)
}
