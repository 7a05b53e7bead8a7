package app

import (
	"pactum/api/internal/contract"
	"pactum/api/internal/store"
)

// demoConsultingAgreement is the document seeded into an empty database.
// Content uses the legacy marker syntax on purpose: seeding goes through the
// same Normalize path as any imported document.
func demoConsultingAgreement() contract.Document {
	return contract.Document{
		Title:       "Consulting Services Agreement",
		Description: "This agreement outlines the terms for consulting services provided by the Consultant to the Client.",
		Content: `
    <h1 style="text-align: center">Consulting Services Agreement</h1>
    <p>This Consulting Services Agreement ("Agreement") is entered into as of §{effectiveDate} by and between §{party1}, a §{party1Type} ("Client"), and §{party2}, a §{party2Type} ("Consultant").</p>

    <h2>1. Scope of Services</h2>
    <p>The Consultant shall provide the following services to the Client:</p>
    <ul>
      <li>Strategic business consulting in the areas of §{consultingAreas}</li>
      <li>Market analysis and competitive research for §{industry}</li>
      <li>Development of a comprehensive §{planType} plan</li>
      <li>Weekly progress reports to be delivered via §{reportDeliveryMethod}</li>
    </ul>
    <p>The services shall commence on §{startDate} and continue for a period of §{duration} months unless terminated earlier in accordance with this Agreement.</p>

    <h2>2. Compensation</h2>
    <p>The Client shall pay the Consultant a total fee of §{amount} for the services, payable in §{paymentTerms}. The first payment is due on §{firstPaymentDate}, with subsequent payments due on the §{paymentSchedule} of each month thereafter.</p>
    <p>Any additional expenses incurred by the Consultant, such as travel or materials, up to a maximum of §{expenseCap}, shall be reimbursed by the Client within §{reimbursementPeriod} days of receiving an invoice.</p>

    <h2>3. Confidentiality</h2>
    <p>The Consultant agrees to maintain the confidentiality of all proprietary information provided by the Client, including but not limited to §{confidentialItems}. This obligation shall survive the termination of this Agreement for a period of §{confidentialityPeriod} years.</p>

    <h2>4. Termination</h2>
    <p>Either party may terminate this Agreement with §{noticePeriod} days' written notice. Upon termination, the Client shall pay the Consultant for all services rendered up to the date of termination, not to exceed §{terminationCap}.</p>

    <h2>5. Governing Law</h2>
    <p>This Agreement shall be governed by and construed in accordance with the laws of the State of §{governingState}.</p>

    <h2>6. Dispute Resolution</h2>
    <p>Any disputes arising under this Agreement shall be resolved through §{disputeResolutionMethod}, with proceedings to be held in §{disputeLocation}.</p>

    <p><strong>IN WITNESS WHEREOF</strong>, the parties hereto have executed this Agreement as of the day and year first above written.</p>
    <p>Client: §{party1Signature}</p>
    <p>Consultant: §{party2Signature}</p>
`,
		Fields: []contract.Field{
			{Name: "effectiveDate", Type: contract.FieldDate, Options: []string{}, Value: "2025-06-15", Required: true},
			{Name: "party1", Type: contract.FieldText, Options: []string{}, Value: "Acme Corporation", Mapping: "party-1.CompanyName", Required: true},
			{Name: "party1Type", Type: contract.FieldText, Options: []string{}, Value: "corporation", Required: true},
			{Name: "party2", Type: contract.FieldText, Options: []string{}, Value: "Jane Doe Consulting", Required: true},
			{Name: "party2Type", Type: contract.FieldText, Options: []string{}, Value: "sole proprietorship", Required: true},
			{Name: "consultingAreas", Type: contract.FieldText, Options: []string{}, Value: "marketing and operations"},
			{Name: "industry", Type: contract.FieldText, Options: []string{}, Value: "technology"},
			{Name: "planType", Type: contract.FieldText, Options: []string{}, Value: "strategic business"},
			{Name: "reportDeliveryMethod", Type: contract.FieldText, Options: []string{"email", "cloud share", "in-person"}, Value: "email", Required: true},
			{Name: "startDate", Type: contract.FieldDate, Options: []string{}, Value: "2025-07-01", Required: true},
			{Name: "duration", Type: contract.FieldNumber, Options: []string{}, Value: "12", Required: true},
			{Name: "amount", Type: contract.FieldNumber, Options: []string{}, Value: "50000", Required: true},
			{Name: "paymentTerms", Type: contract.FieldText, Options: []string{"monthly", "quarterly", "upon completion"}, Value: "monthly", Required: true},
			{Name: "firstPaymentDate", Type: contract.FieldDate, Options: []string{}, Value: "2025-07-15", Required: true},
			{Name: "paymentSchedule", Type: contract.FieldText, Options: []string{}, Value: "15th", Required: true},
			{Name: "expenseCap", Type: contract.FieldNumber, Options: []string{}, Value: "5000"},
			{Name: "reimbursementPeriod", Type: contract.FieldNumber, Options: []string{}, Value: "30"},
			{Name: "confidentialItems", Type: contract.FieldText, Options: []string{}, Value: "business plans, financial data, customer lists"},
			{Name: "confidentialityPeriod", Type: contract.FieldNumber, Options: []string{}, Value: "3", Required: true},
			{Name: "noticePeriod", Type: contract.FieldNumber, Options: []string{}, Value: "30", Required: true},
			{Name: "terminationCap", Type: contract.FieldNumber, Options: []string{}, Value: "10000"},
			{Name: "governingState", Type: contract.FieldText, Options: []string{}, Value: "California", Required: true},
			{Name: "disputeResolutionMethod", Type: contract.FieldText, Options: []string{"arbitration", "mediation", "litigation"}, Value: "arbitration", Required: true},
			{Name: "disputeLocation", Type: contract.FieldText, Options: []string{}, Value: "San Francisco, California", Required: true},
			{Name: "party1Signature", Type: contract.FieldText, Options: []string{}, Value: "John Smith, CEO", Required: true},
			{Name: "party2Signature", Type: contract.FieldText, Options: []string{}, Value: "Jane Doe, Consultant", Required: true},
		},
		Sections: []contract.Section{},
		Parties: []contract.Party{
			{
				ID:   "party-1",
				Name: "Acme Corporation",
				Type: contract.PartyCompany,
				Fields: []contract.PartyField{
					{Name: "CompanyName", Type: contract.FieldText, Value: "Acme Corporation", Required: true},
					{Name: "Address", Type: contract.FieldText, Value: "123 Business Rd, San Francisco, CA 94105"},
					{Name: "ContactEmail", Type: contract.FieldEmail, Value: "contact@acme.com", Required: true},
				},
			},
			{
				ID:   "party-2",
				Name: "Jane Doe",
				Type: contract.PartyIndividual,
				Fields: []contract.PartyField{
					{Name: "FirstName", Type: contract.FieldText, Value: "Jane", Required: true},
					{Name: "LastName", Type: contract.FieldText, Value: "Doe", Required: true},
					{Name: "Email", Type: contract.FieldEmail, Value: "jane.doe@consulting.com", Required: true},
				},
			},
		},
	}
}

// demoSectionCatalog seeds the reusable section library.
func demoSectionCatalog() []store.CatalogSection {
	return []store.CatalogSection{
		{
			ID:    "section-1",
			Title: "Introduction",
			Content: `
        <p>This Consulting Services Agreement is made effective as of §{effectiveDate} by and between §{party1}, a §{party1Type}, and §{party2}, a §{party2Type}.</p>
`,
			Fields: []contract.Field{
				{Name: "effectiveDate", Type: contract.FieldDate, Options: []string{}, Value: "2025-06-15", Required: true},
				{Name: "party1", Type: contract.FieldText, Options: []string{}, Value: "Acme Corporation", Mapping: "party-1.CompanyName", Required: true},
				{Name: "party1Type", Type: contract.FieldText, Options: []string{}, Value: "corporation", Required: true},
				{Name: "party2", Type: contract.FieldText, Options: []string{}, Value: "Jane Doe Consulting", Required: true},
				{Name: "party2Type", Type: contract.FieldText, Options: []string{}, Value: "sole proprietorship", Required: true},
			},
		},
		{
			ID:    "section-2",
			Title: "Scope of Services",
			Content: `
        <p>The Consultant shall provide the following services:</p>
        <ul>
          <li>Strategic consulting in §{consultingAreas}</li>
          <li>Market analysis for §{industry}</li>
          <li>Development of a §{planType} plan</li>
          <li>Weekly reports via §{reportDeliveryMethod}</li>
        </ul>
        <p>Services commence on §{startDate} for §{duration} months.</p>
`,
			Fields: []contract.Field{
				{Name: "consultingAreas", Type: contract.FieldText, Options: []string{}, Value: "marketing and operations"},
				{Name: "industry", Type: contract.FieldText, Options: []string{}, Value: "technology"},
				{Name: "planType", Type: contract.FieldText, Options: []string{}, Value: "strategic business"},
				{Name: "reportDeliveryMethod", Type: contract.FieldText, Options: []string{"email", "cloud share", "in-person"}, Value: "email", Required: true},
				{Name: "startDate", Type: contract.FieldDate, Options: []string{}, Value: "2025-07-01", Required: true},
				{Name: "duration", Type: contract.FieldNumber, Options: []string{}, Value: "12", Required: true},
			},
		},
		{
			ID:    "section-3",
			Title: "Compensation",
			Content: `
        <p>The Client shall pay the Consultant §{amount} in §{paymentTerms} installments, starting on §{firstPaymentDate}, with subsequent payments on the §{paymentSchedule} of each month.</p>
        <p>Reimbursable expenses up to §{expenseCap} shall be paid within §{reimbursementPeriod} days.</p>
`,
			Fields: []contract.Field{
				{Name: "amount", Type: contract.FieldNumber, Options: []string{}, Value: "50000", Required: true},
				{Name: "paymentTerms", Type: contract.FieldText, Options: []string{"monthly", "quarterly", "upon completion"}, Value: "monthly", Required: true},
				{Name: "firstPaymentDate", Type: contract.FieldDate, Options: []string{}, Value: "2025-07-15", Required: true},
				{Name: "paymentSchedule", Type: contract.FieldText, Options: []string{}, Value: "15th", Required: true},
				{Name: "expenseCap", Type: contract.FieldNumber, Options: []string{}, Value: "5000"},
				{Name: "reimbursementPeriod", Type: contract.FieldNumber, Options: []string{}, Value: "30"},
			},
		},
	}
}
