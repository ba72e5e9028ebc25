package entities

// CompanyProfileID is the key of the singleton company profile document.
const CompanyProfileID = "default"

// NoCompanyDetails is used in prompts when no company profile was configured.
const NoCompanyDetails = "No specific details provided."

// CompanyProfile is the business context the simulated customer asks about.
type CompanyProfile struct {
	Details string `json:"details" bson:"details"`
}

// PromptDetails returns the details to inject into a persona prompt.
func (c CompanyProfile) PromptDetails() string {
	if c.Details == "" {
		return NoCompanyDetails
	}
	return c.Details
}
