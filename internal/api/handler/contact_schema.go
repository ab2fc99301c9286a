package handler

// contactRequest mirrors the public contact form. Website is the honeypot
// field; the form never shows it, so any value marks a bot. Field names
// match the historical form exactly so the existing frontend keeps working.
type contactRequest struct {
	Company    string `json:"company"     form:"company"     validate:"required"`
	Name       string `json:"name"        form:"name"        validate:"required"`
	Email      string `json:"email"       form:"email"       validate:"required,email"`
	Phone      string `json:"phone"       form:"phone"       validate:"required"`
	Message    string `json:"message"     form:"message"     validate:"required"`
	Website    string `json:"website"     form:"website"`
	Location   string `json:"location"    form:"location"`
	Revenue    string `json:"revenue"     form:"revenue"`
	Employees  string `json:"employees"   form:"employees"`
	Industry   string `json:"industry"    form:"industry"`
	Years      string `json:"years"       form:"years"`
	Interest   string `json:"interest"    form:"interest"`
	CompanyURL string `json:"company_url" form:"company_url"`
}
