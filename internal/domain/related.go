package domain

// Entities owned by sibling services. Only the fields used for enrichment are
// decoded.

type Branch struct {
	ID    string `json:"_id"`
	Title string `json:"title,omitempty"`
	Code  string `json:"code,omitempty"`
}

type Department struct {
	ID    string `json:"_id"`
	Title string `json:"title,omitempty"`
	Code  string `json:"code,omitempty"`
}

type Product struct {
	ID         string  `json:"_id,omitempty"`
	Name       string  `json:"name,omitempty"`
	Code       string  `json:"code,omitempty"`
	CategoryID string  `json:"categoryId,omitempty"`
	Status     string  `json:"status,omitempty"`
	Type       string  `json:"type,omitempty"`
	UnitPrice  float64 `json:"unitPrice,omitempty"`
}

type ProductCategory struct {
	ID     string `json:"_id"`
	Name   string `json:"name,omitempty"`
	Code   string `json:"code,omitempty"`
	Order  string `json:"order,omitempty"`
	Status string `json:"status,omitempty"`
}

type Customer struct {
	ID           string `json:"_id"`
	Code         string `json:"code,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	PrimaryEmail string `json:"primaryEmail,omitempty"`
	PrimaryPhone string `json:"primaryPhone,omitempty"`
}

type Company struct {
	ID           string `json:"_id"`
	Code         string `json:"code,omitempty"`
	PrimaryName  string `json:"primaryName,omitempty"`
	PrimaryEmail string `json:"primaryEmail,omitempty"`
	PrimaryPhone string `json:"primaryPhone,omitempty"`
}

type User struct {
	ID        string       `json:"_id"`
	Code      string       `json:"code,omitempty"`
	Email     string       `json:"email,omitempty"`
	Username  string       `json:"username,omitempty"`
	FirstName string       `json:"firstName,omitempty"`
	LastName  string       `json:"lastName,omitempty"`
	Details   *UserDetails `json:"details,omitempty"`
}

type UserDetails struct {
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	OperatorPhone string `json:"operatorPhone,omitempty"`
}

// CustomerView is the customer shape attached to order records regardless of
// whether the order was placed by a customer, a company or a user.
type CustomerView struct {
	ID           string `json:"_id"`
	Code         string `json:"code"`
	PrimaryPhone string `json:"primaryPhone"`
	FirstName    string `json:"firstName"`
	PrimaryEmail string `json:"primaryEmail"`
	LastName     string `json:"lastName"`
}

// CustomerViewFromCustomer passes customer fields through unchanged.
func CustomerViewFromCustomer(c Customer) *CustomerView {
	return &CustomerView{
		ID:           c.ID,
		Code:         c.Code,
		PrimaryPhone: c.PrimaryPhone,
		FirstName:    c.FirstName,
		PrimaryEmail: c.PrimaryEmail,
		LastName:     c.LastName,
	}
}

// CustomerViewFromCompany projects a company: the primary name becomes the
// first name and the last name is always empty.
func CustomerViewFromCompany(c Company) *CustomerView {
	return &CustomerView{
		ID:           c.ID,
		Code:         c.Code,
		PrimaryPhone: c.PrimaryPhone,
		FirstName:    c.PrimaryName,
		PrimaryEmail: c.PrimaryEmail,
		LastName:     "",
	}
}

// CustomerViewFromUser projects a team member acting as a customer.
func CustomerViewFromUser(u User) *CustomerView {
	phone := ""
	if u.Details != nil {
		phone = u.Details.OperatorPhone
	}
	return &CustomerView{
		ID:           u.ID,
		Code:         u.Code,
		PrimaryPhone: phone,
		FirstName:    u.FirstName + " " + u.LastName,
		PrimaryEmail: u.Email,
		LastName:     u.Username,
	}
}
