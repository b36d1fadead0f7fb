package domain

// Enquiry is a contact form submission. Repeated submissions are all kept.
type Enquiry struct {
	ID             string  `json:"_id,omitempty" bson:"-"`
	Name           string  `json:"name" bson:"name"`
	Email          string  `json:"email" bson:"email"`
	Phone          *string `json:"phone" bson:"phone"`
	CourseInterest *string `json:"course_interest" bson:"course_interest"`
	Message        *string `json:"message" bson:"message"`
}

func ValidateEnquiry(raw map[string]any, policy Policy) (Enquiry, error) {
	f := newFields(raw)
	e := Enquiry{
		ID:             f.id(),
		Name:           f.requiredString("name"),
		Email:          f.requiredEmail("email"),
		Phone:          f.optionalString("phone"),
		CourseInterest: f.optionalString("course_interest"),
		Message:        f.optionalString("message"),
	}
	if err := f.finish(KindEnquiry, policy); err != nil {
		return Enquiry{}, err
	}
	return e, nil
}
