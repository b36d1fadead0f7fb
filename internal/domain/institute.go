package domain

const DefaultInstituteName = "International Institute of Languages"

// InstituteInfo backs the About page. One document is expected but the
// store does not enforce it.
type InstituteInfo struct {
	ID          string            `json:"_id,omitempty" bson:"-"`
	Name        string            `json:"name" bson:"name"`
	Tagline     *string           `json:"tagline" bson:"tagline"`
	Mission     *string           `json:"mission" bson:"mission"`
	Vision      *string           `json:"vision" bson:"vision"`
	Address     *string           `json:"address" bson:"address"`
	Email       *string           `json:"email" bson:"email"`
	Phone       *string           `json:"phone" bson:"phone"`
	SocialLinks map[string]string `json:"social_links" bson:"social_links"` // platform -> URL
}

func DefaultInstituteInfo() InstituteInfo {
	return InstituteInfo{Name: DefaultInstituteName, SocialLinks: map[string]string{}}
}

func ValidateInstituteInfo(raw map[string]any, policy Policy) (InstituteInfo, error) {
	f := newFields(raw)
	name := DefaultInstituteName
	if s := f.optionalString("name"); s != nil {
		name = *s
	}
	i := InstituteInfo{
		ID:          f.id(),
		Name:        name,
		Tagline:     f.optionalString("tagline"),
		Mission:     f.optionalString("mission"),
		Vision:      f.optionalString("vision"),
		Address:     f.optionalString("address"),
		Email:       f.optionalEmail("email"),
		Phone:       f.optionalString("phone"),
		SocialLinks: f.stringMap("social_links"),
	}
	if err := f.finish(KindInstituteInfo, policy); err != nil {
		return InstituteInfo{}, err
	}
	return i, nil
}
