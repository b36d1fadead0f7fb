package domain

type Testimonial struct {
	ID            string  `json:"_id,omitempty" bson:"-"`
	Name          string  `json:"name" bson:"name"`
	CourseSlug    *string `json:"course_slug" bson:"course_slug"` // Course.Slug, not checked
	Message       string  `json:"message" bson:"message"`
	ScoreOrResult *string `json:"score_or_result" bson:"score_or_result"`
	AvatarURL     *string `json:"avatar_url" bson:"avatar_url"`
}

func ValidateTestimonial(raw map[string]any, policy Policy) (Testimonial, error) {
	f := newFields(raw)
	t := Testimonial{
		ID:            f.id(),
		Name:          f.requiredString("name"),
		CourseSlug:    f.optionalString("course_slug"),
		Message:       f.requiredString("message"),
		ScoreOrResult: f.optionalString("score_or_result"),
		AvatarURL:     f.optionalString("avatar_url"),
	}
	if err := f.finish(KindTestimonial, policy); err != nil {
		return Testimonial{}, err
	}
	return t, nil
}
