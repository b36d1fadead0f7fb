package domain

// Course is a catalog entry; Slug is its external lookup key.
type Course struct {
	ID               string   `json:"_id,omitempty" bson:"-"`
	Slug             string   `json:"slug" bson:"slug"`
	Title            string   `json:"title" bson:"title"`
	Category         string   `json:"category" bson:"category"`
	ShortDescription string   `json:"short_description" bson:"short_description"`
	Description      *string  `json:"description" bson:"description"`
	ImageURL         *string  `json:"image_url" bson:"image_url"`
	Icon             *string  `json:"icon" bson:"icon"` // lucide icon name
	DurationWeeks    *int     `json:"duration_weeks" bson:"duration_weeks"`
	Price            *float64 `json:"price" bson:"price"`
	Highlights       []string `json:"highlights" bson:"highlights"`
	Syllabus         []string `json:"syllabus" bson:"syllabus"`
}

func ValidateCourse(raw map[string]any, policy Policy) (Course, error) {
	f := newFields(raw)
	c := Course{
		ID:               f.id(),
		Slug:             f.requiredString("slug"),
		Title:            f.requiredString("title"),
		Category:         f.requiredString("category"),
		ShortDescription: f.requiredString("short_description"),
		Description:      f.optionalString("description"),
		ImageURL:         f.optionalString("image_url"),
		Icon:             f.optionalString("icon"),
		DurationWeeks:    f.optionalInt("duration_weeks", 1),
		Price:            f.optionalFloat("price", 0),
		Highlights:       f.stringList("highlights"),
		Syllabus:         f.stringList("syllabus"),
	}
	if err := f.finish(KindCourse, policy); err != nil {
		return Course{}, err
	}
	return c, nil
}
