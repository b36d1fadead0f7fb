package domain

type BlogPost struct {
	ID            string   `json:"_id,omitempty" bson:"-"`
	Slug          string   `json:"slug" bson:"slug"`
	Title         string   `json:"title" bson:"title"`
	Excerpt       string   `json:"excerpt" bson:"excerpt"`
	Content       *string  `json:"content" bson:"content"`
	CoverImageURL *string  `json:"cover_image_url" bson:"cover_image_url"`
	Tags          []string `json:"tags" bson:"tags"`
	PublishedOn   *string  `json:"published_on" bson:"published_on"` // YYYY-MM-DD
}

func ValidateBlogPost(raw map[string]any, policy Policy) (BlogPost, error) {
	f := newFields(raw)
	b := BlogPost{
		ID:            f.id(),
		Slug:          f.requiredString("slug"),
		Title:         f.requiredString("title"),
		Excerpt:       f.requiredString("excerpt"),
		Content:       f.optionalString("content"),
		CoverImageURL: f.optionalString("cover_image_url"),
		Tags:          f.stringList("tags"),
		PublishedOn:   f.optionalDate("published_on"),
	}
	if err := f.finish(KindBlogPost, policy); err != nil {
		return BlogPost{}, err
	}
	return b, nil
}
