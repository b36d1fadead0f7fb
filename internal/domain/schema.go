package domain

import "fmt"

type Kind string

const (
	KindCourse        Kind = "course"
	KindTestimonial   Kind = "testimonial"
	KindBlogPost      Kind = "blogpost"
	KindEnquiry       Kind = "enquiry"
	KindInstituteInfo Kind = "instituteinfo"
)

// registry is the single source of truth for kind -> collection and the
// order collections are advertised in.
var registry = []struct {
	kind       Kind
	collection string
	validate   func(map[string]any, Policy) (any, error)
}{
	{KindCourse, "course", func(raw map[string]any, p Policy) (any, error) { return ValidateCourse(raw, p) }},
	{KindTestimonial, "testimonial", func(raw map[string]any, p Policy) (any, error) { return ValidateTestimonial(raw, p) }},
	{KindBlogPost, "blogpost", func(raw map[string]any, p Policy) (any, error) { return ValidateBlogPost(raw, p) }},
	{KindEnquiry, "enquiry", func(raw map[string]any, p Policy) (any, error) { return ValidateEnquiry(raw, p) }},
	{KindInstituteInfo, "instituteinfo", func(raw map[string]any, p Policy) (any, error) { return ValidateInstituteInfo(raw, p) }},
}

// Collection returns the store collection for a kind, or "" if unknown.
func Collection(k Kind) string {
	for _, r := range registry {
		if r.kind == k {
			return r.collection
		}
	}
	return ""
}

// CollectionNames lists every recognized collection in registry order.
func CollectionNames() []string {
	out := make([]string, 0, len(registry))
	for _, r := range registry {
		out = append(out, r.collection)
	}
	return out
}

// Validate checks raw against the rules of kind and returns the typed record
// (Course, Testimonial, BlogPost, Enquiry or InstituteInfo).
func Validate(kind Kind, raw map[string]any, policy Policy) (any, error) {
	for _, r := range registry {
		if r.kind == kind {
			return r.validate(raw, policy)
		}
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}
