package app

import "iil_api/internal/domain"

func ptr[T any](v T) *T { return &v }

func sampleCourses() []domain.Course {
	return []domain.Course{
		{
			Slug:             "ielts-coaching",
			Title:            "IELTS Coaching",
			Category:         "Exam Prep",
			ShortDescription: "Master IELTS with expert trainers and personalized feedback.",
			Description:      ptr("A structured IELTS program covering Listening, Reading, Writing, and Speaking with mock tests and band-improvement strategies."),
			ImageURL:         ptr("https://images.unsplash.com/photo-1517520287167-4bbf64a00d66?q=80&w=1600&auto=format&fit=crop"),
			Icon:             ptr("GraduationCap"),
			DurationWeeks:    ptr(8),
			Price:            ptr(299.0),
			Highlights: []string{
				"Band-focused curriculum",
				"Weekly mock tests",
				"Speaking rooms and feedback",
			},
			Syllabus: []string{
				"Diagnostic test",
				"Module-wise mastery",
				"Full-length mocks",
			},
		},
		{
			Slug:             "pte-preparation",
			Title:            "PTE Preparation",
			Category:         "Exam Prep",
			ShortDescription: "Ace PTE with strategy-driven sessions and practice labs.",
			Description:      ptr("Learn the PTE patterns, time management and scoring mechanics with practice on real-like tests."),
			ImageURL:         ptr("https://images.unsplash.com/photo-1523050854058-8df90110c9f1?q=80&w=1600&auto=format&fit=crop"),
			Icon:             ptr("BookOpen"),
			DurationWeeks:    ptr(6),
			Price:            ptr(249.0),
			Highlights:       []string{"AI-scored practice", "Templates and hacks", "Doubt-clearing clinics"},
			Syllabus:         []string{"Speaking & Writing", "Reading", "Listening"},
		},
		{
			Slug:             "foreign-languages",
			Title:            "Foreign Languages",
			Category:         "Language",
			ShortDescription: "Learn German, French, Spanish, Japanese and more.",
			Description:      ptr("Level-based language learning with immersive activities and conversation practice."),
			ImageURL:         ptr("https://images.unsplash.com/photo-1546410531-bb4caa6b424d?q=80&w=1600&auto=format&fit=crop"),
			Icon:             ptr("Globe2"),
			DurationWeeks:    ptr(12),
			Price:            ptr(399.0),
			Highlights:       []string{"A1–C1 levels", "Native mentors", "Cultural immersion"},
			Syllabus:         []string{"Basics", "Grammar & Vocabulary", "Conversation"},
		},
	}
}

func sampleTestimonials() []domain.Testimonial {
	return []domain.Testimonial{
		{
			Name:          "Aarav S.",
			CourseSlug:    ptr("ielts-coaching"),
			Message:       "Scored an overall 8.0! The mocks and feedback were game-changers.",
			ScoreOrResult: ptr("IELTS 8.0"),
		},
		{
			Name:          "Meera T.",
			CourseSlug:    ptr("pte-preparation"),
			Message:       "I loved the labs. Cracked PTE in the first attempt.",
			ScoreOrResult: ptr("PTE 79+"),
		},
	}
}
