package model

import (
	"time"

	"gorm.io/datatypes"
)

// Static default content, returned by the content fetchers when the
// backing table is empty or unreachable and inserted once by the
// seeder. Pages always have something to render.

const DefaultStatsTitle = "Our Achievements"

func DefaultHero() Hero {
	return Hero{
		Tag:                 "Enrollment open",
		Title:               "Speak the world's languages with confidence",
		Description:         "Small classes, experienced native teachers and a proven curriculum for English, Chinese and IELTS preparation.",
		PrimaryButtonText:   "Explore programs",
		PrimaryButtonLink:   "/programs",
		SecondaryButtonText: "Contact us",
		SecondaryButtonLink: "/contact",
		ImageURL:            "/images/hero-default.jpg",
	}
}

func DefaultStats() []Stat {
	return []Stat{
		{Name: "Students taught", Stat: "1000+", Icon: "M12 14l9-5-9-5-9 5 9 5z"},
		{Name: "Years of experience", Stat: "15+", Icon: "M12 8v4l3 3m6-3a9 9 0 11-18 0 9 9 0 0118 0z"},
		{Name: "Certified teachers", Stat: "30+", Icon: "M17 20h5v-2a4 4 0 00-3-3.87M9 20H4v-2a4 4 0 013-3.87"},
		{Name: "Pass rate", Stat: "96%", Icon: "M9 12l2 2 4-4m6 2a9 9 0 11-18 0 9 9 0 0118 0z"},
	}
}

func DefaultWhyChooseUs() WhyChooseUs {
	return WhyChooseUs{
		Title:       "Why choose us",
		Description: "We focus on practical communication skills, not just grammar drills.",
		Features: []WhyChooseFeature{
			{Title: "Small groups", Description: "No more than 10 students per class.", Icon: "users"},
			{Title: "Native teachers", Description: "Qualified teachers with years of classroom experience.", Icon: "award"},
			{Title: "Flexible schedule", Description: "Morning, afternoon and evening classes all year round.", Icon: "clock"},
		},
	}
}

func DefaultFacilities() []Facility {
	return []Facility{
		{Title: "Modern classrooms", Description: "Bright rooms with interactive whiteboards and audio equipment."},
		{Title: "Self-study library", Description: "Graded readers, exam papers and quiet desks for independent study."},
		{Title: "Student lounge", Description: "A place to practice with classmates over coffee between lessons."},
	}
}

func DefaultEvents() []Event {
	return []Event{
		{
			Title:       "Open day",
			Description: "Visit the school, meet the teachers and take a free placement test.",
			Date:        time.Date(time.Now().Year(), time.September, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func DefaultTermBanner() TermBanner {
	return TermBanner{
		Text:     "Autumn term enrollment is open — early-bird discount until the end of the month.",
		IsActive: true,
	}
}

func DefaultFooter() Footer {
	return Footer{
		AboutText:     "LinguaEdu is an independent language school offering English, Chinese and IELTS preparation courses.",
		AddressLine1:  "12 Harbour Street",
		AddressLine2:  "Victoria District",
		Phone:         "+1 555 0123",
		Email:         "hello@linguaedu.example",
		CopyrightText: "© LinguaEdu Language School. All rights reserved.",
	}
}

func DefaultSectionSettings() []SectionSetting {
	return []SectionSetting{
		{Section: "stats", Title: DefaultStatsTitle, IsVisible: true},
	}
}

func DefaultProgramPages() []ProgramPage {
	return []ProgramPage{
		{
			Name:         "General English",
			Slug:         "general-english",
			Type:         ProgramEnglish,
			Theme:        ThemeBlue,
			Tag:          "Most popular",
			Price:        "from $120/month",
			CardFeatures: datatypes.JSONSlice[string]{"6 levels from A1 to C1", "Speaking-first methodology", "Certificate on completion"},
			ButtonText:   "Learn more",
			ButtonLink:   "/programs/general-english",
			Description:  "A complete English course from beginner to advanced.",
			IntroText:    "Our flagship course builds all four skills with an emphasis on real conversation.",
		},
		{
			Name:         "Chinese for Beginners",
			Slug:         "chinese-for-beginners",
			Type:         ProgramChinese,
			Theme:        ThemeRed,
			Tag:          "New",
			Price:        "from $140/month",
			CardFeatures: datatypes.JSONSlice[string]{"HSK 1-3 preparation", "Pinyin and characters", "Cultural workshops"},
			ButtonText:   "Learn more",
			ButtonLink:   "/programs/chinese-for-beginners",
			Description:  "Mandarin Chinese from zero, aligned with the HSK exam levels.",
			IntroText:    "Start speaking Mandarin from the first lesson with our communicative approach.",
		},
		{
			Name:         "IELTS Preparation",
			Slug:         "ielts-preparation",
			Type:         ProgramIELTS,
			Theme:        ThemeBlue,
			Tag:          "Exam course",
			Price:        "from $180/month",
			CardFeatures: datatypes.JSONSlice[string]{"Weekly mock exams", "Band 7+ strategies", "Writing feedback within 48h"},
			ButtonText:   "Learn more",
			ButtonLink:   "/programs/ielts-preparation",
			Description:  "Intensive preparation for the IELTS Academic and General exams.",
			IntroText:    "Targeted exam technique from examiners who know what band 7 answers look like.",
		},
	}
}

// DefaultSchedule is the schedule template offered to new program pages.
func DefaultSchedule() ProgramSchedule {
	return ProgramSchedule{
		Times: ScheduleTimes{
			Morning:   []string{"09:00 - 10:30", "11:00 - 12:30"},
			Afternoon: []string{"14:00 - 15:30"},
			Evening:   []string{"18:30 - 20:00"},
		},
		Durations: ScheduleDurations{
			Weekday: DurationOption{Label: "Weekday track", Duration: "12 weeks"},
			Weekend: DurationOption{Label: "Weekend track", Duration: "16 weeks"},
		},
	}
}
