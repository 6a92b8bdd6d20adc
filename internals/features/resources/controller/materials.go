package controller

import "quranku_backend/internals/constants"

type Material struct {
	Title      string `json:"title"`
	CourseType string `json:"course_type"`
	Format     string `json:"format"`
	URL        string `json:"url"`
}

// Static catalogue for now. TODO: move to a materials table once admins can
// upload their own files.
func MaterialsCatalogue() []Material {
	return []Material{
		{Title: "Noorani Qaida", CourseType: constants.CourseNazra, Format: "pdf", URL: "/static/materials/noorani-qaida.pdf"},
		{Title: "Tajweed Rules of the Quran, Part One", CourseType: constants.CourseTajweed, Format: "pdf", URL: "/static/materials/tajweed-part-one.pdf"},
		{Title: "Makharij Practice Charts", CourseType: constants.CourseTajweed, Format: "pdf", URL: "/static/materials/makharij-charts.pdf"},
		{Title: "Juz Amma Memorization Planner", CourseType: constants.CourseHifz, Format: "pdf", URL: "/static/materials/juz-amma-planner.pdf"},
		{Title: "Word-by-Word Translation, Juz 1", CourseType: constants.CourseTranslation, Format: "pdf", URL: "/static/materials/word-by-word-juz1.pdf"},
		{Title: "Tafseer Ibn Kathir, Surah Al-Fatiha", CourseType: constants.CourseTafseer, Format: "pdf", URL: "/static/materials/tafseer-fatiha.pdf"},
	}
}
