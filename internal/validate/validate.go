package validate

import "fmt"

// Content field length limits applied to configured site content.
const (
	MaxBrandLength              = 100
	MaxProjectTitleLength       = 200
	MaxProjectDescriptionLength = 2000
	MaxMetaTitleLength          = 70
	MaxMetaDescriptionLength    = 300
	MaxImageAltLength           = 200
	MaxTaglineLength            = 300
	MaxAboutLength              = 10 * 1024
	MaxContactBlurbLength       = 1000
	MaxURLLength                = 2048
)

func checkLen(value string, max int, field string) string {
	if len(value) > max {
		return fmt.Sprintf("%s must be %d characters or fewer", field, max)
	}
	return ""
}

func Brand(s string) string        { return checkLen(s, MaxBrandLength, "brand") }
func ProjectTitle(s string) string { return checkLen(s, MaxProjectTitleLength, "project title") }
func ProjectDescription(s string) string {
	return checkLen(s, MaxProjectDescriptionLength, "project description")
}
func MetaTitle(s string) string { return checkLen(s, MaxMetaTitleLength, "meta title") }
func MetaDescription(s string) string {
	return checkLen(s, MaxMetaDescriptionLength, "meta description")
}
func ImageAlt(s string) string     { return checkLen(s, MaxImageAltLength, "image alt text") }
func Tagline(s string) string      { return checkLen(s, MaxTaglineLength, "tagline") }
func About(s string) string        { return checkLen(s, MaxAboutLength, "about text") }
func ContactBlurb(s string) string { return checkLen(s, MaxContactBlurbLength, "contact blurb") }
func URL(s string) string          { return checkLen(s, MaxURLLength, "URL") }

// FieldLimits returns a map of field names to max lengths.
func FieldLimits() map[string]int {
	return map[string]int{
		"brand":              MaxBrandLength,
		"projectTitle":       MaxProjectTitleLength,
		"projectDescription": MaxProjectDescriptionLength,
		"metaTitle":          MaxMetaTitleLength,
		"metaDescription":    MaxMetaDescriptionLength,
		"imageAlt":           MaxImageAltLength,
		"tagline":            MaxTaglineLength,
		"about":              MaxAboutLength,
		"contactBlurb":       MaxContactBlurbLength,
		"url":                MaxURLLength,
	}
}
