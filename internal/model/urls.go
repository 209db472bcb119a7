package model

// ManualURLs are the locations of one manual document of a version.
type ManualURLs struct {
	Version            string `json:"version"`
	Path               string `json:"path"`
	Route              string `json:"route"`
	TableOfContentsURL string `json:"tocUrl"`
	FileURL            string `json:"fileUrl"`
	DocURL             string `json:"docUrl"`
}
