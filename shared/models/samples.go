package models

import "net/url"

// SampleIndex is the body of the /api/samples endpoint.
type SampleIndex struct {
	Samples     []string `json:"samples"`
	CrisprNames []string `json:"crisprNames"`
}

// SamplesPath returns the /api/samples URL, restricted to the samples that
// have charts for crisprName when it is set.
func SamplesPath(crisprName string) string {
	if crisprName == "" {
		return "/api/samples"
	}
	return "/api/samples?" + url.Values{"crispr": {crisprName}}.Encode()
}
