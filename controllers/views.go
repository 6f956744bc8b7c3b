package controllers

import (
	"productlib/models"
	"productlib/tools"
)

// Views are the response shapes: stored relative paths rendered as URLs.

type ModuleView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Industry    string `json:"industry"`
	Subject     string `json:"subject"`
}

type PartnerView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

type CaseView struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
	Case     string `json:"case"`
	Value    string `json:"value"`
}

type NameView struct {
	Name string `json:"name"`
}

func NewModuleView(m models.Module, staticPrefix string) ModuleView {
	return ModuleView{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    tools.StaticURL(staticPrefix, m.ImageURL),
		Industry:    m.Industry,
		Subject:     m.Subject,
	}
}

func NewPartnerView(p models.Partner, staticPrefix string) PartnerView {
	return PartnerView{ID: p.ID, Name: p.Name, LogoURL: tools.StaticURL(staticPrefix, p.LogoURL)}
}

func NewCaseView(c models.Case, staticPrefix string) CaseView {
	return CaseView{ID: c.ID, ImageURL: tools.StaticURL(staticPrefix, c.ImageURL), Case: c.Case, Value: c.Value}
}

func moduleViews(modules []models.Module, staticPrefix string) []ModuleView {
	out := make([]ModuleView, 0, len(modules))
	for _, m := range modules {
		out = append(out, NewModuleView(m, staticPrefix))
	}
	return out
}

func partnerViews(partners []models.Partner, staticPrefix string) []PartnerView {
	out := make([]PartnerView, 0, len(partners))
	for _, p := range partners {
		out = append(out, NewPartnerView(p, staticPrefix))
	}
	return out
}

func caseViews(cases []models.Case, staticPrefix string) []CaseView {
	out := make([]CaseView, 0, len(cases))
	for _, c := range cases {
		out = append(out, NewCaseView(c, staticPrefix))
	}
	return out
}

func nameViews(names []string) []NameView {
	out := make([]NameView, 0, len(names))
	for _, n := range names {
		out = append(out, NameView{Name: n})
	}
	return out
}
