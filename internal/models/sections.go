// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package models

import "encoding/json"

// The page sections below are opaque to the persistence core; they
// round-trip through load/save as raw JSON. The rendering layer decodes
// them into these shapes and ignores anything it does not recognise.

// Hero drives the homepage hero banner.
type Hero struct {
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	Description      string `json:"description"`
	BackgroundImage  string `json:"backgroundImage"`
	CTAText          string `json:"ctaText"`
	CTALink          string `json:"ctaLink"`
	CTASecondaryText string `json:"ctaSecondaryText"`
	CTASecondaryLink string `json:"ctaSecondaryLink"`
}

// Philosophy is the design-philosophy blurb on the homepage.
type Philosophy struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

// About drives the about page.
type About struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Story       string `json:"story"`
	Image       string `json:"image"`
}

// Contact drives the contact page.
type Contact struct {
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Instagram string `json:"instagram"`
	WhatsApp  string `json:"whatsapp"`
}

// FAQItem is a single question/answer pair on the FAQ page.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQ drives the FAQ page.
type FAQ struct {
	Title string    `json:"title"`
	Items []FAQItem `json:"items"`
}

// Footer drives the site footer.
type Footer struct {
	Tagline   string `json:"tagline"`
	Copyright string `json:"copyright"`
}

// Settings holds site-wide settings edited on the admin settings page.
type Settings struct {
	SiteTitle       string `json:"siteTitle"`
	SiteDescription string `json:"siteDescription"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}

// DecodeSection decodes an opaque section into the given shape. Missing
// or malformed sections leave the destination zero-valued and return
// false; rendering falls back to defaults in that case.
func DecodeSection[T any](doc *Document, key string, dst *T) bool {
	raw := doc.Section(key)
	if raw == nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// DefaultDocument returns the hardcoded content snapshot the public pages
// render when the content store cannot be read. It mirrors the shipped
// site copy so a storage failure degrades to stale-but-presentable pages
// instead of an error page.
func DefaultDocument() *Document {
	doc := &Document{
		Collections: map[string]*Collection{},
		Sections:    map[string]json.RawMessage{},
	}

	hero := Hero{
		Title:            "UL.CO",
		Subtitle:         "Fashion Berbasis Kain Ulos",
		Description:      "Menghadirkan fashion berbasis kain ulos dengan desain modern dan berkelanjutan",
		CTAText:          "Explore Collections",
		CTALink:          "/portfolio",
		CTASecondaryText: "Learn More",
		CTASecondaryLink: "/about",
	}
	philosophy := Philosophy{
		Title:       "Design Philosophy",
		Subtitle:    "Tradisi Bertemu Modernitas",
		Description: "UL.CO menggabungkan warisan budaya kain ulos dengan desain kontemporer, menciptakan fashion yang berkelanjutan dan bermakna.",
	}
	footer := Footer{
		Tagline:   "Fashion berbasis kain ulos dengan desain modern dan berkelanjutan",
		Copyright: "UL.CO by Taruli Pasaribu",
	}

	mustSet(doc, "hero", hero)
	mustSet(doc, "philosophy", philosophy)
	mustSet(doc, "footer", footer)
	return doc
}

func mustSet(doc *Document, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err) // static values, cannot fail
	}
	doc.SetSection(key, raw)
}
