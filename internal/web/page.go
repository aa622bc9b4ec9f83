package web

import (
	"fmt"

	"github.com/Skufu/healthassistant/internal/diagnosis"
)

// Page is one entry of the navigation menu. The request path is the only
// thing that selects it.
type Page int

const (
	Home Page = iota
	DiabetesPage
	HeartPage
	ParkinsonsPage
	DistributionPage
)

// Pages lists the menu in display order.
var Pages = []Page{Home, DiabetesPage, HeartPage, ParkinsonsPage, DistributionPage}

func (p Page) Path() string {
	switch p {
	case Home:
		return "/"
	case DiabetesPage:
		return "/diabetes"
	case HeartPage:
		return "/heart"
	case ParkinsonsPage:
		return "/parkinsons"
	case DistributionPage:
		return "/distribution"
	}
	panic(fmt.Sprintf("web: unhandled page %d", p))
}

// Title is the menu label.
func (p Page) Title() string {
	switch p {
	case Home:
		return "Home"
	case DiabetesPage:
		return "Diabetes Prediction"
	case HeartPage:
		return "Heart Disease Prediction"
	case ParkinsonsPage:
		return "Parkinson's Prediction"
	case DistributionPage:
		return "Disease Distribution"
	}
	panic(fmt.Sprintf("web: unhandled page %d", p))
}

func (p Page) template() string {
	switch p {
	case Home:
		return "home.html"
	case DiabetesPage, HeartPage, ParkinsonsPage:
		return "form.html"
	case DistributionPage:
		return "distribution.html"
	}
	panic(fmt.Sprintf("web: unhandled page %d", p))
}

// Disease reports which classifier a form page drives.
func (p Page) Disease() (diagnosis.Disease, bool) {
	switch p {
	case DiabetesPage:
		return diagnosis.Diabetes, true
	case HeartPage:
		return diagnosis.Heart, true
	case ParkinsonsPage:
		return diagnosis.Parkinsons, true
	case Home, DistributionPage:
		return 0, false
	}
	panic(fmt.Sprintf("web: unhandled page %d", p))
}

func pageFor(d diagnosis.Disease) Page {
	switch d {
	case diagnosis.Diabetes:
		return DiabetesPage
	case diagnosis.Heart:
		return HeartPage
	case diagnosis.Parkinsons:
		return ParkinsonsPage
	}
	panic(fmt.Sprintf("web: unhandled disease %d", d))
}

type navItem struct {
	Title  string
	Path   string
	Active bool
}

func navFor(active Page) []navItem {
	items := make([]navItem, len(Pages))
	for i, p := range Pages {
		items[i] = navItem{Title: p.Title(), Path: p.Path(), Active: p == active}
	}
	return items
}
