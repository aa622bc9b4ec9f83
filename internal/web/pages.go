package web

import (
	"bytes"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Skufu/healthassistant/internal/apperr"
	"github.com/Skufu/healthassistant/internal/diagnosis"
	"github.com/Skufu/healthassistant/internal/distribution"
)

type pageData struct {
	Title string
	Nav   []navItem
}

type homeView struct {
	pageData
	Diseases []diseaseLink
}

type diseaseLink struct {
	Name string
	Path string
}

type formField struct {
	diagnosis.Field
	Value    string
	Invalid  bool
	Selected map[string]bool
}

type formView struct {
	pageData
	Heading   string
	Action    string
	Button    string
	Fields    []formField
	Warning   string
	Result    *diagnosis.Diagnosis
	TipsTitle string
}

type distributionView struct {
	pageData
	Records int
	Charts  []distribution.Chart
}

func newPageData(p Page) pageData {
	return pageData{Title: p.Title(), Nav: navFor(p)}
}

func (s *Server) showPage(p Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch p {
		case Home:
			s.renderTemplate(c, http.StatusOK, p.template(), s.homeView())
		case DiabetesPage, HeartPage, ParkinsonsPage:
			d, _ := p.Disease()
			s.renderTemplate(c, http.StatusOK, p.template(), newFormView(d, nil, nil))
		case DistributionPage:
			s.renderTemplate(c, http.StatusOK, p.template(), distributionView{
				pageData: newPageData(p),
				Records:  s.dataset.Len(),
				Charts:   s.dataset.Charts(),
			})
		default:
			c.AbortWithStatus(http.StatusNotFound)
		}
	}
}

func (s *Server) homeView() homeView {
	view := homeView{pageData: newPageData(Home)}
	for _, d := range diagnosis.Diseases {
		view.Diseases = append(view.Diseases, diseaseLink{Name: d.String(), Path: pageFor(d).Path()})
	}
	return view
}

func (s *Server) submitForm(d diagnosis.Disease) gin.HandlerFunc {
	return func(c *gin.Context) {
		get := func(key string) string { return c.PostForm(key) }

		result, err := s.assessor.AssessValues(d, get)
		if err != nil {
			view := newFormView(d, get, err)
			s.renderTemplate(c, statusFor(err), pageFor(d).template(), view)
			return
		}

		s.record(c.Request.Context(), result)
		view := newFormView(d, get, nil)
		view.Result = &result
		s.renderTemplate(c, http.StatusOK, pageFor(d).template(), view)
	}
}

// newFormView echoes submitted values back into the form. A nil get renders defaults.
func newFormView(d diagnosis.Disease, get diagnosis.ValueFunc, err error) formView {
	page := pageFor(d)
	schema := diagnosis.SchemaFor(d)

	invalid := map[string]bool{}
	view := formView{
		pageData:  newPageData(page),
		Heading:   schema.Title,
		Action:    page.Path(),
		Button:    "Predict " + d.String(),
		TipsTitle: diagnosis.TipsHeading,
	}
	if err != nil {
		if appErr, ok := apperr.As(err); ok && statusFor(err) != http.StatusInternalServerError {
			view.Warning = appErr.Message
			for _, k := range appErr.Fields {
				invalid[k] = true
			}
		} else {
			log.Printf("[web] %s submission failed: %v", d.Slug(), err)
			view.Warning = "Prediction is unavailable right now."
		}
	}

	for _, f := range schema.Fields {
		value := defaultValue(f)
		if get != nil {
			value = get(f.Key)
		}
		field := formField{Field: f, Value: value, Invalid: invalid[f.Key]}
		if f.Kind == diagnosis.KindChoice {
			field.Selected = map[string]bool{}
			for _, o := range f.Options {
				ov := strconv.FormatFloat(o.Value, 'f', -1, 64)
				field.Selected[ov] = ov == value
			}
		}
		view.Fields = append(view.Fields, field)
	}
	return view
}

func defaultValue(f diagnosis.Field) string {
	if f.Kind == diagnosis.KindText {
		return ""
	}
	return "0"
}

func (s *Server) downloadWorkbook(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.dataset.WriteWorkbook(&buf); err != nil {
		log.Printf("[web] workbook export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "workbook export failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="distribution.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func statusFor(err error) int {
	switch apperr.GetCode(err) {
	case apperr.CodeInvalidInput, apperr.CodeParseError:
		return http.StatusUnprocessableEntity
	case apperr.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
