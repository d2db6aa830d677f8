package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pooja2309/portfolio/internal/content"
)

type homeData struct {
	Site      *content.Content
	Education content.EducationView
	Slide     content.Slide
	HasSlides bool
	Form      contactFormData
}

func (s *Server) home(c *gin.Context) {
	slide, ok := s.content.Slide(0)
	c.HTML(http.StatusOK, "index.html", homeData{
		Site:      s.content,
		Education: s.content.EducationView(false),
		Slide:     slide,
		HasSlides: ok,
		Form:      contactFormData{},
	})
}

func (s *Server) workContent(c *gin.Context) {
	c.HTML(http.StatusOK, "work-content.html", s.content.Experience)
}

// educationContent renders the education list; ?expanded=true shows every entry.
func (s *Server) educationContent(c *gin.Context) {
	expanded, _ := strconv.ParseBool(c.Query("expanded"))
	c.HTML(http.StatusOK, "education-content.html", s.content.EducationView(expanded))
}

// projectsContent renders one carousel slide; ?index wraps around both ends.
func (s *Server) projectsContent(c *gin.Context) {
	index, err := strconv.Atoi(c.DefaultQuery("index", "0"))
	if err != nil {
		index = 0
	}
	slide, ok := s.content.Slide(index)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.HTML(http.StatusOK, "projects-content.html", slide)
}
