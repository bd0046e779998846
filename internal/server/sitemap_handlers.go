package server

import (
	"encoding/xml"
	"time"

	"github.com/gofiber/fiber/v2"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// staticSitemapPages are the marketing pages of the site frontend.
var staticSitemapPages = []sitemapURL{
	{Loc: "", ChangeFreq: "weekly", Priority: "1.0"},
	{Loc: "/about", ChangeFreq: "monthly", Priority: "0.8"},
	{Loc: "/services", ChangeFreq: "monthly", Priority: "0.9"},
	{Loc: "/blog", ChangeFreq: "daily", Priority: "0.9"},
	{Loc: "/gadgets", ChangeFreq: "weekly", Priority: "0.8"},
	{Loc: "/team", ChangeFreq: "monthly", Priority: "0.7"},
	{Loc: "/contact", ChangeFreq: "monthly", Priority: "0.8"},
}

// Sitemap handles GET /sitemap.xml. It lists the static frontend pages
// and every published blog post; drafts never appear.
func (s *Server) Sitemap(c *fiber.Ctx) error {
	posts, err := s.blogService.SitemapEntries(c.Context())
	if err != nil {
		return fail(c, err)
	}

	base := s.config.SiteURL
	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, page := range staticSitemapPages {
		page.Loc = base + page.Loc
		set.URLs = append(set.URLs, page)
	}
	for _, post := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/blog/" + post.Slug,
			LastMod:    post.UpdatedAt.Format(time.DateOnly),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXML)
	return c.SendString(xml.Header + string(body))
}
