package web

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/bastiangx/wordglob/internal/metrics"
	"github.com/bastiangx/wordglob/pkg/query"
)

// formInput is echoed back into the form after a submission.
type formInput struct {
	Pattern   string
	Blacklist string
	Yellow    string
}

// QueryResponse is the data payload of /api/query.
type QueryResponse struct {
	Pattern    string   `json:"pattern"`
	All        []string `json:"all"`
	NoRepeat   []string `json:"no_repeat"`
	WithRepeat []string `json:"with_repeat"`
	Count      int      `json:"count"`
}

// Index renders the blank form.
func (s *Server) Index(c fiber.Ctx) error {
	return s.renderIndex(c, formInput{}, query.Result{}, false)
}

// Submit runs the form's lookup and re-renders the page with the three groups.
func (s *Server) Submit(c fiber.Ctx) error {
	q := query.New(c.FormValue("pattern"), c.FormValue("blacklist"), c.FormValue("yellow"))
	res := s.run(metrics.FrontendWeb, q)

	input := formInput{
		Pattern:   q.Pattern,
		Blacklist: q.Blacklist.String(),
		Yellow:    q.Yellow.String(),
	}
	return s.renderIndex(c, input, res, true)
}

func (s *Server) renderIndex(c fiber.Ctx, input formInput, res query.Result, submitted bool) error {
	return c.Render("index", fiber.Map{
		"Title":      "Search",
		"SiteTitle":  s.Cfg.Web.Title,
		"Input":      input,
		"Submitted":  submitted,
		"Matches":    res.All,
		"NoRepeat":   res.NoRepeat,
		"WithRepeat": res.WithRepeat,
		"Count":      res.Count(),
	})
}

// Query answers a lookup as JSON.
func (s *Server) Query(c fiber.Ctx) error {
	q := query.New(c.Query("pattern"), c.Query("blacklist"), c.Query("yellow"))
	res := s.run(metrics.FrontendAPI, q)

	return jsonSuccess(c, QueryResponse{
		Pattern:    q.Pattern,
		All:        res.All,
		NoRepeat:   res.NoRepeat,
		WithRepeat: res.WithRepeat,
		Count:      res.Count(),
	})
}

// Health reports the dictionary size.
func (s *Server) Health(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{
		"words": s.dict.Len(),
	})
}

// run executes one lookup and records it.
func (s *Server) run(frontend string, q query.Query) query.Result {
	start := time.Now()
	res := query.Run(s.dict, q)
	elapsed := time.Since(start)

	s.metrics.ObserveQuery(frontend, elapsed, res.Count())
	s.log.Debug("query", "frontend", frontend, "pattern", q.Pattern,
		"blacklist", q.Blacklist.String(), "yellow", q.Yellow.String(),
		"matches", res.Count(), "took", elapsed)
	return res
}

