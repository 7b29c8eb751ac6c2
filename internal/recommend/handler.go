package recommend

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinequiz/internal/quiz"
	"cinequiz/internal/session"
)

type Handler struct {
	Service *Service
	Tokens  session.TokenService
}

func NewHandler(svc *Service, tokens session.TokenService) *Handler {
	return &Handler{Service: svc, Tokens: tokens}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.index)
	rg.GET("/quiz", h.quizPage)
	rg.POST("/process_quiz", h.processQuiz)
	rg.GET("/recommendations", h.recommendations)
	rg.GET("/new-movies", h.newMovies)
	rg.GET("/search", h.search)

	rg.GET("/api/movies/:genre", h.apiMovies)
	rg.GET("/api/streaming/:title", h.apiStreaming)
	rg.GET("/api/trailer/:title", h.apiTrailer)
	rg.GET("/api/search/:query", h.apiSearch)
}

func (h *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":  "cinequiz",
		"quiz":  "/quiz",
		"paths": []string{"/quiz", "/process_quiz", "/recommendations", "/new-movies", "/search"},
	})
}

func (h *Handler) quizPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"options": quiz.Options(),
		"submit":  "/process_quiz",
	})
}

// processQuiz scores the submitted answers and stores the resulting
// profile in a signed cookie. An empty submission goes back to the quiz
// instead of being treated as a server error.
func (h *Handler) processQuiz(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.Redirect(http.StatusSeeOther, "/quiz")
		return
	}

	answers := make(map[string]string, len(c.Request.PostForm))
	for q, vals := range c.Request.PostForm {
		if len(vals) > 0 {
			answers[q] = vals[0]
		}
	}

	profile, err := quiz.Score(answers)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/quiz")
		return
	}

	token, _, err := h.Tokens.Sign(profile)
	if err != nil {
		log.Printf("[recommend] sign profile token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process quiz"})
		return
	}

	log.Printf("[recommend] quiz completed, profile: %s", profile.Name)
	c.SetCookie(session.CookieName, token, int(h.Tokens.Duration.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/recommendations")
}

// recommendations requires a stored profile; without one the client is
// sent back to the quiz.
func (h *Handler) recommendations(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/quiz")
		return
	}
	profile, err := h.Tokens.Parse(token)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/quiz")
		return
	}

	movies := h.Service.Recommendations(c.Request.Context(), profile)
	c.JSON(http.StatusOK, gin.H{
		"personality_profile": profile,
		"movies":              movies,
	})
}

func (h *Handler) newMovies(c *gin.Context) {
	movies := h.Service.NewReleases(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"movies": movies})
}

func (h *Handler) search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"query": "", "movies": []any{}})
		return
	}
	movies := h.Service.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"query": query, "movies": movies})
}

func (h *Handler) apiMovies(c *gin.Context) {
	genre := c.Param("genre")
	movies := h.Service.MoviesByGenre(c.Request.Context(), genre)
	c.JSON(http.StatusOK, gin.H{"movies": movies})
}

func (h *Handler) apiStreaming(c *gin.Context) {
	title := c.Param("title")
	streaming := h.Service.StreamingInfo(c.Request.Context(), title)
	c.JSON(http.StatusOK, gin.H{"streaming": streaming})
}

func (h *Handler) apiTrailer(c *gin.Context) {
	title := c.Param("title")
	trailer, err := h.Service.TrailerInfo(c.Request.Context(), title)
	if err != nil {
		log.Printf("[recommend] trailer %q: %v", title, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trailer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trailer": trailer})
}

func (h *Handler) apiSearch(c *gin.Context) {
	query := c.Param("query")
	movies := h.Service.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"movies": movies, "query": query})
}
