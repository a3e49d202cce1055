package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/riabhaumik/PathwiseAI/internal/catalog"
	"github.com/riabhaumik/PathwiseAI/internal/practice"
	"github.com/riabhaumik/PathwiseAI/internal/roadmap"
)

type handlers struct {
	deps Deps
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) listCareers(c *gin.Context) {
	filter := catalog.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	careers := h.deps.Store.Careers(filter)
	c.JSON(http.StatusOK, gin.H{"careers": careers, "total": len(careers)})
}

func (h *handlers) getCareer(c *gin.Context) {
	career, err := h.deps.Store.Career(c.Param("name"))
	if err != nil {
		if errors.Is(err, catalog.ErrCareerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, career)
}

func (h *handlers) getCareerSkills(c *gin.Context) {
	profile := h.deps.Synthesizer.CareerSkills(c.Request.Context(), c.Param("name"))
	c.JSON(http.StatusOK, profile)
}

func (h *handlers) getResources(c *gin.Context) {
	records := h.deps.Store.ResourcesByCategory(c.Param("category"))
	c.JSON(http.StatusOK, gin.H{"resources": records, "total": len(records)})
}

func (h *handlers) getInterviewQuestions(c *gin.Context) {
	category := c.Param("category")
	if category == "all" {
		category = ""
	}
	questions := h.deps.Store.InterviewQuestions(category)
	c.JSON(http.StatusOK, gin.H{"questions": questions, "total": len(questions)})
}

func (h *handlers) getMathResources(c *gin.Context) {
	topics := h.deps.Store.MathResources(catalog.MathFilter{
		Topic:      c.Query("topic"),
		Difficulty: c.Query("difficulty"),
	})
	c.JSON(http.StatusOK, gin.H{"topics": topics, "total": len(topics)})
}

func (h *handlers) getMathTopics(c *gin.Context) {
	topics := h.deps.Store.MathTopics()
	c.JSON(http.StatusOK, gin.H{"topics": topics, "total": len(topics)})
}

func (h *handlers) searchMathResources(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	results := h.deps.Store.SearchMathResources(query, c.Query("topic"), limit)
	c.JSON(http.StatusOK, gin.H{"query": query, "results": results, "total": len(results)})
}

type roadmapRequest struct {
	Career          string   `json:"career" binding:"required"`
	Level           string   `json:"level"`
	CompletedTopics []string `json:"completed_topics"`
}

func (h *handlers) generateRoadmap(c *gin.Context) {
	var req roadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "career is required"})
		return
	}

	rm := h.deps.Synthesizer.Generate(
		c.Request.Context(),
		req.Career,
		roadmap.ParseLevel(req.Level),
		req.CompletedTopics,
	)
	c.JSON(http.StatusOK, rm)
}

type chatRequest struct {
	ConversationID string            `json:"conversation_id"`
	Message        string            `json:"message" binding:"required"`
	Context        map[string]string `json:"context"`
}

func (h *handlers) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	resp := h.deps.Assistant.Chat(c.Request.Context(), req.ConversationID, req.Message, req.Context)
	c.JSON(http.StatusOK, resp)
}

type practiceRequest struct {
	Language  string              `json:"language" binding:"required"`
	Code      string              `json:"code" binding:"required"`
	TestCases []practice.TestCase `json:"test_cases"`
}

func (h *handlers) executePractice(c *gin.Context) {
	var req practiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "language and code are required"})
		return
	}

	result, err := h.deps.Runner.Execute(c.Request.Context(), req.Language, req.Code, req.TestCases)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
