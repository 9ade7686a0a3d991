package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Skufu/heartguard/internal/store"
)

func (s *Server) createPrediction(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		s.respondError(c, err)
		return
	}

	patientID, record, err := decodePredictionRequest(body)
	if err != nil {
		s.respondError(c, err)
		return
	}

	assessment, err := s.svc.Assess(c.Request.Context(), patientID, record)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assessment)
}

func (s *Server) getPrediction(c *gin.Context) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		s.respondError(c, Validation("id", "must be a valid UUID"))
		return
	}

	assessment, err := s.svc.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(c, NotFound("prediction", raw))
		return
	}
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

func (s *Server) listPredictions(c *gin.Context) {
	patientID := c.Param("patientId")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.respondError(c, Validation("limit", "must be an integer"))
			return
		}
		limit = n
	}

	list, err := s.svc.History(c.Request.Context(), patientID, limit)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patientId": patientID, "predictions": list})
}

func (s *Server) setConditions(c *gin.Context) {
	patientID := c.Param("patientId")

	var req conditionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, err)
		return
	}

	tags, err := s.svc.SetConditions(c.Request.Context(), patientID, req.ConditionTags)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patientId": patientID, "conditionTags": tags})
}

func (s *Server) stratifyPatient(c *gin.Context) {
	patientID := c.Param("patientId")

	result, err := s.svc.Stratify(c.Request.Context(), patientID)
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(c, NotFound("assessment", patientID))
		return
	}
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) stratify(c *gin.Context) {
	var req stratifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, err)
		return
	}

	level := s.svc.Classify(*req.Score, req.Contributions, req.ConditionTags)
	c.JSON(http.StatusOK, gin.H{"level": level})
}
