package api

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	quiztypes "github.com/hoot-chain/hoot/x/quiz/types"
)

// ErrorResponse is the error payload shape for all endpoints
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// QuizSetResponse is the public view of a quiz set
type QuizSetResponse struct {
	Id                  uint64 `json:"id"`
	Authority           string `json:"authority"`
	Topic               string `json:"topic,omitempty"`
	Name                string `json:"name"`
	QuestionCount       uint32 `json:"question_count"`
	RewardAmount        string `json:"reward_amount"`
	Status              string `json:"status"`
	Winner              string `json:"winner,omitempty"`
	CorrectAnswersCount uint32 `json:"correct_answers_count"`
	CreatedAt           int64  `json:"created_at"`
}

// QuestionBlockResponse is the public view of one question ciphertext block.
// Only ciphertext leaves the node; the plaintext question and answer never
// exist in state.
type QuestionBlockResponse struct {
	QuizId          uint64 `json:"quiz_id"`
	QuestionIndex   uint32 `json:"question_index"`
	EncryptedX      string `json:"encrypted_x"`
	EncryptedY      string `json:"encrypted_y"`
	EvaluatorPubkey string `json:"evaluator_pubkey"`
	Nonce           string `json:"nonce"`
	CreatedAt       int64  `json:"created_at"`
}

// TopicResponse is the public view of a topic
type TopicResponse struct {
	Owner            string `json:"owner"`
	Name             string `json:"name"`
	IsActive         bool   `json:"is_active"`
	MinRewardAmount  string `json:"min_reward_amount"`
	MinQuestionCount uint32 `json:"min_question_count"`
	CreatedAt        int64  `json:"created_at"`
}

// handleGetQuizSet handles GET /v1/quizzes/:id
func (s *Server) handleGetQuizSet(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid quiz id",
			Details: err.Error(),
		})
		return
	}

	quizSet, err := s.store.QuizSet(c.Request.Context(), quizID)
	if err != nil {
		s.renderStoreError(c, err, "Quiz set not found")
		return
	}

	c.JSON(http.StatusOK, QuizSetResponse{
		Id:                  quizSet.Id,
		Authority:           quizSet.Authority,
		Topic:               quizSet.Topic,
		Name:                quizSet.Name,
		QuestionCount:       quizSet.QuestionCount,
		RewardAmount:        quizSet.RewardAmount.String(),
		Status:              string(quizSet.Status()),
		Winner:              quizSet.Winner,
		CorrectAnswersCount: quizSet.CorrectAnswersCount,
		CreatedAt:           quizSet.CreatedAt,
	})
}

// handleGetQuestionBlock handles GET /v1/quizzes/:id/questions/:index
func (s *Server) handleGetQuestionBlock(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid quiz id",
			Details: err.Error(),
		})
		return
	}

	index, err := strconv.ParseUint(c.Param("index"), 10, 32)
	if err != nil || index == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid question index",
		})
		return
	}

	block, err := s.store.QuestionBlock(c.Request.Context(), quizID, uint32(index))
	if err != nil {
		s.renderStoreError(c, err, "Question block not found")
		return
	}

	c.JSON(http.StatusOK, QuestionBlockResponse{
		QuizId:          block.QuizId,
		QuestionIndex:   block.QuestionIndex,
		EncryptedX:      base64.StdEncoding.EncodeToString(block.EncryptedX),
		EncryptedY:      base64.StdEncoding.EncodeToString(block.EncryptedY),
		EvaluatorPubkey: base64.StdEncoding.EncodeToString(block.EvaluatorPubkey),
		Nonce:           base64.StdEncoding.EncodeToString(block.Nonce),
		CreatedAt:       block.CreatedAt,
	})
}

// handleGetTopic handles GET /v1/topics/:name
func (s *Server) handleGetTopic(c *gin.Context) {
	name := c.Param("name")
	if name == "" || uint32(len(name)) > quiztypes.DefaultMaxNameLength {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid topic name",
		})
		return
	}

	topic, err := s.store.Topic(c.Request.Context(), name)
	if err != nil {
		s.renderStoreError(c, err, "Topic not found")
		return
	}

	c.JSON(http.StatusOK, TopicResponse{
		Owner:            topic.Owner,
		Name:             topic.Name,
		IsActive:         topic.IsActive,
		MinRewardAmount:  topic.MinRewardAmount.String(),
		MinQuestionCount: topic.MinQuestionCount,
		CreatedAt:        topic.CreatedAt,
	})
}

// handleGetConfig handles GET /admin/config
func (s *Server) handleGetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"chain_id": s.config.ChainID,
		"node_uri": s.config.NodeURI,
	})
}

func (s *Server) renderStoreError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: notFoundMsg,
		})
		return
	}

	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   "Node query failed",
		Details: err.Error(),
	})
}
