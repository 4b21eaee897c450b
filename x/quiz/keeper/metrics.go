package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// QuizMetrics holds all Prometheus metrics for the quiz module
type QuizMetrics struct {
	QuizSetsCreated  prometheus.Counter
	AnswersSubmitted prometheus.Counter
	AnswersVerified  *prometheus.CounterVec
	QuizzesCompleted prometheus.Counter
	RewardsClaimed   *prometheus.CounterVec
	VaultDeposits    *prometheus.CounterVec
}

var (
	quizMetricsOnce sync.Once
	quizMetrics     *QuizMetrics
)

// NewQuizMetrics creates and registers quiz metrics (singleton pattern)
func NewQuizMetrics() *QuizMetrics {
	quizMetricsOnce.Do(func() {
		quizMetrics = &QuizMetrics{
			QuizSetsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "hoot",
					Subsystem: "quiz",
					Name:      "quiz_sets_created_total",
					Help:      "Total quiz sets created",
				},
			),
			AnswersSubmitted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "hoot",
					Subsystem: "quiz",
					Name:      "answers_submitted_total",
					Help:      "Total answers queued for validation",
				},
			),
			AnswersVerified: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hoot",
					Subsystem: "quiz",
					Name:      "answers_verified_total",
					Help:      "Total answer verdicts settled",
				},
				[]string{"verdict"},
			),
			QuizzesCompleted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "hoot",
					Subsystem: "quiz",
					Name:      "quizzes_completed_total",
					Help:      "Total quizzes with a winner set",
				},
			),
			RewardsClaimed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hoot",
					Subsystem: "quiz",
					Name:      "rewards_claimed_total",
					Help:      "Total reward value claimed",
				},
				[]string{"denom"},
			),
			VaultDeposits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hoot",
					Subsystem: "quiz",
					Name:      "vault_deposits_total",
					Help:      "Total reward value escrowed",
				},
				[]string{"denom"},
			),
		}
	})
	return quizMetrics
}
