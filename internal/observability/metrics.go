package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	usersCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "registry",
		Name:      "users_created_total",
		Help:      "Number of users created since process start.",
	})
	exercisesLoggedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "log",
		Name:      "exercises_logged_total",
		Help:      "Number of exercise entries appended since process start.",
	})
)

func init() {
	prometheus.MustRegister(usersCreatedCounter, exercisesLoggedCounter)
}

// RecordUserCreated counts a successful user creation.
func RecordUserCreated() {
	usersCreatedCounter.Inc()
}

// RecordExerciseLogged counts a successful log append.
func RecordExerciseLogged() {
	exercisesLoggedCounter.Inc()
}
