package models

// User is an exercise-tracker account. The log is append-only: entries are
// never mutated or deleted once added.
type User struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Log      []Exercise `json:"log"`
}

// Exercise is a single log entry embedded in a user's log. Date is always a
// canonical YYYY-MM-DD calendar date.
type Exercise struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}
