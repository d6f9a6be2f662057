package schedule

// User is a planner profile. Each user keeps an independent set of weeks.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Theme  string `json:"theme"`
}

// DefaultUsers returns the profiles seeded on first run.
func DefaultUsers() []User {
	return []User{
		{ID: "user-1", Name: "我", Avatar: "🙂", Theme: "mocha"},
		{ID: "user-2", Name: "家人", Avatar: "🏠", Theme: "latte"},
	}
}
