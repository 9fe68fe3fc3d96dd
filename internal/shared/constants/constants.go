package constants

// Database table names
const (
	TableUsers   = "users"
	TableTickets = "tickets"
	TableReviews = "reviews"
	TableFollows = "follows"
)
