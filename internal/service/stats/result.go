package stats

// Dashboard aggregates the numbers shown on the client's home screen.
type Dashboard struct {
	DeckCount    int
	CardCount    int
	ReviewsToday int
	TotalReviews int
	StreakDays   int
	XP           int
}
