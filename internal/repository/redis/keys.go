package redis

import "fmt"

const ns = "cinetix:v1"

func KeyShowtimeSummary(showtimeID int64) string {
	return fmt.Sprintf("%s:showtime:%d:summary", ns, showtimeID)
}

func KeyShowtimeList() string {
	return ns + ":showtimes:list"
}

func KeyMovieList() string {
	return ns + ":movies:list"
}

// KeyRateLimit is a limiter prefix; the limiter appends the caller key.
func KeyRateLimit(scope string) string {
	return fmt.Sprintf("%s:rl:%s", ns, scope)
}

func ChannelShowtimesChanged() string {
	return ns + ":showtimes:changed"
}
