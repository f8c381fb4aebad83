// Package greeting picks the time-of-day banner line for the CLI.
package greeting

import "time"

// Message returns the greeting for the given local time.
func Message(now time.Time) string {
	switch hour := now.Hour(); {
	case hour >= 4 && hour <= 11:
		return "Rise and shine, breakfast awaits!"
	case hour >= 12 && hour <= 17:
		return "Fuel up for the afternoon!"
	case hour >= 18 && hour <= 19:
		return "Perfect time for a tasty treat!"
	case hour <= 3:
		return "Late night cravings? We've all been there :)"
	default:
		return "Dinner's calling, what's cooking?"
	}
}
