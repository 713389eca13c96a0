// Package tips serves the short motivational and training tips shown on the
// home screen.
package tips

import "math/rand"

var generalTips = []string{
	"Stay hydrated during your workout!",
	"Remember to warm up before exercising.",
	"Focus on proper form over quantity.",
	"Take rest days to allow your body to recover.",
	"Consistency is key to achieving your fitness goals.",
	"Don't forget to stretch after your workout.",
	"Track your progress to stay motivated.",
	"Listen to your body and don't push too hard.",
	"Mix up your routine to prevent plateaus.",
	"Get enough sleep for better recovery.",
}

var motivationTips = []string{
	"You're stronger than you think!",
	"Every workout brings you closer to your goal.",
	"Small progress is still progress.",
	"Your future self will thank you.",
	"You've got this!",
	"Make today count!",
	"Stay focused on your goals.",
	"You're building a better version of yourself.",
	"Consistency beats intensity.",
	"Keep pushing forward!",
}

// Random returns a random tip from either list.
func Random() string {
	all := append(append([]string{}, generalTips...), motivationTips...)
	return all[rand.Intn(len(all))]
}

// RandomGeneral returns a random training tip.
func RandomGeneral() string {
	return generalTips[rand.Intn(len(generalTips))]
}

// RandomMotivation returns a random motivational tip.
func RandomMotivation() string {
	return motivationTips[rand.Intn(len(motivationTips))]
}
