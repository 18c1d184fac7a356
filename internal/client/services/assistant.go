package services

import (
	"math/rand"
	"strings"
)

// cannedReplies is the assistant's whole vocabulary. The assistant is
// scripted on purpose; there is no language model behind it.
var cannedReplies = []string{
	"That's great! Remember to stay hydrated and take breaks throughout the day.",
	"I recommend setting a reminder for that. Consistency is key to building healthy habits!",
	"Based on your activity, you're doing well! Keep up the good work.",
	"Have you considered adding a morning meditation routine? It can help reduce stress.",
	"Great question! I suggest tracking your progress to see patterns over time.",
}

// AssistantService produces scripted wellness replies.
type AssistantService struct {
	intn func(n int) int
}

func NewAssistantService() *AssistantService {
	return &AssistantService{intn: rand.Intn}
}

// Reply returns a canned response. The input only matters insofar as an
// empty message gets no reply.
func (s *AssistantService) Reply(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return cannedReplies[s.intn(len(cannedReplies))]
}
