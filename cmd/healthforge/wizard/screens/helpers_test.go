package screens

import (
	"time"

	"github.com/mrsinham/healthforge/internal/assessment"
	"github.com/mrsinham/healthforge/internal/processing"
	"github.com/mrsinham/healthforge/internal/risk"
)

func processingSchedule() processing.Schedule {
	return processing.Schedule{
		Messages:        processing.DefaultMessages,
		MessageInterval: 10 * time.Millisecond,
		SettleDelay:     30 * time.Millisecond,
	}
}

func evaluate(rec assessment.AnswerRecord) risk.Result {
	return risk.Evaluate(rec)
}
