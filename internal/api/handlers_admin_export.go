package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sevenfit/coaching/internal/services"
)

var checkinExportHeaders = []string{
	"sequence_number",
	"submitted_at",
	"hydration_liters",
	"sleep_hours",
	"training_average",
	"exercise_count",
	"completed_exercises",
	"weight",
	"reflection",
}

// ExportClientCheckinsCSV writes a client's check-in history as a CSV
// attachment for the admin panel.
func (handler *Handler) ExportClientCheckinsCSV(c *fiber.Ctx) error {
	user, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}

	submissions, err := handler.checkinService.HistoryForClient(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch check-ins")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(checkinExportHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	for _, submission := range submissions {
		weight := ""
		if submission.Weight != nil {
			weight = strconv.FormatFloat(*submission.Weight, 'f', -1, 64)
		}
		if err := writer.Write([]string{
			strconv.Itoa(submission.SequenceNumber),
			submission.SubmittedAt.In(handler.location).Format("2006-01-02"),
			strconv.Itoa(services.ParseHydrationLabel(submission.Hydration)),
			strconv.Itoa(services.ParseSleepLabel(submission.SleepHours)),
			strconv.Itoa(services.TrainingCompletionAverage(submission.TrainingDays)),
			strconv.Itoa(len(submission.CompletedExercises)),
			strings.Join(submission.CompletedExercises, "; "),
			weight,
			submission.Reflection,
		}); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	filename := fmt.Sprintf("checkins-%s-%s.csv", user.PublicID, time.Now().In(handler.location).Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(output.Bytes())
}
