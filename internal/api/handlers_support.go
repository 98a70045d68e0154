package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sevenfit/coaching/internal/models"
)

type supportPostInput struct {
	Body string `json:"body"`
}

type supportMessageResponse struct {
	ID        uint   `json:"id"`
	Sender    string `json:"sender"`
	Body      string `json:"body"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

func buildSupportThreadResponse(messages []models.SupportMessage) []supportMessageResponse {
	responses := make([]supportMessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, supportMessageResponse{
			ID:        message.ID,
			Sender:    message.Sender,
			Body:      message.Body,
			Read:      message.Read,
			CreatedAt: message.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses
}

func (handler *Handler) GetSupportThread(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	thread, err := handler.supportService.Thread(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load messages")
	}
	if err := handler.supportService.MarkThreadRead(user.ID, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update messages")
	}
	return c.JSON(fiber.Map{"messages": buildSupportThreadResponse(thread)})
}

func (handler *Handler) PostSupportMessage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var input supportPostInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	message, err := handler.supportService.Post(user.ID, models.SenderClient, input.Body, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err, "failed to save message")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": message.ID})
}

func (handler *Handler) GetSupportUnreadCount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	count, err := handler.supportService.UnreadCount(user.ID, true)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load messages")
	}
	return c.JSON(fiber.Map{"unread": count})
}
