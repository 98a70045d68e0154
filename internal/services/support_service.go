package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sevenfit/coaching/internal/models"
)

var (
	ErrEmptyMessage         = errors.New("message body is empty")
	ErrSupportLoadFailed    = errors.New("load support messages failed")
	ErrSupportPersistFailed = errors.New("persist support message failed")
)

type SupportRepository interface {
	ListByUser(userID uint) ([]models.SupportMessage, error)
	Create(message *models.SupportMessage) error
	CountUnreadFromSender(userID uint, sender string) (int64, error)
	MarkReadFromSender(userID uint, sender string) error
}

type SupportService struct {
	messages SupportRepository
}

func NewSupportService(messages SupportRepository) *SupportService {
	return &SupportService{messages: messages}
}

func (service *SupportService) Thread(userID uint) ([]models.SupportMessage, error) {
	thread, err := service.messages.ListByUser(userID)
	if err != nil {
		return nil, ErrSupportLoadFailed
	}
	return thread, nil
}

func (service *SupportService) Post(userID uint, sender string, body string, now time.Time) (models.SupportMessage, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return models.SupportMessage{}, ErrEmptyMessage
	}
	message := models.SupportMessage{
		UserID:    userID,
		Sender:    sender,
		Body:      trimmed,
		CreatedAt: now,
	}
	if err := service.messages.Create(&message); err != nil {
		return models.SupportMessage{}, ErrSupportPersistFailed
	}
	return message, nil
}

// UnreadCount reports messages the reader has not seen yet: for a client that
// is coach replies, for a coach it is client messages.
func (service *SupportService) UnreadCount(userID uint, readerIsClient bool) (int64, error) {
	sender := models.SenderClient
	if readerIsClient {
		sender = models.SenderCoach
	}
	count, err := service.messages.CountUnreadFromSender(userID, sender)
	if err != nil {
		return 0, ErrSupportLoadFailed
	}
	return count, nil
}

func (service *SupportService) MarkThreadRead(userID uint, readerIsClient bool) error {
	sender := models.SenderClient
	if readerIsClient {
		sender = models.SenderCoach
	}
	if err := service.messages.MarkReadFromSender(userID, sender); err != nil {
		return ErrSupportPersistFailed
	}
	return nil
}
