package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/acarlier/MT-BookingService/internal/domain"
)

// ContactRepository in-memory реализация репозитория сообщений контактной формы
type ContactRepository struct {
	mu       sync.RWMutex
	messages []*domain.ContactMessage
}

// NewContactRepository создает пустой in-memory репозиторий сообщений
func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

// Create сохраняет новое сообщение
func (r *ContactRepository) Create(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *msg
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.messages = append(r.messages, &stored)

	copied := stored
	return &copied, nil
}

// ListAll получает все сообщения, новые первыми
func (r *ContactRepository) ListAll(_ context.Context) ([]*domain.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]*domain.ContactMessage, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		copied := *r.messages[i]
		messages = append(messages, &copied)
	}

	return messages, nil
}
