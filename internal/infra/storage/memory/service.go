package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/acarlier/MT-BookingService/internal/domain"
	storage "github.com/acarlier/MT-BookingService/internal/infra/storage/service"
)

// ServiceRepository in-memory реализация каталога услуг.
// Каталог заполняется один раз при создании и далее не меняется,
// поэтому читается без блокировок поверх начальной инициализации.
type ServiceRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Service
	ordered []string
}

// NewServiceRepository создает каталог, заполненный переданными услугами.
// ID услуг генерируются при создании.
func NewServiceRepository(services []*domain.Service) *ServiceRepository {
	repo := &ServiceRepository{
		byID: make(map[string]*domain.Service, len(services)),
	}

	for _, svc := range services {
		stored := *svc
		if stored.ID == "" {
			stored.ID = uuid.NewString()
		}
		repo.byID[stored.ID] = &stored
		repo.ordered = append(repo.ordered, stored.ID)
	}

	return repo
}

// ListAll получает все услуги каталога
func (r *ServiceRepository) ListAll(_ context.Context) ([]*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services := make([]*domain.Service, 0, len(r.ordered))
	for _, id := range r.ordered {
		copied := *r.byID[id]
		services = append(services, &copied)
	}

	return services, nil
}

// GetByID получает услугу по ID
func (r *ServiceRepository) GetByID(_ context.Context, id string) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	svc, ok := r.byID[id]
	if !ok {
		return nil, storage.ErrServiceNotFound
	}

	copied := *svc
	return &copied, nil
}
