package memory

import (
	"context"
	"sync"
)

// TxManager in-memory замена транзакционного менеджера.
// DoSerializable выполняет fn под эксклюзивным мьютексом, сериализуя
// последовательность "перепроверка доступности + вставка" между
// конкурентными запросами - закрывает гонку check-then-act тем же
// контрактом, что и сериализуемая транзакция PostgreSQL.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager создает новый in-memory transaction manager
func NewTxManager() *TxManager {
	return &TxManager{}
}

// DoSerializable выполняет fn эксклюзивно относительно других вызовов DoSerializable
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
