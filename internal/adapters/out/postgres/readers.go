package postgres

import (
	"context"

	"dispatchops/internal/adapters/out/postgres/auditrepo"
	"dispatchops/internal/adapters/out/postgres/clientrepo"
	"dispatchops/internal/adapters/out/postgres/executorrepo"
	"dispatchops/internal/adapters/out/postgres/orderrepo"
	"dispatchops/internal/adapters/out/postgres/revokedrepo"
	"dispatchops/internal/core/domain/model/audit"
	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// Reader serves query handlers directly from the main database connection,
// outside any unit of work. Reads never track aggregates.
type Reader struct {
	db *gorm.DB
}

// NewReader creates a read-side adapter over the given connection.
func NewReader(db *gorm.DB) *Reader {
	return &Reader{db: db}
}

// noopTracker satisfies the repositories' tracking dependency for reads.
type noopTracker struct{}

func (noopTracker) TrackAggregate(string, any) {}

// AllOrders retrieves every order in the ledger.
func (r *Reader) AllOrders(ctx context.Context) ([]*order.Order, error) {
	return orderrepo.NewGormOrderRepository(r.db, noopTracker{}).GetAll(ctx)
}

// OrderByID retrieves a single order.
func (r *Reader) OrderByID(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	return orderrepo.NewGormOrderRepository(r.db, noopTracker{}).Get(ctx, id)
}

// AllClients retrieves every client on the roster.
func (r *Reader) AllClients(ctx context.Context) ([]*client.Client, error) {
	return clientrepo.NewGormClientRepository(r.db, noopTracker{}).GetAll(ctx)
}

// AllExecutors retrieves every executor on the roster.
func (r *Reader) AllExecutors(ctx context.Context) ([]*executor.Executor, error) {
	return executorrepo.NewGormExecutorRepository(r.db, noopTracker{}).GetAll(ctx)
}

// AllEntries retrieves the full audit trail in insertion order.
func (r *Reader) AllEntries(ctx context.Context) ([]audit.Entry, error) {
	return auditrepo.NewGormAuditRepository(r.db).GetAll(ctx)
}

// EntriesForEntity retrieves one entity's audit entries in insertion order.
func (r *Reader) EntriesForEntity(ctx context.Context, entityID string) ([]audit.Entry, error) {
	return auditrepo.NewGormAuditRepository(r.db).GetByEntity(ctx, entityID)
}

// IsRevoked reports whether a voucher token hash is on the revocation list.
func (r *Reader) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	return revokedrepo.NewGormRevokedTokenRepository(r.db).Contains(ctx, tokenHash)
}
