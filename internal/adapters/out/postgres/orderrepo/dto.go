// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status history is stored as a JSON document alongside the row: history
// is only ever read back whole, never queried into.
type OrderDTO struct {
	ID         string   `gorm:"type:varchar(64);primaryKey"`
	ClientID   string   `gorm:"type:varchar(64);index"`
	ExecutorID *string  `gorm:"type:varchar(64);index"`
	Price      MoneyDTO `gorm:"embedded;embeddedPrefix:price_"`
	Status     string   `gorm:"type:varchar(32);index"`
	Route      RouteDTO `gorm:"embedded;embeddedPrefix:route_"`
	History    string   `gorm:"type:text"`

	VoucherToken       *string `gorm:"type:varchar(64)"`
	VoucherActive      *bool
	VoucherGeneratedAt *time.Time
	VoucherExpiresAt   *time.Time

	ScheduledAt time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// MoneyDTO represents the embedded price columns within the order table.
type MoneyDTO struct {
	Amount   int64
	Currency string `gorm:"type:varchar(3)"`
}

// RouteDTO represents the embedded origin and destination columns.
type RouteDTO struct {
	Origin      string
	Destination string
}

// historyEntryDTO is one status history entry in the JSON document.
type historyEntryDTO struct {
	From   *string   `json:"from"`
	To     string    `json:"to"`
	At     time.Time `json:"at"`
	Actor  string    `json:"actor"`
	Reason string    `json:"reason,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	entries := make([]historyEntryDTO, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		dto := historyEntryDTO{
			To:     entry.To().String(),
			At:     entry.At(),
			Actor:  entry.Actor().String(),
			Reason: entry.Reason(),
		}
		if from := entry.From(); from != nil {
			name := from.String()
			dto.From = &name
		}
		entries = append(entries, dto)
	}
	history, err := json.Marshal(entries)
	if err != nil {
		return OrderDTO{}, err
	}

	dto := OrderDTO{
		ID:       aggregate.ID().String(),
		ClientID: aggregate.ClientID().String(),
		Price: MoneyDTO{
			Amount:   aggregate.Price().Amount(),
			Currency: aggregate.Price().Currency(),
		},
		Status: aggregate.Status().String(),
		Route: RouteDTO{
			Origin:      aggregate.Route().Origin(),
			Destination: aggregate.Route().Destination(),
		},
		History:     string(history),
		ScheduledAt: aggregate.ScheduledAt(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}

	if executorID := aggregate.ExecutorID(); executorID != nil {
		raw := executorID.String()
		dto.ExecutorID = &raw
	}

	if voucher := aggregate.Voucher(); voucher != nil {
		token := voucher.Token()
		active := voucher.IsActive()
		generatedAt := voucher.GeneratedAt()
		expiresAt := voucher.ExpiresAt()
		dto.VoucherToken = &token
		dto.VoucherActive = &active
		dto.VoucherGeneratedAt = &generatedAt
		dto.VoucherExpiresAt = &expiresAt
	}

	return dto, nil
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.ClientIDFromString(dto.ClientID)
	if err != nil {
		return nil, err
	}

	var executorID *kernel.ExecutorID
	if dto.ExecutorID != nil {
		eID, executorErr := kernel.ExecutorIDFromString(*dto.ExecutorID)
		if executorErr != nil {
			return nil, executorErr
		}
		executorID = &eID
	}

	price, err := kernel.NewMoney(dto.Price.Amount, dto.Price.Currency)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	route, err := kernel.NewRoute(dto.Route.Origin, dto.Route.Destination)
	if err != nil {
		return nil, err
	}

	var entries []historyEntryDTO
	if dto.History != "" {
		if err = json.Unmarshal([]byte(dto.History), &entries); err != nil {
			return nil, err
		}
	}
	history := make([]order.HistoryEntry, 0, len(entries))
	for _, entryDTO := range entries {
		var from *order.Status
		if entryDTO.From != nil {
			fromStatus, fromErr := order.StatusFromString(*entryDTO.From)
			if fromErr != nil {
				return nil, fromErr
			}
			from = &fromStatus
		}
		to, toErr := order.StatusFromString(entryDTO.To)
		if toErr != nil {
			return nil, toErr
		}
		actor, actorErr := kernel.ActorIDFromString(entryDTO.Actor)
		if actorErr != nil {
			return nil, actorErr
		}
		entry, entryErr := order.RestoreHistoryEntry(from, to, entryDTO.At, actor, entryDTO.Reason)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	var voucher *order.Voucher
	if dto.VoucherToken != nil {
		restored, voucherErr := order.RestoreVoucher(
			*dto.VoucherToken,
			dto.VoucherActive != nil && *dto.VoucherActive,
			*dto.VoucherGeneratedAt,
			*dto.VoucherExpiresAt,
		)
		if voucherErr != nil {
			return nil, voucherErr
		}
		voucher = &restored
	}

	return order.RestoreOrder(
		id,
		clientID,
		executorID,
		price,
		status,
		dto.ScheduledAt,
		route,
		history,
		voucher,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
