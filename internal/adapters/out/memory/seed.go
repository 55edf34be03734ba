package memory

import (
	"fmt"
	"time"

	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
)

// Seed fills the store with a small demo roster and order board so a
// fresh deployment has something to show. Intended for development and
// demos only; production deployments start empty.
func Seed(store *Store, tokens interface{ NewToken() (string, error) }, now time.Time) error {
	actor, err := kernel.ActorIDFromString("USR-001")
	if err != nil {
		return err
	}

	type clientSeed struct {
		id       string
		name     string
		email    string
		phone    string
		category client.Category
	}
	clientSeeds := []clientSeed{
		{"CL-101", "Grand Horizon Hotels", "bookings@grandhorizon.example", "+1-212-555-0134", client.Business},
		{"CL-102", "Sofia Marinova", "sofia.marinova@example.com", "+1-646-555-0172", client.Individual},
		{"CL-103", "Atlas Event Partners", "ops@atlasevents.example", "+1-917-555-0145", client.Business},
		{"CL-104", "Daniel Okafor", "d.okafor@example.com", "+1-929-555-0119", client.Individual},
		{"CL-105", "Northline Travel Desk", "desk@northline.example", "+1-332-555-0163", client.Business},
	}

	clients := make(map[string]*client.Client, len(clientSeeds))
	for _, seed := range clientSeeds {
		id, idErr := kernel.ClientIDFromString(seed.id)
		if idErr != nil {
			return idErr
		}
		c, cErr := client.NewClient(id, seed.name, seed.email, seed.phone, seed.category)
		if cErr != nil {
			return cErr
		}
		clients[seed.id] = c
	}

	type executorSeed struct {
		id      string
		name    string
		phone   string
		vehicle string
	}
	executorSeeds := []executorSeed{
		{"EX-001", "Marcus Webb", "+1-917-555-0188", "Black Suburban #12"},
		{"EX-002", "Lena Petrova", "+1-718-555-0107", "Sprinter Van #3"},
		{"EX-003", "Omar Haddad", "+1-347-555-0151", "Sedan #7"},
	}

	executors := make(map[string]*executor.Executor, len(executorSeeds))
	for _, seed := range executorSeeds {
		id, idErr := kernel.ExecutorIDFromString(seed.id)
		if idErr != nil {
			return idErr
		}
		e, eErr := executor.NewExecutor(id, seed.name, seed.phone, seed.vehicle)
		if eErr != nil {
			return eErr
		}
		executors[seed.id] = e
	}

	type orderSeed struct {
		id         string
		clientID   string
		executorID string
		amount     int64
		daysOut    int
		origin     string
		dest       string
		path       []order.Status
	}
	orderSeeds := []orderSeed{
		{"ORD-7701", "CL-101", "", 18500, 2, "JFK Airport", "Grand Horizon Midtown", nil},
		{"ORD-7702", "CL-102", "", 9900, 1, "LGA Airport", "Park Slope", []order.Status{order.Confirmed}},
		{"ORD-7703", "CL-103", "EX-001", 27500, 1, "Javits Center", "Newark Airport",
			[]order.Status{order.Confirmed, order.Assigned}},
		{"ORD-7704", "CL-105", "EX-002", 14200, 0, "Penn Station", "Hudson Yards",
			[]order.Status{order.Confirmed, order.Assigned, order.InProgress}},
		{"ORD-7705", "CL-101", "EX-003", 21000, -1, "JFK Airport", "Grand Horizon Downtown",
			[]order.Status{order.Confirmed, order.Assigned, order.InProgress, order.PickedUp, order.Completed}},
		{"ORD-7706", "CL-104", "", 8800, -2, "EWR Airport", "Jersey City",
			[]order.Status{order.Cancelled}},
	}

	orders := make([]*order.Order, 0, len(orderSeeds))
	for _, seed := range orderSeeds {
		id, idErr := kernel.OrderIDFromString(seed.id)
		if idErr != nil {
			return idErr
		}
		clientID, idErr := kernel.ClientIDFromString(seed.clientID)
		if idErr != nil {
			return idErr
		}
		price, mErr := kernel.NewMoney(seed.amount, "USD")
		if mErr != nil {
			return mErr
		}
		route, rErr := kernel.NewRoute(seed.origin, seed.dest)
		if rErr != nil {
			return rErr
		}

		booked := now.AddDate(0, 0, -3)
		o, oErr := order.NewOrder(id, clientID, price, now.AddDate(0, 0, seed.daysOut), route, booked)
		if oErr != nil {
			return oErr
		}

		token, tErr := tokens.NewToken()
		if tErr != nil {
			return tErr
		}
		voucher, vErr := order.NewVoucher(token, now)
		if vErr != nil {
			return vErr
		}
		if err = o.AttachVoucher(voucher, booked); err != nil {
			return err
		}

		if seed.executorID != "" {
			executorID, idErr := kernel.ExecutorIDFromString(seed.executorID)
			if idErr != nil {
				return idErr
			}
			if err = o.AssignExecutor(executorID, booked); err != nil {
				return err
			}
		}

		at := booked
		for _, status := range seed.path {
			at = at.Add(30 * time.Minute)
			if err = o.ChangeStatus(status, actor, "", at); err != nil {
				return fmt.Errorf("seeding %s: %w", seed.id, err)
			}
		}

		clients[seed.clientID].RecordOrder()
		orders = append(orders, o)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	for id, c := range clients {
		store.clients[id] = c
	}
	for id, e := range executors {
		store.executors[id] = e
	}
	for _, o := range orders {
		store.orders[o.ID().String()] = o
	}
	return nil
}
