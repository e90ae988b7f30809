package domain

// Snapshot is a point-in-time copy of every table held by the entity store.
type Snapshot struct {
	Carts          []Cart
	Sales          []SalesRecord
	Expenses       []Expense
	Inventory      []InventoryItem
	Payments       []Payment
	Workers        []Worker
	WorkerPayments []WorkerPayment
	WorkerLeaves   []WorkerLeave
}
