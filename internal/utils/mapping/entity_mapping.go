package mapping

import (
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/models"
)

// ToDomainCart converts a carts row to a domain Cart
func ToDomainCart(m models.Cart) domain.Cart {
	return domain.Cart{ID: m.ID, Name: m.Name}
}

// ToModelCart converts a domain Cart to a carts row
func ToModelCart(d domain.Cart) models.Cart {
	return models.Cart{ID: d.ID, Name: d.Name}
}

// ToDomainSalesRecord converts a sales row to a domain SalesRecord
func ToDomainSalesRecord(m models.SalesRecord) domain.SalesRecord {
	return domain.SalesRecord{
		ID:     m.ID,
		Date:   DayFromDate(m.Date),
		CartID: m.CartID,
		Amount: DecimalFromNumeric(m.Amount),
	}
}

// ToModelSalesRecord converts a domain SalesRecord to a sales row
func ToModelSalesRecord(d domain.SalesRecord) models.SalesRecord {
	return models.SalesRecord{
		ID:     d.ID,
		Date:   DateFromDay(d.Date),
		CartID: d.CartID,
		Amount: NumericFromDecimal(d.Amount),
	}
}

// ToDomainExpense converts an expenses row to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ID:          m.ID,
		Date:        DayFromDate(m.Date),
		Amount:      DecimalFromNumeric(m.Amount),
		Name:        m.Name,
		Description: StringFromText(m.Description),
	}
}

// ToModelExpense converts a domain Expense to an expenses row
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ID:          d.ID,
		Date:        DateFromDay(d.Date),
		Amount:      NumericFromDecimal(d.Amount),
		Name:        d.Name,
		Description: TextFromString(d.Description),
	}
}

// ToDomainInventoryItem converts an inventory row to a domain InventoryItem
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ID:          m.ID,
		Name:        m.Name,
		Quantity:    DecimalFromNumeric(m.Quantity),
		Unit:        m.Unit,
		Threshold:   DecimalFromNumeric(m.Threshold),
		Price:       DecimalFromNumeric(m.Price),
		LastUpdated: DayFromDate(m.LastUpdated),
	}
}

// ToModelInventoryItem converts a domain InventoryItem to an inventory row
func ToModelInventoryItem(d domain.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		ID:          d.ID,
		Name:        d.Name,
		Quantity:    NumericFromDecimal(d.Quantity),
		Unit:        d.Unit,
		Threshold:   NumericFromDecimal(d.Threshold),
		Price:       NumericFromDecimal(d.Price),
		LastUpdated: DateFromDay(d.LastUpdated),
	}
}

// ToDomainPayment converts a payments row to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:     m.ID,
		Date:   DayFromDate(m.Date),
		Amount: DecimalFromNumeric(m.Amount),
		Status: domain.PaymentStatus(m.Status),
		Notes:  StringFromText(m.Notes),
	}
}

// ToModelPayment converts a domain Payment to a payments row
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		ID:     d.ID,
		Date:   DateFromDay(d.Date),
		Amount: NumericFromDecimal(d.Amount),
		Status: string(d.Status),
		Notes:  TextFromString(d.Notes),
	}
}
