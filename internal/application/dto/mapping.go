package dto

import (
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
	"github.com/jhoicas/homeexotica-crm/pkg/money"
)

// FromCustomer convierte la entidad en respuesta.
func FromCustomer(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		UserID:         c.UserID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		WhatsAppNumber: c.WhatsAppNumber,
		City:           c.City,
		Occupation:     c.Occupation,
		CompanyName:    c.CompanyName,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// FromLead convierte la entidad en respuesta, con la etiqueta de presupuesto en rupias.
func FromLead(l *entity.Lead) LeadResponse {
	return LeadResponse{
		ID:                     l.ID,
		UserID:                 l.UserID,
		CustomerID:             l.CustomerID,
		CustomerName:           l.CustomerName,
		Phone:                  l.Phone,
		Email:                  l.Email,
		Source:                 l.Source,
		Status:                 l.Status,
		Notes:                  l.Notes,
		AssignedAgent:          l.AssignedAgent,
		LeadPriority:           l.Priority,
		LeadType:               l.LeadType,
		AlternatePhone:         l.AlternatePhone,
		Address:                l.Address,
		City:                   l.City,
		Occupation:             l.Occupation,
		CompanyName:            l.CompanyName,
		PropertyType:           l.PropertyType,
		Purpose:                l.Purpose,
		BudgetMin:              l.BudgetMin,
		BudgetMax:              l.BudgetMax,
		BudgetLabel:            budgetLabel(l),
		PreferredLocations:     l.PreferredLocations,
		BHKRequirement:         l.BHKRequirement,
		CarpetArea:             l.CarpetArea,
		Furnishing:             l.Furnishing,
		ParkingRequired:        l.ParkingRequired,
		FloorPreference:        l.FloorPreference,
		Facing:                 l.Facing,
		ReadyToMove:            l.ReadyToMove,
		ExpectedPossessionDate: l.ExpectedPossessionDate,
		TenantType:             l.TenantType,
		IsVegetarian:           l.IsVegetarian,
		HasPets:                l.HasPets,
		VisitDate:              l.VisitDate,
		VisitTime:              l.VisitTime,
		PropertyCategory:       l.PropertyCategory,
		PossessionFrom:         l.PossessionFrom,
		CreatedAt:              l.CreatedAt,
		UpdatedAt:              l.UpdatedAt,
	}
}

func budgetLabel(l *entity.Lead) string {
	switch {
	case l.BudgetMin != nil && l.BudgetMax != nil:
		return money.FormatINR(*l.BudgetMin, 0) + " - " + money.FormatINR(*l.BudgetMax, 0)
	case l.BudgetMin != nil:
		return "from " + money.FormatINR(*l.BudgetMin, 0)
	case l.BudgetMax != nil:
		return "up to " + money.FormatINR(*l.BudgetMax, 0)
	}
	return ""
}

// FromFollowUp convierte la entidad en respuesta; bucket lo calcula quien llama.
func FromFollowUp(f *entity.FollowUp, bucket string) FollowUpResponse {
	return FollowUpResponse{
		ID:           f.ID,
		UserID:       f.UserID,
		LeadID:       f.LeadID,
		CustomerID:   f.CustomerID,
		CustomerName: f.CustomerName,
		Phone:        f.Phone,
		ScheduledAt:  f.ScheduledAt,
		Notes:        f.Notes,
		Completed:    f.Completed,
		Type:         f.Type,
		Status:       f.Status,
		AutoReminder: f.AutoReminder,
		Bucket:       bucket,
		CreatedAt:    f.CreatedAt,
	}
}

// FromDocument convierte la entidad en respuesta.
func FromDocument(d *entity.Document) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		LeadID:       d.LeadID,
		CustomerID:   d.CustomerID,
		DocumentType: d.DocumentType,
		DocumentName: d.DocumentName,
		FileURL:      d.FileURL,
		FilePath:     d.FilePath,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// FromInvoice convierte la entidad en respuesta.
func FromInvoice(inv *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		UserID:        inv.UserID,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		Items:         FromInvoiceItems(inv.Items),
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Discount:      inv.Discount,
		Total:         inv.Total,
		TotalLabel:    money.FormatINR(inv.Total, 2),
		PaymentStatus: inv.PaymentStatus,
		DueDate:       inv.DueDate,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

// FromInvoiceItems copia las líneas conservando el orden.
func FromInvoiceItems(items []entity.InvoiceItem) []InvoiceItemDTO {
	out := make([]InvoiceItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, InvoiceItemDTO{Description: it.Description, Quantity: it.Quantity, Rate: it.Rate, Amount: it.Amount})
	}
	return out
}

// ToInvoiceItems convierte las líneas del request a entidad (Amount se recalcula después).
func ToInvoiceItems(items []InvoiceItemDTO) []entity.InvoiceItem {
	out := make([]entity.InvoiceItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.InvoiceItem{Description: it.Description, Quantity: it.Quantity, Rate: it.Rate, Amount: it.Amount})
	}
	return out
}
