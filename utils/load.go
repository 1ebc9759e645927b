package utils

import (
	"github.com/salonbook/salon-app/db"
	"github.com/salonbook/salon-app/engine"
	"github.com/salonbook/salon-app/models"
)

// LoadCatalog builds the engine's pricing catalog from the services table.
func LoadCatalog() (engine.Catalog, error) {
	var services []models.Service
	if err := db.DB.Find(&services).Error; err != nil {
		return nil, err
	}
	catalog := make(engine.Catalog, len(services))
	for _, s := range services {
		catalog[s.Name] = engine.CatalogEntry{Price: s.Price, DurationMinutes: s.Duration}
	}
	return catalog, nil
}

// LoadRoster fetches the full staff roster in the engine's shape.
// Inactive employees are included; the resolver marks them unavailable.
func LoadRoster() ([]engine.StaffMember, error) {
	var employees []models.User
	if err := db.DB.Where("role = ?", models.RoleEmployee).Order("name").Find(&employees).Error; err != nil {
		return nil, err
	}
	roster := make([]engine.StaffMember, len(employees))
	for i, e := range employees {
		roster[i] = engine.StaffMember{Name: e.Name, IsActive: e.IsActive}
	}
	return roster, nil
}
