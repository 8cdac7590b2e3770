package database

import (
	"context"

	"contactbook/contact"

	"gorm.io/gorm"
)

// ContactModel represents the database model for contacts
type ContactModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Phone string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ContactRepository implements contact.Repository on top of gorm. Every
// method is a single statement, committed on its own.
type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) CreateContact(ctx context.Context, c contact.Contact) (int64, error) {
	model := ContactModel{
		Name:  c.Name,
		Phone: c.Phone,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return 0, err
	}
	return model.ID, nil
}

func (r *ContactRepository) UpdateContact(ctx context.Context, c contact.Contact) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&ContactModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":  c.Name,
			"phone": c.Phone,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ContactRepository) DeleteContact(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&ContactModel{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ContactRepository) CountContacts(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&ContactModel{}).Count(&total).Error
	return total, err
}

// ListContacts returns up to limit contacts, newest first, skipping offset rows.
func (r *ContactRepository) ListContacts(ctx context.Context, limit, offset int) ([]contact.Contact, error) {
	var models []ContactModel
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	contacts := make([]contact.Contact, len(models))
	for i, model := range models {
		contacts[i] = contact.Contact{
			ID:    model.ID,
			Name:  model.Name,
			Phone: model.Phone,
		}
	}
	return contacts, nil
}

func (r *ContactRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
