package repository

import (
	"go-salestrack/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VerificationRepository interface {
	Upsert(email, code string) error
	Find(email, code string) (*model.VerificationCode, error)
	Delete(email, code string) error
}

type verificationRepo struct {
	db *gorm.DB
}

func NewVerificationRepo(db *gorm.DB) VerificationRepository {
	return &verificationRepo{db}
}

// Upsert stores the code for an email, replacing any previous unconsumed code
func (r *verificationRepo) Upsert(email, code string) error {
	verification := model.VerificationCode{Email: email, Code: code}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "updated_at"}),
	}).Create(&verification).Error
}

func (r *verificationRepo) Find(email, code string) (*model.VerificationCode, error) {
	var verification model.VerificationCode
	if err := r.db.Where("email = ? AND code = ?", email, code).First(&verification).Error; err != nil {
		return nil, err
	}
	return &verification, nil
}

func (r *verificationRepo) Delete(email, code string) error {
	return r.db.Where("email = ? AND code = ?", email, code).Delete(&model.VerificationCode{}).Error
}
