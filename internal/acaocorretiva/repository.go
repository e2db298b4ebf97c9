package acaocorretiva

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, ac *AcaoCorretiva) error
	Listar(db *gorm.DB, status string) ([]AcaoCorretiva, error)
	BuscarPorID(db *gorm.DB, id uint) (*AcaoCorretiva, error)
	Atualizar(db *gorm.DB, ac *AcaoCorretiva) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, ac *AcaoCorretiva) error {
	return db.Create(ac).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, status string) ([]AcaoCorretiva, error) {
	var list []AcaoCorretiva
	q := db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*AcaoCorretiva, error) {
	var ac AcaoCorretiva
	err := db.First(&ac, id).Error
	return &ac, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, ac *AcaoCorretiva) error {
	return db.Save(ac).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&AcaoCorretiva{}, id).Error
}
